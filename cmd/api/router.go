package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pwmeter/pwmeter-go/internal/config"
	"github.com/pwmeter/pwmeter-go/internal/handler"
	"github.com/pwmeter/pwmeter-go/internal/middleware"
	"github.com/pwmeter/pwmeter-go/internal/service"
)

func newRouter(ctx context.Context, cfg config.Config, strengthSvc *service.StrengthService, genSvc *service.GeneratorService) http.Handler {
	strengthHandler := handler.NewStrengthHandler(strengthSvc)
	genHandler := handler.NewGeneratorHandler(genSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.APITokenSecret != "" {
			r.Use(middleware.APIToken(cfg.APITokenSecret))
		}

		r.Post("/strength", strengthHandler.HandleEvaluate)
		r.Post("/generate", genHandler.HandleGenerate)
		r.Get("/tips", strengthHandler.HandleTips)
	})

	return r
}
