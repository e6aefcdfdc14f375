package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pwmeter/pwmeter-go/internal/middleware"
	"github.com/pwmeter/pwmeter-go/internal/model"
	"github.com/pwmeter/pwmeter-go/internal/password"
	"github.com/pwmeter/pwmeter-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("password generation failed", "error", err, "request_id", middleware.RequestIDFromContext(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if client, ok := middleware.ClientIDFromContext(r.Context()); ok {
		slog.Debug("passwords generated", "client", client, "count", len(resp.Passwords), "length", resp.Length)
	}

	writeJSON(w, http.StatusOK, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, password.ErrInvalidLength) ||
		errors.Is(err, password.ErrNoCharacterClassSelected) ||
		errors.Is(err, service.ErrLengthOutOfRange) ||
		errors.Is(err, service.ErrCountOutOfRange)
}
