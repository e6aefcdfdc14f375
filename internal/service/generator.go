package service

import (
	"errors"
	"fmt"

	"github.com/pwmeter/pwmeter-go/internal/metrics"
	"github.com/pwmeter/pwmeter-go/internal/model"
	"github.com/pwmeter/pwmeter-go/internal/password"
)

const MaxCount = 20

var (
	ErrLengthOutOfRange = errors.New("password length out of range")
	ErrCountOutOfRange  = errors.New("count must be between 1 and 20")
)

// LengthBounds is the length window accepted from clients.
type LengthBounds struct {
	Min     int
	Max     int
	Default int
}

// DefaultLengthBounds mirrors the generator slider: 8 to 32, default 16.
func DefaultLengthBounds() LengthBounds {
	return LengthBounds{Min: 8, Max: 32, Default: 16}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen    *password.Generator
	bounds LengthBounds
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *password.Generator, bounds LengthBounds) *GeneratorService {
	return &GeneratorService{gen: gen, bounds: bounds}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := password.Options{
		Length: req.Length,
		Classes: password.Classes{
			Uppercase: boolOrDefault(req.Uppercase, true),
			Lowercase: boolOrDefault(req.Lowercase, true),
			Digits:    boolOrDefault(req.Digits, true),
			Special:   boolOrDefault(req.Special, true),
		},
	}

	if opts.Length == 0 {
		opts.Length = s.bounds.Default
	}
	if opts.Length < s.bounds.Min || opts.Length > s.bounds.Max {
		metrics.Generations.WithLabelValues("invalid").Inc()
		return model.GenerateResponse{}, fmt.Errorf("%w: must be between %d and %d", ErrLengthOutOfRange, s.bounds.Min, s.bounds.Max)
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		metrics.Generations.WithLabelValues("invalid").Inc()
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := s.gen.Generate(opts)
		if err != nil {
			metrics.Generations.WithLabelValues("invalid").Inc()
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, pw)
	}
	metrics.Generations.WithLabelValues("ok").Inc()

	return model.GenerateResponse{
		Password:  passwords[0],
		Passwords: passwords,
		Length:    opts.Length,
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
