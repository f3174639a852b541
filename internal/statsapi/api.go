package statsapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/statforge/rescale/internal/config"
	"github.com/statforge/rescale/internal/frame"
	"github.com/statforge/rescale/internal/regress"
	"github.com/statforge/rescale/pkg/rescale"
)

// Server serves the stats API.
type Server struct {
	app      *fiber.App
	cfg      *config.ServerEnvConfig
	validate *validator.Validate
}

// NewServer builds the fiber app with all routes registered.
func NewServer(cfg *config.ServerEnvConfig) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("statsapi: configuration cannot be nil")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: fiberErrHandler,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    cfg.BodySizeLimit,
	})

	app.Use(recover.New())
	app.Use(ZstdMiddleware())

	s := &Server{
		app:      app,
		cfg:      cfg,
		validate: validator.New(),
	}

	app.Get("/health", s.handleHealth)
	app.Post("/normalize", s.handleNormalize)
	app.Post("/fit", s.handleFit)

	return s, nil
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens until the context is cancelled, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	go func() {
		if err := s.app.Listen(addr); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("server listen failed")
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.app.ShutdownWithContext(shutdownCtx)
}

func fiberErrHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", c.Path()).
		Str("method", c.Method()).
		Msg("fiber error handler triggered")

	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(HealthResponse{Status: "ok"})
}

func (s *Server) handleNormalize(c *fiber.Ctx) error {
	var req NormalizeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse normalize request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload"})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	method := req.Method
	if method == "" {
		method = MethodMinMax
	}

	var values []float64
	switch method {
	case MethodL1:
		values = rescale.L1(req.Values)
	default:
		var err error
		values, err = rescale.MinMax(req.Values)
		if err != nil {
			return domainError(c, err)
		}
	}

	log.Debug().Str("method", method).Int("n", len(values)).Msg("normalized sequence")

	return c.Status(fiber.StatusOK).JSON(NormalizeResponse{Method: method, Values: values})
}

func (s *Server) handleFit(c *fiber.Ctx) error {
	var req FitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse fit request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload"})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	if len(req.Group) == 0 {
		model, err := regress.Fit(req.X, req.Y)
		if err != nil {
			return domainError(c, err)
		}
		log.Debug().Int("n", model.N).Float64("r_squared", model.RSquared).Msg("fitted model")
		return c.Status(fiber.StatusOK).JSON(FitResponse{Model: &model})
	}

	if len(req.Group) != len(req.X) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "group length must match x"})
	}

	f, err := frame.FromColumns([]string{"group", "x", "y"}, [][]float64{req.Group, req.X, req.Y})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	models, err := regress.FitGroups(f, "group", "x", "y")
	if err != nil {
		return domainError(c, err)
	}

	groups := make(map[string]regress.Model, len(models))
	for key, m := range models {
		groups[strconv.FormatFloat(key, 'g', -1, 64)] = m
	}

	log.Debug().Int("groups", len(groups)).Msg("fitted group models")

	return c.Status(fiber.StatusOK).JSON(FitResponse{Groups: groups})
}

// domainError maps normalization and regression guard errors to 422, keeping
// 400 for malformed payloads.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, rescale.ErrTooFewValues),
		errors.Is(err, rescale.ErrZeroRange),
		errors.Is(err, regress.ErrTooFewPoints),
		errors.Is(err, regress.ErrLengthMismatch),
		errors.Is(err, regress.ErrConstantPredictor):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
}
