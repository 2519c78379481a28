package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/types"
)

const DefaultRequestTimeout = 5 * time.Second

type Config struct {
	Listen         string
	RequestTimeout time.Duration
	Tolerance      float64
	MaxIterations  int
	AccessLog      io.Writer // Access log middleware is off when nil
}

// Handlers serves the flow endpoints, one Dispatcher is shared by all requests.
type Handlers struct {
	dispatcher *flow.Dispatcher
	timeout    time.Duration
	logger     *slog.Logger
}

func NewHandlers(cfg Config, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Handlers{
		dispatcher: flow.NewDispatcher(cfg.Tolerance, cfg.MaxIterations),
		timeout:    timeout,
		logger:     log,
	}
}

// NewApp builds the fiber application with middleware and routes, without listening.
func NewApp(cfg Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if cfg.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n",
			Output: cfg.AccessLog,
		}))
	}
	NewHandlers(cfg, log).setupRoutes(app)
	return app
}

func (h *Handlers) setupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status: "healthy",
			Details: map[string]any{
				"flowTypes": []string{"isentropic", "normal-shock", "oblique-shock", "fanno", "rayleigh"},
			},
		})
	})

	api := app.Group("/api")
	for _, ft := range []types.FlowType{
		types.FT_Isentropic, types.FT_NormalShock, types.FT_ObliqueShock, types.FT_Fanno, types.FT_Rayleigh,
	} {
		api.Post("/"+ft.String(), h.compute(ft))
	}
}

type outcome struct {
	fs  types.FlowState
	err error
}

// compute handles POST /api/<flowType>.
func (h *Handlers) compute(ft types.FlowType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FlowBody
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Detail: "invalid request body: " + err.Error(),
			})
		}
		req, err := body.Request(ft)
		if err != nil {
			return h.fail(c, req, err)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
		defer cancel()
		done := make(chan outcome, 1)
		go func() {
			fs, err := h.dispatcher.Compute(req)
			done <- outcome{fs: fs, err: err}
		}()
		select {
		case out := <-done:
			if out.err != nil {
				return h.fail(c, req, out.err)
			}
			return c.JSON(out.fs)
		case <-ctx.Done():
			h.logger.Error("flow request timed out",
				"requestId", c.GetRespHeader(fiber.HeaderXRequestID),
				"request", req.String(),
				"timeout", h.timeout)
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Detail: "computation timed out",
			})
		}
	}
}

func (h *Handlers) fail(c *fiber.Ctx, req flow.FlowRequest, err error) error {
	code := StatusCode(err)
	if code >= fiber.StatusInternalServerError {
		h.logger.Error("flow computation failed",
			"requestId", c.GetRespHeader(fiber.HeaderXRequestID),
			"request", req.String(),
			"error", err)
	} else {
		h.logger.Debug("flow request rejected",
			"requestId", c.GetRespHeader(fiber.HeaderXRequestID),
			"request", req.String(),
			"error", err)
	}
	detail := err.Error()
	var fe *types.FlowError
	if errors.As(err, &fe) {
		detail = fe.Detail
	}
	return c.Status(code).JSON(ErrorResponse{Detail: detail})
}

// StatusCode maps the error kinds of a flow computation onto HTTP statuses
func StatusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, types.ErrAmbiguousBranch), errors.Is(err, types.ErrNoSolution):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// errorHandler handles Fiber errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(ErrorResponse{Detail: message})
}
