package httpapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
	"github.com/sheikh-saqib/gpa-calculator/internal/ledger"
)

// Server is the HTTP view over a ledger.
type Server struct {
	ledger    *ledger.Ledger
	publisher interfaces.EventPublisher // optional
	logger    *zap.Logger
	validate  *validator.Validate
	now       func() time.Time
}

func NewServer(l *ledger.Ledger, publisher interfaces.EventPublisher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		ledger:    l,
		publisher: publisher,
		logger:    logger,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// App builds the fiber application with every route registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "gpa-calculator",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	app.Use(recover.New())
	app.Use(s.logRequests)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	subjects := app.Group("/subjects")
	subjects.Get("/", s.listSubjects)
	subjects.Post("/", s.addSubject)
	subjects.Delete("/:id", s.removeSubject)

	app.Get("/gpa", s.computeGPA)
	app.Get("/grades", s.gradeScale)
	app.Get("/bands", s.bandTable)
	return app
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Debug("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))
	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return errorResponse(c, fe.Code, fe.Message)
	}
	s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return errorResponse(c, fiber.StatusInternalServerError, "internal error")
}
