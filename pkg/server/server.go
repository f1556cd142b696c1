package server

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/controller"
	"github.com/cloudcarver/text2image/pkg/globalctx"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

var log = logger.NewLogAgent("server")

const ContextKeyDisableBodyLog = "text2image_disable_body_log"

func DisableBodyLog(c *fiber.Ctx) {
	c.Locals(ContextKeyDisableBodyLog, true)
}

type Server struct {
	app             *fiber.App
	host            string
	port            int
	globalCtx       *globalctx.GlobalContext
	serverInterface controller.ServerInterface
	libCfg          *config.LibConfig
	skipLogRequest  func(c *fiber.Ctx) bool
	skipLogResponse func(c *fiber.Ctx) bool
}

func NewServer(
	cfg *config.Config,
	libCfg *config.LibConfig,
	globalCtx *globalctx.GlobalContext,
	serverInterface controller.ServerInterface,
) (*Server, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler:          utils.ErrorHandler,
		BodyLimit:             utils.IfElse(libCfg.BodyLimit > 0, libCfg.BodyLimit, fiber.DefaultBodyLimit),
		DisableStartupMessage: true,
	})

	var port = config.DefaultPort
	if cfg.Port != 0 {
		port = cfg.Port
	} else {
		log.Infof("Using default port: %d", port)
	}

	var host = "0.0.0.0"
	if cfg.Host != "" {
		host = cfg.Host
	} else {
		log.Infof("Using default host: %s", host)
	}

	s := &Server{
		app:             app,
		host:            host,
		port:            port,
		serverInterface: serverInterface,
		globalCtx:       globalCtx,
		libCfg:          libCfg,
	}

	s.skipLogRequest = func(c *fiber.Ctx) bool { return false }
	s.skipLogResponse = func(c *fiber.Ctx) bool { return false }
	if libCfg.Log.HealthCheckPath != nil {
		var healthPath = *libCfg.Log.HealthCheckPath
		s.skipLogRequest = func(c *fiber.Ctx) bool {
			return c.Path() == healthPath
		}
		s.skipLogResponse = func(c *fiber.Ctx) bool {
			return c.Path() == healthPath && c.Response().StatusCode() < 400
		}
	}

	s.registerMiddleware()

	middlewares := []fiber.Handler{}
	if cfg.RequestTimeout != nil {
		timeout := *cfg.RequestTimeout
		middlewares = append(
			middlewares,
			func(c *fiber.Ctx) error {
				ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
				defer cancel()
				c.SetUserContext(ctx)
				return c.Next()
			},
		)
	}
	s.registerHandlers(middlewares)

	doc, err := LoadOpenAPI(globalCtx.Context())
	if err != nil {
		return nil, err
	}
	if err := s.registerDocs(doc); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) registerHandlers(middlewares []fiber.Handler) {
	r := s.app.Group("", middlewares...)
	r.Get("/", s.serverInterface.Root)
	r.Get("/service", s.serverInterface.GetService)
	r.Get("/status", s.serverInterface.GetStatus)
	r.Post("/compute", s.serverInterface.Compute)
	r.Get("/tasks/:id", s.serverInterface.GetTask)
	r.Get("/tasks/:id/outputs/:field", func(c *fiber.Ctx) error {
		DisableBodyLog(c)
		return s.serverInterface.GetTaskOutput(c)
	})
}

func (s *Server) registerMiddleware() {
	s.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	if s.libCfg.Cors != nil {
		s.app.Use(cors.New(*s.libCfg.Cors))
	} else {
		s.app.Use(cors.New(cors.Config{}))
	}

	s.app.Use(requestid.New())
	s.app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		if !s.skipLogRequest(c) {
			log.Info(
				"request",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("request-id", c.Locals(requestid.ConfigDefault.ContextKey).(string)),
			)
		}

		err := c.Next()

		if !s.skipLogResponse(c) {
			fields := []zap.Field{
				zap.Int("status", c.Response().StatusCode()),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("request-id", c.Locals(requestid.ConfigDefault.ContextKey).(string)),
				zap.Float32("latency-ms", float32(time.Since(start).Milliseconds())),
				zap.Error(err),
			}
			if !c.Locals(ContextKeyDisableBodyLog, false).(bool) {
				fields = append(fields, zap.String("body", utils.TruncateString(string(c.Response().Body()), 512)))
			}
			log.Info(
				"response",
				fields...,
			)
		}
		return err
	})
}

// Listen blocks until the server fails or the global context is cancelled.
func (s *Server) Listen() error {
	shutdownChan := make(chan error, 1)

	go func() {
		if err := s.app.Listen(fmt.Sprintf("%s:%d", s.host, s.port)); err != nil {
			shutdownChan <- err
		}
	}()

	select {
	case err := <-shutdownChan:
		return err
	case <-s.globalCtx.Context().Done():
		log.Info("shutting down server due to context cancellation")
		return s.app.Shutdown()
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) GetHost() string {
	return s.host
}

func (s *Server) GetPort() int {
	return s.port
}
