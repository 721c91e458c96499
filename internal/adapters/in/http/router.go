package http

import (
	"net/http"

	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the echo instance: recovery, request logging, OpenAPI request
// validation, the API routes, a health probe and the Swagger UI.
func NewRouter(server *Server, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = servers.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(RequestValidator(doc))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.With(zap.String("component", "http"))
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			if v.Status >= http.StatusInternalServerError {
				logger.Error("request", fields...)
				return nil
			}
			logger.Debug("request", fields...)
			return nil
		},
	})
}
