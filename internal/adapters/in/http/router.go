package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

// APIPrefix is the path every operation of the API document is mounted under.
const APIPrefix = "/api/v1"

type ServerConfig struct {
	Env         string
	RateLimit   float64
	CORSOrigins []string
	EchoLevel   log.Lvl
}

// NewHTTPServer builds the echo instance with middlewares, documentation and routes.
func NewHTTPServer(conf ServerConfig, server *Server, logger *slog.Logger) (*echo.Echo, error) {
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(conf.EchoLevel)

	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	// setup middlewares
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(RequestLoggerConfig(logger)))
	e.Use(corsMiddleware(conf.CORSOrigins))
	if conf.Env != "test" && conf.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(RatelimiterConfig(conf.RateLimit)))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	registerDocs()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	validation, err := OpenAPIRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	api := e.Group(APIPrefix, validation)
	RegisterHandlers(api, server)

	return e, nil
}

func corsMiddleware(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		return middleware.CORS()
	}
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	})
}

// RequestLoggerConfig writes one structured line per request.
func RequestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	}
}

// RatelimiterConfig limits every client IP to perSecond requests.
func RatelimiterConfig(perSecond float64) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(perSecond), Burst: burstFor(perSecond), ExpiresIn: time.Minute},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			id := ctx.RealIP()
			return id, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, Error{Code: CodeValidation, Message: "client cannot be identified"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, Error{Code: CodeRateLimited, Message: "too many requests"})
		},
	}
}

// burstFor lets at least one request through per refill, also for rates below one per second.
func burstFor(perSecond float64) int {
	return max(1, int(math.Ceil(perSecond)))
}
