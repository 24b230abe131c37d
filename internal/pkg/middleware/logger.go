package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every request with latency and status
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", method),
				logger.String("path", path),
				logger.String("user_id", userID),
			}

			switch {
			case statusCode >= 500:
				zapLogger.Error("request completed", fields...)
			case statusCode >= 400:
				zapLogger.Warn("request completed", fields...)
			default:
				zapLogger.Info("request completed", fields...)
			}

			return err
		}
	}
}
