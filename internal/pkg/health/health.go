package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/database"
	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/nats"
)

// Checker reports whether one dependency is reachable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker pings the PostgreSQL connection
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker pings the Redis connection
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// NATSChecker verifies the NATS connection is up
type NATSChecker struct {
	client *nats.Client
}

// NewNATSChecker creates a NATS health checker
func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	conn := n.client.GetConn()
	if conn == nil || !conn.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}
	return nil
}

// Service runs health checks over all registered dependencies
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a health checker under a dependency name
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Response is the detailed health check payload
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo is the per-dependency health result
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll runs every registered checker and aggregates the results
func (s *Service) CheckAll(ctx context.Context) Response {
	response := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Dependencies[name] = DependencyInfo{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			response.Status = "unhealthy"
		} else {
			response.Dependencies[name] = DependencyInfo{Status: "healthy"}
		}
	}

	return response
}

// RegisterEndpoints registers the health check routes
func RegisterEndpoints(e *echo.Echo, serviceName, version string, service *Service) {
	group := e.Group("/health")

	// load balancer probe, no dependency checks
	group.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	group.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := service.CheckAll(ctx)
		response.Service = serviceName
		response.Version = version

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})

	group.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := service.CheckAll(ctx)
		if response.Status == "unhealthy" {
			response.Service = serviceName
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	})

	group.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
