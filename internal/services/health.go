package services

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/localnerve/routinesdb/internal/config"
	"gorm.io/gorm"
)

const servicePingTimeout = 1500 * time.Millisecond

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Service      string            `json:"service"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck checks database connectivity and that the service port accepts connections
func HealthCheck(cfg *config.Config, db *gorm.DB, serviceHost string) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	fail := func(component, key string, err error, message string) {
		result.Status = "unhealthy"
		result.Details[key] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("%s: %v", message, err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; %s: %v", message, err)
		}
		log.Printf("Health check failed - %s: %v", component, err)
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		fail("database connection", "database_error", err, "Database connection error")
	} else if err := sqlDB.Ping(); err != nil {
		result.Database = "unreachable"
		fail("database ping", "database_ping_error", err, "Database ping failed")
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBDatabase
	}

	// Check the HTTP listener
	address := serviceAddress(serviceHost, cfg.Port)
	if err := dialService(address, servicePingTimeout); err != nil {
		result.Service = "unreachable"
		fail("service ping", "service_error", err, "Service ping failed")
	} else {
		result.Service = "ok"
		result.Details["service_url"] = "http://" + address
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}

// serviceAddress is the listener address on host, defaulting to localhost
func serviceAddress(host, port string) string {
	if host == "" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

// dialService reports whether a TCP connection to address opens within timeout
func dialService(address string, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}
