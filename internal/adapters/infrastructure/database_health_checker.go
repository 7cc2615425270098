package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"
	"tripplanner.app/internal/ports"
)

// DatabaseHealthChecker pings the SQL connection behind gorm
type DatabaseHealthChecker struct {
	db      *gorm.DB
	driver  string
	timeout time.Duration
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(db *gorm.DB, driver string) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db, driver: driver, timeout: 2 * time.Second}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details:   map[string]interface{}{"driver": d.driver},
	}

	if d.db == nil {
		status.Status = "unhealthy"
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = "unhealthy"
		status.Error = "failed to get underlying database connection"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Status = "healthy"
	status.Details["connected"] = true
	status.Details["open_connections"] = stats.OpenConnections
	return status
}
