// Package di provides dependency injection container
package di

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/ssargent/revline/pkg/logging"
	"github.com/ssargent/revline/pkg/metrics"
)

// Container holds all the dependencies for the application
type Container struct {
	filesystem billy.Filesystem
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewContainer creates a new dependency injection container backed by the
// local filesystem. Paths handed to the filesystem must be absolute.
func NewContainer() *Container {
	return &Container{
		filesystem: osfs.New("/"),
		logger:     logging.Nop(),
		metrics:    metrics.NewMetrics(),
	}
}

// GetFilesystem returns the filesystem transcodes read from and write to
func (c *Container) GetFilesystem() billy.Filesystem {
	return c.filesystem
}

// SetFilesystem allows overriding the filesystem (for testing)
func (c *Container) SetFilesystem(fs billy.Filesystem) {
	c.filesystem = fs
}

// GetLogger returns the application logger
func (c *Container) GetLogger() *slog.Logger {
	return c.logger
}

// SetLogger replaces the application logger
func (c *Container) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// GetMetrics returns the metrics collector
func (c *Container) GetMetrics() *metrics.Metrics {
	return c.metrics
}
