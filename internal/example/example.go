// Package example implements an example sub-application in an outside package:
// a small set of status pages mounted into a host application.
package example

import (
	"net/http"
	"time"

	"github.com/advdv/bresp"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Config configures the status pages from the environment.
type Config struct {
	// MountPrefix is the path the host application mounts the pages under.
	MountPrefix string `env:"MOUNT_PREFIX" envDefault:"/status"`
	// Version is reported on the version page.
	Version string `env:"VERSION" envDefault:"dev"`
}

// ParseConfig parses the configuration from the environment.
func ParseConfig() (cfg Config, err error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse environment")
	}

	return cfg, nil
}

// Route enumerates the sub-application's own route universe.
type Route int

const (
	Health Route = iota
	Version
)

// RootRoute is the host application's route universe. The host in this
// example routes plain paths.
type RootRoute struct{ Path string }

// Routes returns the sub universe's capability set.
func Routes() bresp.RouteSet[Route] {
	return bresp.Table(map[Route]string{
		Health:  "/health",
		Version: "/version",
	}, map[Route][]string{
		Health:  {"public"},
		Version: {"public"},
	})
}

// New builds the mount and handler for the status pages.
func New(cfg Config) (*bresp.Mount[Route, RootRoute], bresp.Handler[Route, RootRoute]) {
	routes := Routes()

	mount := &bresp.Mount[Route, RootRoute]{
		Routes: routes,
		Root: bresp.RouteSet[RootRoute]{
			Render: func(r RootRoute) string { return r.Path },
			Parse:  func(p string) (RootRoute, bool) { return RootRoute{Path: p}, true },
		},
		ToRoot: func(r Route) RootRoute {
			return RootRoute{Path: cfg.MountPrefix + routes.Render(r)}
		},
		Prefix: cfg.MountPrefix,
		App:    cfg,
	}

	handler := bresp.HandlerFunc[Route, RootRoute](func(c *bresp.Ctx[Route, RootRoute]) error {
		route, ok := c.Route()
		if !ok {
			c.Next()
			return nil
		}

		switch route {
		case Health:
			c.Text("ok")
		case Version:
			return c.JSON(map[string]string{"version": cfg.Version})
		}

		return nil
	})

	return mount, handler
}

// Logging provides request logging middleware on a structured zap logger.
func Logging(logs *zap.Logger) bresp.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			logs.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)))
		})
	}
}
