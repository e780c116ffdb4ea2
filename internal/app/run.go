package app

import (
	"context"
	"fmt"

	"github.com/opencatalog/catalogd/internal/ctxlog"
)

// Run executes the main application logic. Without a status port it prints
// the resolved type registrations and returns, acting as a configuration
// check. With one it serves the status endpoints until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	routes := a.registry.Routes()
	a.logger.Info("Type registrations resolved.", "count", len(routes))

	if a.config.StatusPort <= 0 {
		if len(routes) == 0 {
			fmt.Fprintln(a.outW, "no custom types registered")
			return nil
		}
		for _, route := range routes {
			fmt.Fprintf(a.outW, "%-14s %-24s controller=%s\n", route.Axis, route.Type, route.Controller)
		}
		return nil
	}

	a.startStatusServer(a.config.StatusPort)
	<-ctx.Done()
	return a.closeStatusServer()
}
