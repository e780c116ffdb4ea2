package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// healthHandler answers liveness probes.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// typesHandler reports every registered non-core type as JSON: the same
// information a route binder consumes to mount URL namespaces.
func (a *App) typesHandler(w http.ResponseWriter, r *http.Request) {
	routes := a.registry.Routes()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(routes); err != nil {
		a.logger.Error("Failed to encode type registrations.", "error", err)
	}
}

// statusMux builds the status server's routing table. Split out so tests
// can drive the handlers without a listening socket.
func (a *App) statusMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/v1/types", a.typesHandler)
	return mux
}

// startStatusServer initializes and runs the status HTTP server.
func (a *App) startStatusServer(port int) {
	addr := fmt.Sprintf(":%d", port)
	a.httpServer = &http.Server{
		Addr:    addr,
		Handler: a.statusMux(),
	}

	go func() {
		a.logger.Info("Status server starting.", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Status server failed unexpectedly.", "error", err)
		}
	}()
}

func (a *App) closeStatusServer() error {
	if a.httpServer == nil {
		a.logger.Debug("Status server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Info("Shutting down status server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Status server shutdown failed.", "error", err)
		return err
	}

	a.logger.Debug("Status server shut down gracefully.")
	return nil
}
