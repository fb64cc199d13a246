package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/hotelier-app/hotelier-backend/api/responses"
	"github.com/hotelier-app/hotelier-backend/pkg/config"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Pinger is the health surface a dependency exposes to the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hotelier-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hotelier-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "unavailable"
				err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable").WithDetails(checks)
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			checks[name] = "ok"
		}
		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
