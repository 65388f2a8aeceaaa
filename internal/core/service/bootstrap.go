package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/api/metrics"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// Bootstrapper recovers an existing remote session into a fresh store.
// It runs at most once per store lifetime and never forcibly logs out:
// a failing fetch leaves the store at its unauthenticated initial value,
// and a late-arriving success is dropped if an explicit login or logout
// happened while the fetch was in flight.
type Bootstrapper struct {
	fetcher ports.SessionFetcher
	log     zerolog.Logger
}

func NewBootstrapper(fetcher ports.SessionFetcher, log zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{fetcher: fetcher, log: log}
}

// Run attempts the one-time session recovery. The fetcher collapses every
// failure mode (expired cookie, backend outage) into one signal, so a
// logged-out visitor and an unreachable backend look identical here. The
// underlying error is still logged and counted for operators.
func (b *Bootstrapper) Run(ctx context.Context, store *SessionStore, credential string) {
	startGen := store.Generation()

	user, profile, err := b.fetcher.Profile(ctx, credential)
	if err != nil {
		metrics.BootstrapTotal.WithLabelValues("no_session").Inc()
		b.log.Debug().Err(err).Msg("session bootstrap resolved to no session")
		return
	}

	if !store.loginIfGeneration(startGen, user, profile) {
		metrics.BootstrapTotal.WithLabelValues("stale").Inc()
		b.log.Debug().Str("user_id", user.ID).Msg("stale bootstrap result dropped")
		return
	}

	metrics.BootstrapTotal.WithLabelValues("authenticated").Inc()
	b.log.Debug().Str("user_id", user.ID).Str("role", user.Role).Msg("session recovered")
}
