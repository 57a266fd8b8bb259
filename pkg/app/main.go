package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/pkg/cache"
	"github.com/ghuser/gamestore/pkg/database"
	"github.com/ghuser/gamestore/pkg/events"
	"github.com/ghuser/gamestore/pkg/logger"
	"github.com/ghuser/gamestore/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing purchase", "user_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	Tokens         *auth.TokenIssuer
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
