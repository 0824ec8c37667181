package middleware

import (
	"github.com/pixelsmith/contactrelay/internal/config"
	"github.com/pixelsmith/contactrelay/internal/database"
	"github.com/pixelsmith/contactrelay/internal/logger"
)

// Middleware holds all HTTP middleware
type Middleware struct {
	rdb *database.Redis
	log *logger.Logger
	cfg *config.Config
}

// New creates a new Middleware instance. rdb may be nil; rate limiting
// is then skipped.
func New(rdb *database.Redis, log *logger.Logger, cfg *config.Config) *Middleware {
	return &Middleware{
		rdb: rdb,
		log: log,
		cfg: cfg,
	}
}
