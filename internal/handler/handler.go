package handler

import (
	"github.com/pixelsmith/contactrelay/internal/config"
	"github.com/pixelsmith/contactrelay/internal/database"
	"github.com/pixelsmith/contactrelay/internal/logger"
	"github.com/pixelsmith/contactrelay/internal/service"
)

// Handler holds all HTTP handlers
type Handler struct {
	rdb        *database.Redis
	log        *logger.Logger
	cfg        *config.Config
	contactSvc *service.ContactService
}

// New creates a new Handler instance. rdb may be nil when Redis is not
// configured.
func New(rdb *database.Redis, log *logger.Logger, cfg *config.Config, contactSvc *service.ContactService) *Handler {
	return &Handler{
		rdb:        rdb,
		log:        log,
		cfg:        cfg,
		contactSvc: contactSvc,
	}
}
