// Package http wires the application together and exposes it over REST.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	attachmentUsecases "helpdesk/internal/application/attachment/usecases"
	authUsecases "helpdesk/internal/application/auth/usecases"
	softwareUsecases "helpdesk/internal/application/software/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/objectstorage"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/services"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// Container wires repositories, services, use cases, and handlers, and owns
// the HTTP server lifecycle.
type Container struct {
	engine *gin.Engine
	server *http.Server
	cfg    *config.Config
	log    logger.Interface
}

func NewContainer(cfg *config.Config, database *gorm.DB) (*Container, error) {
	log := logger.NewLogger().Named("http")

	// Repositories
	userRepo := repository.NewUserRepository(database)
	softwareRepo := repository.NewSoftwareRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	historyRepo := repository.NewTicketHistoryRepository(database)
	attachmentRepo := repository.NewTicketAttachmentRepository(database)

	// Infrastructure services
	txManager := db.NewTransactionManager(database)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpHours)
	passwordHasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	codeGenerator := services.NewTicketCodeGenerator(database)

	storageClient, err := objectstorage.NewClient(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	var notifier ticketUsecases.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPEmailService(&cfg.Email)
	}

	// Use cases
	validateEmployeeUC := authUsecases.NewValidateEmployeeUseCase(userRepo, jwtService, log)
	adminLoginUC := authUsecases.NewAdminLoginUseCase(userRepo, jwtService, passwordHasher, log)
	getUserUC := authUsecases.NewGetUserUseCase(userRepo, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(
		ticketRepo, historyRepo, userRepo, softwareRepo, codeGenerator, txManager, log)
	updateStatusUC := ticketUsecases.NewUpdateStatusUseCase(
		ticketRepo, historyRepo, userRepo, txManager, notifier, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketHistoryUC := ticketUsecases.NewGetTicketHistoryUseCase(ticketRepo, historyRepo, log)
	getTicketStatsUC := ticketUsecases.NewGetTicketStatsUseCase(ticketRepo, log)

	listSoftwareUC := softwareUsecases.NewListSoftwareUseCase(softwareRepo, log)
	importCatalogUC := softwareUsecases.NewImportCatalogUseCase(softwareRepo, log)

	requestUploadUC := attachmentUsecases.NewRequestUploadUseCase(storageClient, log)
	registerAttachmentUC := attachmentUsecases.NewRegisterAttachmentUseCase(
		ticketRepo, attachmentRepo, storageClient, log)
	listAttachmentsUC := attachmentUsecases.NewListAttachmentsUseCase(ticketRepo, attachmentRepo, log)
	deleteAttachmentUC := attachmentUsecases.NewDeleteAttachmentUseCase(
		ticketRepo, attachmentRepo, storageClient, log)
	downloadObjectUC := attachmentUsecases.NewDownloadObjectUseCase(
		ticketRepo, attachmentRepo, storageClient, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(validateEmployeeUC, adminLoginUC, getUserUC)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, updateStatusUC, getTicketUC, listTicketsUC, getTicketHistoryUC, getTicketStatsUC)
	softwareHandler := handlers.NewSoftwareHandler(listSoftwareUC, importCatalogUC)
	attachmentHandler := handlers.NewAttachmentHandler(
		requestUploadUC, registerAttachmentUC, listAttachmentsUC, deleteAttachmentUC, downloadObjectUC)
	healthHandler := handlers.NewHealthHandler(database)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	engine := newEngine(cfg, log)
	registerRoutes(engine, &routeDeps{
		authHandler:       authHandler,
		ticketHandler:     ticketHandler,
		softwareHandler:   softwareHandler,
		attachmentHandler: attachmentHandler,
		healthHandler:     healthHandler,
		authMiddleware:    authMiddleware,
	})

	return &Container{
		engine: engine,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Engine exposes the configured gin engine, mainly for tests.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server and blocks until it stops.
func (c *Container) Run() error {
	c.server = &http.Server{
		Addr:         c.cfg.Server.GetAddr(),
		Handler:      c.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	c.log.Infow("starting HTTP server", "addr", c.server.Addr)

	if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.server == nil {
		return nil
	}

	c.log.Infow("shutting down HTTP server")
	return c.server.Shutdown(ctx)
}
