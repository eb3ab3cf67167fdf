package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
	"github.com/vfg2006/bajas-api/internal/api/handler"
	"github.com/vfg2006/bajas-api/internal/api/handler/router"
	"github.com/vfg2006/bajas-api/internal/config"
	"github.com/vfg2006/bajas-api/internal/scheduler"
	"github.com/vfg2006/bajas-api/internal/usecases/authenticating"
	"github.com/vfg2006/bajas-api/internal/usecases/motivos"
	"github.com/vfg2006/bajas-api/internal/usecases/reporting"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing"
	"github.com/vfg2006/bajas-api/internal/usecases/validating"
	"github.com/vfg2006/bajas-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa los servicios y repositorios que el server expone.
type Dependencies struct {
	Validador     validating.Validator
	Reporter      reporting.Reporter
	Motivos       motivos.Catalog
	Authenticator authenticating.Authenticator
	Syncer        *syncing.Service
	SyncScheduler *scheduler.PlanificacionSyncService
	Clientes      repository.ClienteRepository
	Ventas        repository.VentaRepository
	Planificacion repository.PlanificacionRepository
	Bitacora      repository.SyncLogRepository
	Recargador    handler.Recargador
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.Bajas(deps.Validador, deps.Reporter, config.Uploads.Dir)...),
		router.WithRoutes(handler.Motivos(deps.Motivos)...),
		router.WithRoutes(handler.Reportes(deps.Reporter)...),
		router.WithRoutes(handler.Planificacion(deps.Bitacora, deps.Planificacion, deps.Syncer)...),
		router.WithRoutes(handler.Importacion(deps.Clientes, deps.Ventas, deps.Recargador)...),
		router.WithRoutes(handler.CronJobs(deps.SyncScheduler)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado controlado del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
