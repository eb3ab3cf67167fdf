// Package scheduler contiene los servicios de agendamiento para la
// sincronización de datos externos.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/config"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing"
)

type PlanificacionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PlanificacionSyncService corre la sincronización de planificación de
// rutas en los horarios configurados y expone el disparo manual.
type PlanificacionSyncService struct {
	scheduler           *gocron.Scheduler
	syncer              *syncing.Service
	config              PlanificacionSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPlanificacionSyncService(syncer *syncing.Service, cfg *config.Config) *PlanificacionSyncService {
	syncConfig := PlanificacionSyncConfig{
		CronSchedule: cfg.PlanificacionSync.CronSchedule, // Default: 6h y 19h todos los días
		SyncEnabled:  cfg.PlanificacionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuración del agendador de planificación cargada")

	return &PlanificacionSyncService{
		scheduler: scheduler,
		syncer:    syncer,
		config:    syncConfig,
	}
}

func (s *PlanificacionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronización de planificación deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronización de planificación")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Sincronizar(ctx); err != nil {
			logrus.WithError(err).Error("Error en la sincronización de planificación")
		}
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de planificación: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronización de planificación")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PlanificacionSyncService) Sincronizar(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronización de planificación ya en ejecución")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando sincronización de planificación")

	resumen, err := s.syncer.Sincronizar(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"insertados":   resumen.Insertados,
		"actualizados": resumen.Actualizados,
		"sin_cambios":  resumen.SinCambios,
	}).Info("Sincronización de planificación concluida")

	return nil
}

// TriggerManualSync dispara una sincronización fuera del horario agendado
func (s *PlanificacionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de planificación ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronización manual de planificación")
	go func() {
		if err := s.Sincronizar(context.Background()); err != nil {
			logrus.WithError(err).Error("Error en la sincronización manual de planificación")
		}
	}()
}

// GetStatus retorna el estado actual del agendador
func (s *PlanificacionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
