package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/infrastructure/database/postgres"
	"github.com/vfg2006/bajas-api/infrastructure/feed"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
	"github.com/vfg2006/bajas-api/infrastructure/snapshot"
	"github.com/vfg2006/bajas-api/internal/api"
	"github.com/vfg2006/bajas-api/internal/api/handler"
	"github.com/vfg2006/bajas-api/internal/config"
	"github.com/vfg2006/bajas-api/internal/scheduler"
	"github.com/vfg2006/bajas-api/internal/usecases/authenticating"
	"github.com/vfg2006/bajas-api/internal/usecases/motivos"
	"github.com/vfg2006/bajas-api/internal/usecases/reporting"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing"
	"github.com/vfg2006/bajas-api/internal/usecases/validating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clienteRepo := repository.NewClienteRepository(pgConn)
	ventaRepo := repository.NewVentaRepository(pgConn)
	planificacionRepo := repository.NewPlanificacionRepository(pgConn)
	motivoRepo := repository.NewMotivoRepository(pgConn)
	reporteRepo := repository.NewReporteRepository(pgConn)
	syncLogRepo := repository.NewSyncLogRepository(pgConn)

	// El motor de validación lee de Postgres o del snapshot en memoria
	// según el backend configurado. Postgres sigue siendo la fuente de
	// verdad en ambos modos.
	var (
		dataStore  validating.DataStore
		recargador handler.Recargador
	)

	switch cfg.DataBackend {
	case config.BackendCache:
		store := snapshot.NewStore()
		cargador := snapshot.NewCargador(store, clienteRepo, ventaRepo, planificacionRepo)
		if err := cargador.Recargar(ctx); err != nil {
			logrus.WithError(err).Warn("No se pudo cargar el snapshot inicial, se reintenta tras la próxima importación")
		}
		dataStore = store
		recargador = cargador
	default:
		dataStore = repository.NewDataStore(clienteRepo, ventaRepo, planificacionRepo)
	}

	validador := validating.NewService(dataStore)
	reporter := reporting.NewService(reporteRepo)
	catalogoMotivos := motivos.NewService(motivoRepo)
	authenticator := authenticating.NewService(cfg)

	syncer := syncing.NewService(feedReader(cfg), planificacionRepo, syncLogRepo)

	syncService := scheduler.NewPlanificacionSyncService(syncer, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de sincronización de planificación")
	} else {
		logrus.Info("Agendador de sincronización de planificación iniciado")
	}

	server, err := api.New(cfg, api.Dependencies{
		Validador:     validador,
		Reporter:      reporter,
		Motivos:       catalogoMotivos,
		Authenticator: authenticator,
		Syncer:        syncer,
		SyncScheduler: syncService,
		Clientes:      clienteRepo,
		Ventas:        ventaRepo,
		Planificacion: planificacionRepo,
		Bitacora:      syncLogRepo,
		Recargador:    recargador,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// feedReader arma la fuente del feed de planificación: el sheet remoto
// como primario y el archivo local como respaldo cuando está configurado.
func feedReader(cfg *config.Config) syncing.FeedReader {
	var primario feed.Reader

	if cfg.PlanificacionSync.SheetURL != "" {
		sheet, err := feed.NewSheetReader(cfg.PlanificacionSync.SheetURL)
		if err != nil {
			logrus.WithError(err).Fatal("URL de planilla de planificación inválida")
		}
		primario = sheet
	}

	if cfg.PlanificacionSync.ArchivoRespaldo == "" {
		if primario == nil {
			logrus.Fatal("Se requiere PLANIFICACION_SHEET_URL o PLANIFICACION_ARCHIVO_RESPALDO")
		}
		return primario
	}

	respaldo := feed.NewArchivoReader(cfg.PlanificacionSync.ArchivoRespaldo)
	if primario == nil {
		return respaldo
	}

	return feed.NewReaderConRespaldo(primario, respaldo)
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea una conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar a PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
