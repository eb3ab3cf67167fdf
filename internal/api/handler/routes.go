package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
	"github.com/vfg2006/bajas-api/internal/api/handler/router"
	"github.com/vfg2006/bajas-api/internal/scheduler"
	"github.com/vfg2006/bajas-api/internal/usecases/authenticating"
	"github.com/vfg2006/bajas-api/internal/usecases/motivos"
	"github.com/vfg2006/bajas-api/internal/usecases/reporting"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing"
	"github.com/vfg2006/bajas-api/internal/usecases/validating"
	"github.com/vfg2006/bajas-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Bajas expone la recepción de solicitudes desde la app de campo. Es la
// única ruta de escritura sin token: los vendedores no se autentican.
func Bajas(validador validating.Validator, reporter reporting.Reporter, uploadsDir string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/bajas/solicitar",
			Method:  http.MethodPost,
			Handler: SolicitarBaja(validador, reporter, uploadsDir),
		},
	}
}

func Motivos(service motivos.Catalog) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/motivos",
			Method:  http.MethodGet,
			Handler: ListarMotivos(service),
		},
		{
			Path:        "/v1/admin/motivos",
			Method:      http.MethodPost,
			Handler:     CrearMotivo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/motivos/:id",
			Method:      http.MethodPut,
			Handler:     RenombrarMotivo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/motivos/:id/activar",
			Method:      http.MethodPost,
			Handler:     ActivarMotivo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/motivos/:id/desactivar",
			Method:      http.MethodPost,
			Handler:     DesactivarMotivo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
	}
}

func Reportes(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/reportes",
			Method:      http.MethodGet,
			Handler:     ListarReportes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/reportes/estadisticas",
			Method:      http.MethodGet,
			Handler:     EstadisticasReportes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/reportes/exportar",
			Method:      http.MethodGet,
			Handler:     ExportarReportes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/reportes/cliente/:codigo",
			Method:      http.MethodGet,
			Handler:     ReportesPorCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
	}
}

func Planificacion(bitacora repository.SyncLogRepository, rutas repository.PlanificacionRepository, syncer *syncing.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/planificacion",
			Method:      http.MethodGet,
			Handler:     ListarPlanificacion(rutas),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/planificacion/estado",
			Method:      http.MethodGet,
			Handler:     EstadoPlanificacion(bitacora, rutas),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/planificacion/migracion-inicial",
			Method:      http.MethodPost,
			Handler:     MigracionInicialPlanificacion(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
	}
}

func Importacion(clientes repository.ClienteRepository, ventas repository.VentaRepository, recargador Recargador) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/importar/clientes",
			Method:      http.MethodPost,
			Handler:     ImportarClientes(clientes, recargador),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/importar/ventas",
			Method:      http.MethodPost,
			Handler:     ImportarVentas(ventas, recargador),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
	}
}

func CronJobs(service *scheduler.PlanificacionSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/cron/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
		{
			Path:        "/v1/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorOnly()},
		},
	}
}
