package syncing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/domain"
)

// ErrYaPoblada señala que la migración inicial no corrió porque la tabla
// ya tiene datos. No es una falla: es el guardián de idempotencia contra
// una doble siembra.
var ErrYaPoblada = errors.New("la tabla de planificación ya contiene datos")

// Resumen son los conteos de una corrida de reconciliación.
type Resumen struct {
	Insertados   int `json:"insertados"`
	Actualizados int `json:"actualizados"`
	SinCambios   int `json:"sin_cambios"`
}

// Service reconcilia el feed externo de planificación contra la tabla
// almacenada. No implementa exclusión mutua: el que lo invoca (el
// scheduler) garantiza que no haya corridas superpuestas.
type Service struct {
	feed     FeedReader
	rutas    PlanificacionStore
	bitacora SyncBitacora
}

func NewService(feed FeedReader, rutas PlanificacionStore, bitacora SyncBitacora) *Service {
	return &Service{
		feed:     feed,
		rutas:    rutas,
		bitacora: bitacora,
	}
}

// Sincronizar lee el feed y reconcilia cada registro contra la tabla.
// Toda corrida, exitosa o no, deja una fila en la bitácora.
func (s *Service) Sincronizar(ctx context.Context) (Resumen, error) {
	registros, err := s.feed.Leer(ctx)
	if err != nil {
		// Un feed inalcanzable no tiene desenlace seguro que sustituir:
		// se registra y se propaga al scheduler
		s.registrarBitacora(ctx, domain.TipoSyncActualizacion, Resumen{}, err)
		return Resumen{}, errors.Wrap(err, "error leyendo el feed de planificación")
	}

	return s.Reconciliar(ctx, registros)
}

// Reconciliar clasifica cada registro del feed como nuevo, modificado o
// sin cambios y aplica los upserts correspondientes. Una sola consulta de
// la tabla completa, no una por registro.
func (s *Service) Reconciliar(ctx context.Context, registros []map[string]string) (Resumen, error) {
	resumen := Resumen{}

	existentes, err := s.rutas.GetAll(ctx)
	if err != nil {
		s.registrarBitacora(ctx, domain.TipoSyncActualizacion, resumen, err)
		return resumen, errors.Wrap(err, "error consultando la planificación almacenada")
	}

	porRuta := make(map[string]domain.PlanificacionRuta, len(existentes))
	for _, ruta := range existentes {
		porRuta[ruta.Ruta] = ruta
	}

	logrus.WithFields(logrus.Fields{
		"registros_feed": len(registros),
		"registros_db":   len(existentes),
	}).Info("Comparando feed de planificación contra la base de datos")

	for _, crudo := range registros {
		registro := normalizarRegistro(crudo)

		// Sin ruta no hay clave: se omite sin contar
		if registro.Ruta == "" {
			continue
		}

		existente, encontrado := porRuta[registro.Ruta]

		switch {
		case !encontrado:
			if err := s.rutas.Create(ctx, registro); err != nil {
				s.registrarBitacora(ctx, domain.TipoSyncActualizacion, resumen, err)
				return resumen, errors.Wrapf(err, "error insertando la ruta %s", registro.Ruta)
			}
			resumen.Insertados++
		case sonDiferentes(existente, registro):
			if err := s.rutas.Update(ctx, registro); err != nil {
				s.registrarBitacora(ctx, domain.TipoSyncActualizacion, resumen, err)
				return resumen, errors.Wrapf(err, "error actualizando la ruta %s", registro.Ruta)
			}
			resumen.Actualizados++
		default:
			resumen.SinCambios++
		}
	}

	s.registrarBitacora(ctx, domain.TipoSyncActualizacion, resumen, nil)

	logrus.WithFields(logrus.Fields{
		"insertados":   resumen.Insertados,
		"actualizados": resumen.Actualizados,
		"sin_cambios":  resumen.SinCambios,
	}).Info("Sincronización de planificación completada")

	return resumen, nil
}

// MigracionInicial siembra la tabla completa desde el feed. Corre una sola
// vez: si la tabla ya tiene filas retorna ErrYaPoblada sin tocar nada.
func (s *Service) MigracionInicial(ctx context.Context) (int, error) {
	total, err := s.rutas.Count(ctx)
	if err != nil {
		s.registrarBitacora(ctx, domain.TipoSyncInicial, Resumen{}, err)
		return 0, errors.Wrap(err, "error verificando la tabla de planificación")
	}

	if total > 0 {
		logrus.WithField("registros_existentes", total).
			Warn("La migración inicial no corre sobre una tabla ya poblada")
		return 0, ErrYaPoblada
	}

	registros, err := s.feed.Leer(ctx)
	if err != nil {
		s.registrarBitacora(ctx, domain.TipoSyncInicial, Resumen{}, err)
		return 0, errors.Wrap(err, "error leyendo el feed de planificación")
	}

	rutas := make([]domain.PlanificacionRuta, 0, len(registros))
	for _, crudo := range registros {
		registro := normalizarRegistro(crudo)
		if registro.Ruta == "" {
			continue
		}
		rutas = append(rutas, registro)
	}

	insertados, err := s.rutas.InsertBatch(ctx, rutas)
	if err != nil {
		s.registrarBitacora(ctx, domain.TipoSyncInicial, Resumen{}, err)
		return 0, errors.Wrap(err, "error insertando la planificación inicial")
	}

	s.registrarBitacora(ctx, domain.TipoSyncInicial, Resumen{Insertados: insertados}, nil)

	logrus.WithField("insertados", insertados).Info("Migración inicial de planificación completada")
	return insertados, nil
}

// normalizarRegistro extrae y recorta los cuatro campos del feed. Las
// claves se aceptan en mayúsculas o minúsculas según la variante del
// export.
func normalizarRegistro(crudo map[string]string) domain.PlanificacionRuta {
	return domain.PlanificacionRuta{
		Ruta:     campo(crudo, "RUTA"),
		Zona:     campo(crudo, "ZONA"),
		Dia:      campo(crudo, "DIA"),
		Vendedor: campo(crudo, "VENDEDOR"),
	}
}

func campo(registro map[string]string, clave string) string {
	if v, ok := registro[clave]; ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(registro[strings.ToLower(clave)])
}

// sonDiferentes compara por desigualdad exacta de strings; cualquier campo
// distinto dispara un update.
func sonDiferentes(almacenado, feed domain.PlanificacionRuta) bool {
	return almacenado.Zona != feed.Zona ||
		almacenado.Dia != feed.Dia ||
		almacenado.Vendedor != feed.Vendedor
}

func (s *Service) registrarBitacora(ctx context.Context, tipo domain.TipoSync, resumen Resumen, runErr error) {
	entrada := domain.SyncLog{
		TipoSync:     tipo,
		Insertados:   resumen.Insertados,
		Actualizados: resumen.Actualizados,
		SinCambios:   resumen.SinCambios,
		Estado:       domain.EstadoSyncExito,
	}

	if runErr != nil {
		entrada.Estado = domain.EstadoSyncError
		entrada.Mensaje = runErr.Error()
	}

	// La bitácora es historia operacional: una falla al escribirla no debe
	// ocultar el desenlace de la corrida
	if err := s.bitacora.Append(ctx, entrada); err != nil {
		logrus.WithError(err).Error("Error registrando la corrida en la bitácora de sincronización")
	}
}
