package validating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/pkg/exceldate"
)

// DiasLimite es el umbral de antigüedad de la última venta para aprobar
// una baja. Es una constante de política comercial, no configurable.
const DiasLimite = 90

// motivoDuplicado es la marca textual que deriva a revisión manual cuando
// hay ventas recientes. Regla de negocio deliberadamente literal: coincide
// por substring sin distinguir mayúsculas.
const motivoDuplicado = "duplicado"

type Service struct {
	store DataStore

	// hoy se inyecta en tests; en producción es time.Now
	hoy func() time.Time
}

func NewService(store DataStore) Validator {
	return &Service{
		store: store,
		hoy:   time.Now,
	}
}

// Validar decide si un cliente puede ser inhabilitado. Las reglas se
// evalúan en orden y gana la primera que aplica:
//
//  1. cliente desconocido            -> RECHAZADO
//  2. sin ventas registradas         -> APROBADO
//  3. ventas sin fechas válidas      -> APROBADO
//  4. última venta hace más de 90 días -> APROBADO
//  5. venta reciente + motivo "duplicado" -> REVISION_MANUAL
//  6. venta reciente, otro motivo    -> RECHAZADO
//  7. cualquier falla de resolución  -> ERROR
func (s *Service) Validar(ctx context.Context, codigoCliente, motivo string) (decision domain.Decision) {
	codigo := strings.TrimSpace(codigoCliente)

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"codigo_cliente": codigo,
				"panic":          r,
			}).Error("Pánico durante la validación de la solicitud")
			decision = s.decisionError(codigo, motivo, fmt.Errorf("%v", r))
		}
	}()

	logrus.WithFields(logrus.Fields{
		"codigo_cliente": codigo,
		"motivo":         motivo,
	}).Info("Validando solicitud de baja")

	cliente, err := s.store.GetClienteByCodigo(ctx, codigo)
	if err != nil {
		return s.decisionError(codigo, motivo, err)
	}

	ventas, err := s.store.GetVentasByCliente(ctx, codigo)
	if err != nil {
		return s.decisionError(codigo, motivo, err)
	}

	atrib, err := s.resolverAtribucion(ctx, cliente, ventas)
	if err != nil {
		return s.decisionError(codigo, motivo, err)
	}

	// Regla 1: sin identidad no se aprueba nada
	if atrib.nombre == "" {
		return domain.Decision{
			CodigoCliente: codigo,
			NombreCliente: domain.NombreClienteNoEncontrado,
			Motivo:        motivo,
			Resultado:     domain.ResultadoRechazado,
			Razon:         fmt.Sprintf("Cliente con código %s no encontrado en la base de datos", codigo),
		}
	}

	base := domain.Decision{
		CodigoCliente: codigo,
		NombreCliente: atrib.nombre,
		Motivo:        motivo,
		Zona:          atrib.zona,
		Ruta:          atrib.ruta,
		Vendedor:      atrib.vendedor,
	}

	historial := nuevoHistorial(codigo, ventas)

	// Regla 2: cliente sin ventas registradas
	if historial.totalFilas == 0 {
		base.Resultado = domain.ResultadoAprobado
		base.Razon = "No tiene ventas registradas"
		return base
	}

	// Regla 3: hay filas de venta pero ninguna fecha sobrevivió la
	// normalización; operacionalmente equivale a la regla 2
	masReciente, ok := historial.masReciente()
	if !ok {
		base.Resultado = domain.ResultadoAprobado
		base.Razon = "No tiene ventas con fechas válidas"
		return base
	}

	dias := exceldate.DiasDesde(masReciente, s.hoy())
	fechaFormateada := exceldate.Formatear(masReciente)

	logrus.WithFields(logrus.Fields{
		"codigo_cliente": codigo,
		"ventas_validas": len(historial.fechas),
		"ultima_venta":   fechaFormateada,
		"dias":           dias,
	}).Debug("Historial de ventas del cliente")

	// Ventas con fecha futura indican datos inconsistentes; mejor un ERROR
	// explícito que aprobar o rechazar en falso
	if dias < 0 {
		base.Resultado = domain.ResultadoError
		base.Razon = "Error al procesar fechas de ventas. Contacte al administrador."
		return base
	}

	// Regla 4: última venta más antigua que el umbral
	if dias > DiasLimite {
		base.Resultado = domain.ResultadoAprobado
		base.Razon = fmt.Sprintf("Última venta hace %d días (%s)", dias, fechaFormateada)
		return base
	}

	// Regla 5: duplicado con ventas recientes se deriva a revisión manual
	if strings.Contains(strings.ToLower(motivo), motivoDuplicado) {
		base.Resultado = domain.ResultadoRevisionManual
		base.Razon = fmt.Sprintf(
			"Derivado a revisión manual con Inteligencia Comercial. Última venta hace %d días (%s)",
			dias, fechaFormateada,
		)
		return base
	}

	// Regla 6: ventas recientes, cualquier otro motivo
	base.Resultado = domain.ResultadoRechazado
	base.Razon = fmt.Sprintf("Última venta hace %d días (%s)", dias, fechaFormateada)
	return base
}

// decisionError es el desenlace terminal para fallas de la capa de datos:
// se registra y se responde como cualquier otra decisión, nunca se propaga.
func (s *Service) decisionError(codigo, motivo string, err error) domain.Decision {
	logrus.WithError(err).WithField("codigo_cliente", codigo).Error("Error validando solicitud de baja")

	return domain.Decision{
		CodigoCliente: codigo,
		NombreCliente: "ERROR",
		Motivo:        motivo,
		Resultado:     domain.ResultadoError,
		Razon:         fmt.Sprintf("Error procesando solicitud: %v", err),
	}
}
