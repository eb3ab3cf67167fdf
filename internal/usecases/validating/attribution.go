package validating

import (
	"context"
	"strings"

	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/pkg/exceldate"
)

// atribucion es la identidad y asignación comercial resuelta de un cliente.
// Todo campo ausente queda como string vacío, nunca nulo, para que el
// formateo posterior sea total.
type atribucion struct {
	nombre   string
	ruta     string
	zona     string
	vendedor string
}

// resolverAtribucion reconcilia tres fuentes independientes: el maestro de
// clientes, el historial de ventas (para el nombre capturado en la venta)
// y la planificación de rutas. Cualquiera puede faltar.
func (s *Service) resolverAtribucion(
	ctx context.Context,
	cliente *domain.Cliente,
	ventas []domain.Venta,
) (atribucion, error) {
	atrib := atribucion{}

	if cliente != nil {
		atrib.nombre = strings.TrimSpace(cliente.Nombre)
		atrib.ruta = strings.TrimSpace(cliente.Ruta)
		atrib.zona = strings.TrimSpace(cliente.Zona)
	}

	// Fallback: nombre capturado en la venta más reciente cuando el
	// maestro de clientes no conoce el código
	if atrib.nombre == "" {
		atrib.nombre = nombreDesdeVentas(ventas)
	}

	if atrib.ruta == "" {
		return atrib, nil
	}

	rutaInfo, err := s.store.GetPlanificacionByRuta(ctx, atrib.ruta)
	if err != nil {
		return atrib, err
	}

	if rutaInfo != nil {
		if zona := strings.TrimSpace(rutaInfo.Zona); zona != "" {
			atrib.zona = zona
		}
		atrib.vendedor = strings.TrimSpace(rutaInfo.Vendedor)
	}

	return atrib, nil
}

func nombreDesdeVentas(ventas []domain.Venta) string {
	nombre := ""
	var mejorFecha int64

	for _, venta := range ventas {
		capturado := strings.TrimSpace(venta.NombreCliente)
		if capturado == "" {
			continue
		}

		fecha, ok := exceldate.Normalize(venta.FechaRaw)
		if !ok {
			if nombre == "" {
				nombre = capturado
			}
			continue
		}

		if unix := fecha.Unix(); nombre == "" || unix > mejorFecha {
			nombre = capturado
			mejorFecha = unix
		}
	}

	return nombre
}
