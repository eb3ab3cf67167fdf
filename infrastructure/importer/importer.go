// Package importer interpreta las planillas xlsx que el área comercial
// sube al sistema: el histórico de ventas y el maestro de clientes.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// LeerVentas parsea una planilla de ventas. La fecha se conserva cruda
// (serial o texto); el repositorio la normaliza al persistir.
func LeerVentas(r io.Reader) ([]domain.Venta, error) {
	filas, err := filasDePlanilla(r)
	if err != nil {
		return nil, err
	}

	columnas, err := mapearColumnas(filas[0], map[string][]string{
		"codigo": {"CODIGO", "CÓDIGO", "CODIGO CLIENTE", "CÓDIGO CLIENTE"},
		"nombre": {"CLIENTE", "NOMBRE", "NOMBRE CLIENTE"},
		"fecha":  {"FECHA", "FECHA VENTA", "FECHA DE VENTA"},
	})
	if err != nil {
		return nil, err
	}

	ventas := make([]domain.Venta, 0, len(filas)-1)
	descartadas := 0

	for _, fila := range filas[1:] {
		codigo := strings.TrimSpace(celda(fila, columnas["codigo"]))
		if codigo == "" {
			descartadas++
			continue
		}

		ventas = append(ventas, domain.Venta{
			CodigoCliente: codigo,
			NombreCliente: strings.TrimSpace(celda(fila, columnas["nombre"])),
			FechaRaw:      fechaCruda(celda(fila, columnas["fecha"])),
		})
	}

	logrus.WithFields(logrus.Fields{
		"ventas":      len(ventas),
		"descartadas": descartadas,
	}).Info("Planilla de ventas importada")

	return ventas, nil
}

// LeerClientes parsea el maestro de clientes.
func LeerClientes(r io.Reader) ([]domain.Cliente, error) {
	filas, err := filasDePlanilla(r)
	if err != nil {
		return nil, err
	}

	columnas, err := mapearColumnas(filas[0], map[string][]string{
		"codigo": {"CODIGO", "CÓDIGO", "CODIGO CLIENTE", "CÓDIGO CLIENTE"},
		"nombre": {"CLIENTE", "NOMBRE", "NOMBRE CLIENTE"},
		"ruta":   {"RUTA"},
		"zona":   {"ZONA"},
	})
	if err != nil {
		return nil, err
	}

	clientes := make([]domain.Cliente, 0, len(filas)-1)
	for _, fila := range filas[1:] {
		codigo := strings.TrimSpace(celda(fila, columnas["codigo"]))
		if codigo == "" {
			continue
		}

		clientes = append(clientes, domain.Cliente{
			Codigo: codigo,
			Nombre: strings.TrimSpace(celda(fila, columnas["nombre"])),
			Ruta:   strings.TrimSpace(celda(fila, columnas["ruta"])),
			Zona:   strings.TrimSpace(celda(fila, columnas["zona"])),
			Activo: true,
		})
	}

	logrus.WithField("clientes", len(clientes)).Info("Maestro de clientes importado")

	return clientes, nil
}

func filasDePlanilla(r io.Reader) ([][]string, error) {
	archivo, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error al abrir la planilla: %w", err)
	}
	defer archivo.Close()

	hojas := archivo.GetSheetList()
	if len(hojas) == 0 {
		return nil, errors.New("la planilla no tiene hojas")
	}

	filas, err := archivo.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("error al leer la hoja %q: %w", hojas[0], err)
	}

	if len(filas) < 2 {
		return nil, errors.New("la planilla no tiene filas de datos")
	}

	return filas, nil
}

// mapearColumnas ubica cada campo requerido en los encabezados de la
// planilla, tolerando los alias que usan las distintas áreas.
func mapearColumnas(encabezados []string, alias map[string][]string) (map[string]int, error) {
	indice := make(map[string]int, len(encabezados))
	for i, encabezado := range encabezados {
		indice[strings.ToUpper(strings.TrimSpace(encabezado))] = i
	}

	columnas := make(map[string]int, len(alias))
	for campo, nombres := range alias {
		encontrado := false
		for _, nombre := range nombres {
			if i, ok := indice[nombre]; ok {
				columnas[campo] = i
				encontrado = true
				break
			}
		}
		if !encontrado {
			return nil, errors.Errorf("la planilla no tiene la columna %s", strings.ToUpper(campo))
		}
	}

	return columnas, nil
}

func celda(fila []string, i int) string {
	if i < 0 || i >= len(fila) {
		return ""
	}

	return fila[i]
}

// fechaCruda convierte los seriales numéricos de Excel a float64 y deja
// el resto tal como vino.
func fechaCruda(valor string) interface{} {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(valor, 64); err == nil {
		return serial
	}

	return valor
}
