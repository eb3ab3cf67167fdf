// Package feed lee la planificación de rutas publicada por el equipo
// comercial. La fuente primaria es una hoja de Google Sheets exportada
// como CSV, con un archivo local como contingencia.
package feed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	spreadsheetIDRegex = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9\-_]+)`)
	gidRegex           = regexp.MustCompile(`[#?&]gid=([0-9]+)`)
)

// SheetReader descarga una hoja de Google Sheets vía su URL de
// exportación CSV. No requiere credenciales, la hoja debe estar
// compartida con acceso de lectura por enlace.
type SheetReader struct {
	exportURL string
	client    *http.Client
}

func NewSheetReader(sheetURL string) (*SheetReader, error) {
	exportURL, err := urlDeExportacion(sheetURL)
	if err != nil {
		return nil, err
	}

	return &SheetReader{
		exportURL: exportURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (r *SheetReader) Leer(ctx context.Context) ([]map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error al armar la request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al descargar la planilla: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la planilla respondió con estado %d", resp.StatusCode)
	}

	registros, err := parsearCSV(resp.Body)
	if err != nil {
		return nil, err
	}

	logrus.WithField("registros", len(registros)).Info("Planilla de planificación descargada")

	return registros, nil
}

// urlDeExportacion convierte la URL de edición de una hoja en su URL de
// exportación CSV, respetando la pestaña (gid) cuando viene indicada.
func urlDeExportacion(sheetURL string) (string, error) {
	match := spreadsheetIDRegex.FindStringSubmatch(sheetURL)
	if match == nil {
		return "", errors.Errorf("URL de planilla inválida: %s", sheetURL)
	}

	exportURL := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", match[1])
	if gid := gidRegex.FindStringSubmatch(sheetURL); gid != nil {
		exportURL += "&gid=" + gid[1]
	}

	return exportURL, nil
}

// parsearCSV interpreta la primera fila como encabezados y retorna una
// fila por registro, indexada por encabezado sin espacios sobrantes.
func parsearCSV(r io.Reader) ([]map[string]string, error) {
	lector := csv.NewReader(r)
	lector.FieldsPerRecord = -1
	lector.TrimLeadingSpace = true

	encabezados, err := lector.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("la planilla está vacía")
		}
		return nil, fmt.Errorf("error al leer encabezados: %w", err)
	}

	for i, encabezado := range encabezados {
		encabezados[i] = strings.TrimSpace(encabezado)
	}

	registros := make([]map[string]string, 0)
	for {
		fila, err := lector.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al leer fila: %w", err)
		}

		registro := make(map[string]string, len(encabezados))
		for i, encabezado := range encabezados {
			if encabezado == "" {
				continue
			}
			if i < len(fila) {
				registro[encabezado] = fila[i]
			}
		}

		registros = append(registros, registro)
	}

	return registros, nil
}
