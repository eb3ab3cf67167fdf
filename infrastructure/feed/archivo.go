package feed

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// ArchivoReader lee la planificación desde un CSV local. Se usa como
// contingencia cuando la planilla remota no está disponible.
type ArchivoReader struct {
	ruta string
}

func NewArchivoReader(ruta string) *ArchivoReader {
	return &ArchivoReader{
		ruta: ruta,
	}
}

func (r *ArchivoReader) Leer(_ context.Context) ([]map[string]string, error) {
	archivo, err := os.Open(r.ruta)
	if err != nil {
		return nil, fmt.Errorf("error al abrir el archivo de planificación: %w", err)
	}
	defer archivo.Close()

	registros, err := parsearCSV(archivo)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"archivo":   r.ruta,
		"registros": len(registros),
	}).Info("Planificación leída desde archivo local")

	return registros, nil
}

// ReaderConRespaldo intenta la fuente primaria y cae al respaldo solo
// cuando la primaria falla. El respaldo es opcional.
type ReaderConRespaldo struct {
	primario Reader
	respaldo Reader
}

// Reader es la fuente de registros crudos de planificación.
type Reader interface {
	Leer(ctx context.Context) ([]map[string]string, error)
}

func NewReaderConRespaldo(primario, respaldo Reader) *ReaderConRespaldo {
	return &ReaderConRespaldo{
		primario: primario,
		respaldo: respaldo,
	}
}

func (r *ReaderConRespaldo) Leer(ctx context.Context) ([]map[string]string, error) {
	registros, err := r.primario.Leer(ctx)
	if err == nil {
		return registros, nil
	}

	if r.respaldo == nil {
		return nil, err
	}

	logrus.WithError(err).Warn("Fuente primaria de planificación no disponible, usando respaldo")

	return r.respaldo.Leer(ctx)
}
