// Package exceldate normaliza representaciones heterogéneas de fecha
// (fecha nativa, string ISO, número serial de planilla) a una fecha
// calendario canónica.
package exceldate

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Las planillas almacenan fechas como días desde una época. La convención
// histórica es día 1 = 1900-01-01, con una corrección de -2 días por el
// tratamiento erróneo de 1900 como año bisiesto. El ancla queda fijada por
// test: serial 45779 => 2025-05-01.
var serialEpoch = time.Date(1899, time.December, 29, 0, 0, 0, 0, time.UTC)

// Año mínimo plausible: seriales mal leídos producen fechas del siglo
// pasado y deben descartarse, no propagarse.
const minYear = 2000

var stringLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"02/01/2006",
	"2006-01-02 15:04:05",
}

// Normalize convierte un valor crudo de fecha en una fecha calendario
// (truncada a medianoche UTC). El segundo retorno es false cuando el valor
// no es interpretable o no es plausible. Nunca entra en pánico.
func Normalize(v any) (time.Time, bool) {
	switch value := v.(type) {
	case time.Time:
		if value.IsZero() {
			return time.Time{}, false
		}
		return truncate(value), true
	case *time.Time:
		if value == nil || value.IsZero() {
			return time.Time{}, false
		}
		return truncate(*value), true
	case string:
		return normalizeString(value)
	case float64:
		return normalizeSerial(int(value))
	case float32:
		return normalizeSerial(int(value))
	case int:
		return normalizeSerial(value)
	case int64:
		return normalizeSerial(int(value))
	default:
		return time.Time{}, false
	}
}

func normalizeString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return plausible(truncate(t), s)
		}
	}
	return time.Time{}, false
}

func normalizeSerial(serial int) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}
	return plausible(serialEpoch.AddDate(0, 0, serial), serial)
}

func plausible(t time.Time, raw any) (time.Time, bool) {
	if t.Year() < minYear {
		logrus.WithFields(logrus.Fields{
			"fecha": t.Format(time.DateOnly),
			"valor": raw,
		}).Warn("Fecha sospechosa descartada durante la normalización")
		return time.Time{}, false
	}
	return t, true
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DiasDesde calcula los días enteros transcurridos entre una fecha y hoy,
// ambos truncados a medianoche. Puede ser negativo si la fecha es futura.
func DiasDesde(fecha, hoy time.Time) int {
	f := truncate(fecha)
	h := truncate(hoy)
	return int(h.Sub(f).Hours() / 24)
}

// Formatear produce el formato dd-mm-aaaa usado en las razones de los
// reportes.
func Formatear(t time.Time) string {
	if t.IsZero() {
		return "Fecha inválida"
	}
	return t.Format("02-01-2006")
}
