package domain

import "time"

// Reporte es el registro de auditoría de una solicitud de baja. Se escribe
// una vez por solicitud y nunca se modifica.
type Reporte struct {
	ID             string    `json:"id"`
	CodigoCliente  string    `json:"codigo_cliente"`
	NombreCliente  string    `json:"nombre_cliente"`
	Motivo         string    `json:"motivo"`
	Zona           string    `json:"zona"`
	Ruta           string    `json:"ruta"`
	Vendedor       string    `json:"vendedor"`
	Resultado      Resultado `json:"resultado"`
	Razon          string    `json:"razon"`
	FotosRutas     []string  `json:"fotos_rutas"`
	FechaSolicitud time.Time `json:"fecha_solicitud"`
}

// EstadisticasReporte son los conteos del día por desenlace.
type EstadisticasReporte struct {
	Fecha          string `json:"fecha"`
	Total          int    `json:"total"`
	Aprobadas      int    `json:"aprobadas"`
	Rechazadas     int    `json:"rechazadas"`
	RevisionManual int    `json:"revision_manual"`
	ConError       int    `json:"con_error"`
}
