package domain

// Motivo es un motivo de baja administrable. Nunca se elimina físicamente
// porque los reportes históricos referencian el motivo por nombre; solo se
// desactiva.
type Motivo struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}
