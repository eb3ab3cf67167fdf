package domain

import "time"

// Cliente representa un cliente del maestro de clientes.
// El código es un identificador opaco (se compara como string para
// tolerar ceros a la izquierda).
type Cliente struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Ruta   string `json:"ruta"`
	Zona   string `json:"zona"`
	Activo bool   `json:"activo"`
}

// Venta es un hecho histórico de venta, solo se crea por importación masiva.
// FechaRaw conserva el valor tal como vino de la fuente (fecha nativa,
// string ISO o número serial de planilla); la normalización ocurre en la
// lectura, nunca en la escritura.
type Venta struct {
	CodigoCliente string `json:"codigo_cliente"`
	NombreCliente string `json:"nombre_cliente"`
	FechaRaw      any    `json:"fecha"`
}

// PlanificacionRuta asocia una ruta con su zona, día de visita y vendedor.
// Zona y vendedor son texto libre; el string vacío es el valor "desconocido".
type PlanificacionRuta struct {
	ID                  int       `json:"id,omitempty"`
	Ruta                string    `json:"ruta"`
	Zona                string    `json:"zona"`
	Dia                 string    `json:"dia"`
	Vendedor            string    `json:"vendedor"`
	FechaSincronizacion time.Time `json:"fecha_sincronizacion,omitempty"`
}
