package domain

// Resultado es el desenlace de una solicitud de baja.
type Resultado string

const (
	// ResultadoAprobado indica que el cliente puede ser inhabilitado.
	ResultadoAprobado Resultado = "APROBADO"
	// ResultadoRechazado indica que el cliente NO puede ser inhabilitado.
	ResultadoRechazado Resultado = "RECHAZADO"
	// ResultadoRevisionManual deriva el caso al equipo de Inteligencia Comercial.
	ResultadoRevisionManual Resultado = "REVISION_MANUAL"
	// ResultadoError es un desenlace operacional: la solicitud no pudo
	// evaluarse, pero igual se registra y se responde al solicitante.
	ResultadoError Resultado = "ERROR"
)

// NombreClienteNoEncontrado es el centinela usado cuando ninguna fuente
// de datos conoce el código solicitado.
const NombreClienteNoEncontrado = "CLIENTE NO ENCONTRADO"

// Decision es el resultado completo de evaluar una solicitud de baja.
// Es inmutable una vez producida; el registro de auditoría (Reporte) se
// construye a partir de ella.
type Decision struct {
	CodigoCliente string    `json:"codigo_cliente"`
	NombreCliente string    `json:"nombre_cliente"`
	Motivo        string    `json:"motivo"`
	Zona          string    `json:"zona"`
	Ruta          string    `json:"ruta"`
	Vendedor      string    `json:"vendedor"`
	Resultado     Resultado `json:"resultado"`
	Razon         string    `json:"razon"`
}
