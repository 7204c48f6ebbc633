package dto

// ListaResponse listado con la forma {data: [...]}. En lecturas fallidas Data queda vacío
// y Error lleva el mensaje para el aviso de la interfaz.
type ListaResponse[T any] struct {
	Data  []T    `json:"data"`
	Error string `json:"error,omitempty"`
}

// NuevaLista garantiza que Data se serialice como [] y no como null.
func NuevaLista[T any](data []T, aviso string) ListaResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListaResponse[T]{Data: data, Error: aviso}
}

// MensajeResponse respuesta simple de confirmación.
type MensajeResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
