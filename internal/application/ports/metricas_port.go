package ports

// Metricas contadores que registran los casos de uso.
type Metricas interface {
	RespuestaObsoleta()
}
