package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrMissingToken      = errors.New("sesión sin token del backend")
	ErrSesionExpirada    = errors.New("la sesión no existe o expiró")
	ErrSinAlmacen        = errors.New("no hay un almacén seleccionado")
	ErrAlmacenAjeno      = errors.New("no tienes permisos para este almacén")
	ErrSeleccionObsoleta = errors.New("el almacén seleccionado cambió durante la consulta")
	ErrUpstream          = errors.New("el backend respondió con error")
	ErrTasaNoDisponible  = errors.New("valor del dólar no disponible")
)
