package dto

import (
	"time"

	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/navegacion"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token del BFF y estado inicial de la sesión.
type LoginResponse struct {
	Token    string         `json:"token"`
	ExpiraEn time.Time      `json:"expira_en"`
	Sesion   SesionResponse `json:"sesion"`
}

// SesionResponse vista de la sesión para la interfaz (sin el token del backend).
type SesionResponse struct {
	Usuario             entity.Usuario   `json:"usuario"`
	EsAdminSistema      bool             `json:"esAdminSistema"`
	Almacenes           []entity.Almacen `json:"almacenes"`
	AlmacenSeleccionado *entity.Almacen  `json:"almacenSeleccionado"`
	Rol                 string           `json:"rol"`
	Generacion          uint64           `json:"generacion"`
}

// SeleccionarAlmacenRequest cambio de almacén.
type SeleccionarAlmacenRequest struct {
	AlmacenID entity.ID `json:"almacen_id" validate:"required"`
}

// ShellResponse menú visible, rol y estado de acceso para la ruta pedida.
type ShellResponse struct {
	Ruta                string                  `json:"ruta"`
	Estado              navegacion.EstadoAcceso `json:"estado"`
	Rol                 string                  `json:"rol"`
	Menu                []navegacion.MenuItem   `json:"menu"`
	AlmacenSeleccionado *entity.Almacen         `json:"almacenSeleccionado"`
}
