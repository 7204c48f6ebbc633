package dto

import "github.com/jhoicas/negocify/internal/domain/entity"

// UsuarioRequest alta o edición de usuario. En edición el password vacío conserva el actual.
type UsuarioRequest struct {
	Nombre    string    `json:"nombre" validate:"required,max=100"`
	Apellido  string    `json:"apellido" validate:"omitempty,max=100"`
	Telefono  string    `json:"telefono" validate:"omitempty,max=30"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"omitempty,min=6"`
	Rol       string    `json:"rol" validate:"required"`
	AlmacenID entity.ID `json:"almacen_id" validate:"required"`
}

// Input convierte la petición al cuerpo del backend.
func (r UsuarioRequest) Input() entity.UsuarioInput {
	return entity.UsuarioInput{
		Nombre:    r.Nombre,
		Apellido:  r.Apellido,
		Telefono:  r.Telefono,
		Email:     r.Email,
		Password:  r.Password,
		Rol:       r.Rol,
		AlmacenID: r.AlmacenID,
	}
}

// UsuarioResponse usuario con su rol principal ya resuelto.
type UsuarioResponse struct {
	ID       entity.ID `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido,omitempty"`
	Telefono string    `json:"telefono,omitempty"`
	Email    string    `json:"email"`
	Rol      string    `json:"rol"`
}

// NuevoUsuarioResponse arma la respuesta desde la entidad.
func NuevoUsuarioResponse(u entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Telefono: u.Telefono,
		Email:    u.Email,
		Rol:      u.RolPrincipal(),
	}
}
