package entity

// Usuario datos del usuario autenticado o administrado. Los campos que el backend agregue se ignoran.
type Usuario struct {
	ID        ID          `json:"id"`
	Nombre    string      `json:"nombre"`
	Apellido  string      `json:"apellido,omitempty"`
	Telefono  string      `json:"telefono,omitempty"`
	Email     string      `json:"email"`
	Rol       string      `json:"rol,omitempty"`
	AlmacenID ID          `json:"almacen_id,omitempty"`
	Roles     []RolNombre `json:"Roles,omitempty"`
}

// RolNombre elemento de la lista Roles que devuelve GET /api/users.
type RolNombre struct {
	Nombre string `json:"nombre"`
}

// RolPrincipal devuelve el primer rol de la lista o el campo rol; "Sin rol" si no hay ninguno.
func (u Usuario) RolPrincipal() string {
	if len(u.Roles) > 0 && u.Roles[0].Nombre != "" {
		return u.Roles[0].Nombre
	}
	if u.Rol != "" {
		return u.Rol
	}
	return "Sin rol"
}

// UsuarioInput formulario de alta/edición de usuario. Password vacío en edición conserva la actual.
type UsuarioInput struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Rol       string `json:"rol"`
	AlmacenID ID     `json:"almacen_id"`
}

// Permisos bloque permisos del login.
type Permisos struct {
	EsAdminSistema bool      `json:"esAdminSistema"`
	Almacenes      []Almacen `json:"almacenes"`
}

// LoginResult respuesta de POST /api/auth/login.
type LoginResult struct {
	Token    string   `json:"token"`
	Usuario  Usuario  `json:"usuario"`
	Permisos Permisos `json:"permisos"`
}
