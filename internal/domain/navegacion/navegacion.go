// Package navegacion resuelve qué entradas del menú ve un rol y si una ruta del panel está permitida.
// Es solo una guía para la interfaz: el backend sigue siendo quien autoriza.
package navegacion

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/negocify/internal/domain/entity"
)

// Roles conocidos del backend.
const (
	RolAdminSistema = "Administrador Sistema"
	RolAdmin        = "Administrador"
	RolEmpleado     = "Empleado"
)

// PrefijoPanel rutas protegidas del panel.
const PrefijoPanel = "/dashboard"

// RutaInicio entrada a la que se normaliza la raíz del panel.
const RutaInicio = "/dashboard/inicio"

// MenuItem descriptor de una entrada del menú lateral.
type MenuItem struct {
	Texto           string   `json:"text"`
	Ruta            string   `json:"path"`
	Icono           string   `json:"icon,omitempty"`
	RolesPermitidos []string `json:"allowedRoles"`
}

// MenuPorDefecto menú del panel.
func MenuPorDefecto() []MenuItem {
	todos := []string{RolAdminSistema, RolAdmin, RolEmpleado}
	admins := []string{RolAdminSistema, RolAdmin}
	return []MenuItem{
		{Texto: "Inicio", Ruta: RutaInicio, Icono: "home", RolesPermitidos: todos},
		{Texto: "Punto de Venta", Ruta: "/dashboard/punto-venta", Icono: "storefront", RolesPermitidos: todos},
		{Texto: "Ventas", Ruta: "/dashboard/ventas", Icono: "trending_up", RolesPermitidos: admins},
		{Texto: "Inventario", Ruta: "/dashboard/inventario", Icono: "inventory", RolesPermitidos: admins},
		{Texto: "Usuarios", Ruta: "/dashboard/usuarios", Icono: "person", RolesPermitidos: admins},
	}
}

// mismoRol compara sin distinguir mayúsculas (Unicode). cases.Caser no es seguro entre goroutines,
// por eso se crea uno por llamada.
func mismoRol(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

func rolPermitido(rol string, permitidos []string) bool {
	for _, p := range permitidos {
		if mismoRol(rol, p) {
			return true
		}
	}
	return false
}

// MenuVisible entradas que el rol puede ver. Sin rol => menú vacío.
func MenuVisible(items []MenuItem, rol string) []MenuItem {
	out := []MenuItem{}
	if strings.TrimSpace(rol) == "" {
		return out
	}
	for _, it := range items {
		if len(it.RolesPermitidos) > 0 && rolPermitido(rol, it.RolesPermitidos) {
			out = append(out, it)
		}
	}
	return out
}

// NormalizarRuta quita la barra final y lleva la raíz del panel a la entrada de inicio.
func NormalizarRuta(ruta string) string {
	ruta = strings.TrimSpace(ruta)
	if i := strings.IndexAny(ruta, "?#"); i >= 0 {
		ruta = ruta[:i]
	}
	if len(ruta) > 1 {
		ruta = strings.TrimRight(ruta, "/")
	}
	if ruta == PrefijoPanel {
		return RutaInicio
	}
	return ruta
}

func bajoPrefijo(ruta, prefijo string) bool {
	return ruta == prefijo || strings.HasPrefix(ruta, prefijo+"/")
}

// buscar descriptor con la ruta exacta o el más específico que la contenga (subrutas).
func buscar(ruta string, items []MenuItem) *MenuItem {
	var mejor *MenuItem
	for i := range items {
		r := NormalizarRuta(items[i].Ruta)
		if r == "" || !bajoPrefijo(ruta, r) {
			continue
		}
		if mejor == nil || len(r) > len(NormalizarRuta(mejor.Ruta)) {
			mejor = &items[i]
		}
	}
	return mejor
}

// RutaPermitida indica si el rol puede abrir la ruta. Sin rol => false (la interfaz muestra carga).
// Dentro del panel una ruta sin descriptor se niega; un descriptor sin roles permite cualquier rol.
// Fuera del panel no hay restricción.
func RutaPermitida(ruta string, items []MenuItem, rol string) bool {
	if strings.TrimSpace(rol) == "" {
		return false
	}
	ruta = NormalizarRuta(ruta)
	if !bajoPrefijo(ruta, PrefijoPanel) {
		return true
	}
	it := buscar(ruta, items)
	if it == nil {
		return false
	}
	if len(it.RolesPermitidos) == 0 {
		return true
	}
	return rolPermitido(rol, it.RolesPermitidos)
}

// RolActual rol del usuario en el almacén seleccionado; "" si no hay selección o no pertenece.
func RolActual(almacenes []entity.Almacen, seleccionado entity.ID) string {
	if a := entity.BuscarAlmacen(almacenes, seleccionado); a != nil {
		return strings.TrimSpace(a.Rol)
	}
	return ""
}

// EstadoAcceso estado de la compuerta de acceso del panel.
type EstadoAcceso string

const (
	SinSesion   EstadoAcceso = "sin_sesion"
	CargandoRol EstadoAcceso = "cargando_rol"
	Permitido   EstadoAcceso = "permitido"
	Denegado    EstadoAcceso = "denegado"
)

// ResolverAcceso SinSesion -> CargandoRol -> {Permitido, Denegado}.
func ResolverAcceso(conSesion bool, ruta string, items []MenuItem, rol string) EstadoAcceso {
	switch {
	case !conSesion:
		return SinSesion
	case strings.TrimSpace(rol) == "":
		return CargandoRol
	case RutaPermitida(ruta, items, rol):
		return Permitido
	default:
		return Denegado
	}
}
