package navegacion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/negocify/internal/domain/entity"
)

func textos(items []MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Texto)
	}
	return out
}

func TestMenuVisible_Empleado(t *testing.T) {
	menu := MenuPorDefecto()
	got := MenuVisible(menu, "empleado")
	assert.Equal(t, []string{"Inicio", "Punto de Venta"}, textos(got))
	for _, it := range got {
		assert.NotEqual(t, "Ventas", it.Texto)
	}
}

func TestMenuVisible_AdminVeTodo(t *testing.T) {
	assert.Len(t, MenuVisible(MenuPorDefecto(), "ADMINISTRADOR"), 5)
	assert.Len(t, MenuVisible(MenuPorDefecto(), " administrador sistema "), 5)
}

func TestMenuVisible_SinRolOVacio(t *testing.T) {
	assert.Empty(t, MenuVisible(MenuPorDefecto(), ""))
	menu := []MenuItem{{Texto: "Libre", Ruta: "/dashboard/libre"}}
	assert.Empty(t, MenuVisible(menu, "Empleado"))
}

func TestMenuVisible_Unicode(t *testing.T) {
	menu := []MenuItem{{Texto: "Caja", Ruta: "/dashboard/caja", RolesPermitidos: []string{"Cajero Señor"}}}
	assert.Len(t, MenuVisible(menu, "CAJERO SEÑOR"), 1)
}

func TestRutaPermitida_RaizEquivaleAInicio(t *testing.T) {
	menu := MenuPorDefecto()
	for _, rol := range []string{"administrador", "Empleado", "Invitado"} {
		assert.Equal(t, RutaPermitida("/dashboard/inicio", menu, rol), RutaPermitida("/dashboard", menu, rol), rol)
		assert.Equal(t, RutaPermitida("/dashboard/inicio", menu, rol), RutaPermitida("/dashboard/", menu, rol), rol)
	}
	assert.True(t, RutaPermitida("/dashboard", menu, "administrador"))
	assert.False(t, RutaPermitida("/dashboard", menu, "Invitado"))
}

func TestRutaPermitida(t *testing.T) {
	menu := MenuPorDefecto()
	assert.True(t, RutaPermitida("/dashboard/punto-venta", menu, "empleado"))
	assert.False(t, RutaPermitida("/dashboard/ventas", menu, "empleado"))
	assert.True(t, RutaPermitida("/dashboard/ventas/detalle", menu, "Administrador"))
	assert.False(t, RutaPermitida("/dashboard/reportes", menu, "Administrador Sistema"))
	assert.True(t, RutaPermitida("/perfil", menu, "Empleado"))
	assert.False(t, RutaPermitida("/dashboard/ventas", menu, ""))
}

func TestRutaPermitida_DescriptorSinRolesPermiteCualquiera(t *testing.T) {
	menu := []MenuItem{{Texto: "Ayuda", Ruta: "/dashboard/ayuda"}}
	assert.True(t, RutaPermitida("/dashboard/ayuda", menu, "Cualquiera"))
	assert.False(t, RutaPermitida("/dashboard/otra", menu, "Cualquiera"))
}

func TestRolActual(t *testing.T) {
	almacenes := []entity.Almacen{{ID: "1", Nombre: "Centro", Rol: "Administrador"}, {ID: "2", Nombre: "Norte", Rol: "Empleado"}}
	assert.Equal(t, "Empleado", RolActual(almacenes, "2"))
	assert.Equal(t, "", RolActual(almacenes, ""))
	assert.Equal(t, "", RolActual(almacenes, "9"))
}

func TestResolverAcceso(t *testing.T) {
	menu := MenuPorDefecto()
	assert.Equal(t, SinSesion, ResolverAcceso(false, "/dashboard", menu, "Administrador"))
	assert.Equal(t, CargandoRol, ResolverAcceso(true, "/dashboard", menu, ""))
	assert.Equal(t, Permitido, ResolverAcceso(true, "/dashboard/ventas", menu, "Administrador"))
	assert.Equal(t, Denegado, ResolverAcceso(true, "/dashboard/ventas", menu, "Empleado"))
}

func TestNormalizarRuta(t *testing.T) {
	assert.Equal(t, RutaInicio, NormalizarRuta("/dashboard?tab=1"))
	assert.Equal(t, "/dashboard/ventas", NormalizarRuta("/dashboard/ventas/"))
	assert.Equal(t, "/", NormalizarRuta("/"))
}
