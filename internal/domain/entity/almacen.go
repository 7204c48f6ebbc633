package entity

// Almacen sucursal o bodega. El rol es por almacén: el mismo usuario puede tener roles distintos en cada uno.
type Almacen struct {
	ID     ID     `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// BuscarAlmacen devuelve el almacén con ese id, o nil.
func BuscarAlmacen(almacenes []Almacen, id ID) *Almacen {
	if id.Empty() {
		return nil
	}
	for i := range almacenes {
		if almacenes[i].ID == id {
			return &almacenes[i]
		}
	}
	return nil
}
