package entity

import "time"

// Sesion contexto de sesión del panel: se crea en el login, solo cambia al seleccionar almacén
// y se elimina en el logout. El rol no se guarda: se deriva de Almacenes y AlmacenID.
type Sesion struct {
	ID             string    `json:"id"`
	Token          string    `json:"token"`
	Usuario        Usuario   `json:"usuario"`
	EsAdminSistema bool      `json:"es_admin_sistema"`
	Almacenes      []Almacen `json:"almacenes"`
	AlmacenID      ID        `json:"almacen_id"`
	Generacion     uint64    `json:"generacion"`
	CreadaEn       time.Time `json:"creada_en"`
}

// Ticket identidad de una consulta asíncrona ligada al almacén seleccionado.
type Ticket struct {
	SesionID   string
	AlmacenID  ID
	Generacion uint64
}

// Ticket captura el almacén y la generación actuales.
func (s *Sesion) Ticket() Ticket {
	return Ticket{SesionID: s.ID, AlmacenID: s.AlmacenID, Generacion: s.Generacion}
}

// EsVigente indica si la sesión sigue en el mismo almacén y generación que el ticket.
func (s *Sesion) EsVigente(t Ticket) bool {
	return s != nil && s.ID == t.SesionID && s.AlmacenID == t.AlmacenID && s.Generacion == t.Generacion
}

// TieneAlmacen indica si el almacén pertenece al usuario de la sesión.
func (s *Sesion) TieneAlmacen(id ID) bool {
	return BuscarAlmacen(s.Almacenes, id) != nil
}

// AlmacenSeleccionado devuelve el almacén actual o nil.
func (s *Sesion) AlmacenSeleccionado() *Almacen {
	return BuscarAlmacen(s.Almacenes, s.AlmacenID)
}
