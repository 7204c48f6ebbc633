// Package memoria implementa los almacenes en memoria del proceso, usados cuando no hay Redis.
package memoria

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/repository"
)

var _ repository.SesionRepository = (*SesionStore)(nil)

// SesionStore sesiones en un mapa protegido por mutex. Las sesiones vencidas se descartan al leerlas.
type SesionStore struct {
	mu       sync.Mutex
	sesiones map[string]entity.Sesion
	ttl      time.Duration
	ahora    func() time.Time
}

// NewSesionStore ttl <= 0 => sin vencimiento.
func NewSesionStore(ttl time.Duration) *SesionStore {
	return &SesionStore{sesiones: map[string]entity.Sesion{}, ttl: ttl, ahora: time.Now}
}

func (s *SesionStore) vencida(se entity.Sesion) bool {
	return s.ttl > 0 && s.ahora().Sub(se.CreadaEn) > s.ttl
}

// copia evita que el llamador modifique el estado compartido.
func copia(se entity.Sesion) *entity.Sesion {
	se.Almacenes = append([]entity.Almacen(nil), se.Almacenes...)
	return &se
}

// Crear guarda la sesión.
func (s *SesionStore) Crear(_ context.Context, se *entity.Sesion) error {
	if se == nil || se.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sesiones[se.ID] = *copia(*se)
	return nil
}

// Obtener devuelve (nil, nil) si no existe o venció.
func (s *SesionStore) Obtener(_ context.Context, id string) (*entity.Sesion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	se, ok := s.sesiones[id]
	if !ok {
		return nil, nil
	}
	if s.vencida(se) {
		delete(s.sesiones, id)
		return nil, nil
	}
	return copia(se), nil
}

// SeleccionarAlmacen cambia el almacén e incrementa la generación bajo el mismo lock.
func (s *SesionStore) SeleccionarAlmacen(_ context.Context, id string, almacenID entity.ID) (*entity.Sesion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	se, ok := s.sesiones[id]
	if !ok || s.vencida(se) {
		return nil, domain.ErrSesionExpirada
	}
	se.AlmacenID = almacenID
	se.Generacion++
	s.sesiones[id] = se
	return copia(se), nil
}

// Eliminar borra la sesión; no existe => sin error.
func (s *SesionStore) Eliminar(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sesiones, id)
	return nil
}
