package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/repository"
)

var _ repository.SesionRepository = (*SesionStore)(nil)

const reintentosWatch = 5

// SesionStore sesiones como JSON en Redis con TTL igual a la vida del token del BFF.
type SesionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSesionStore construye el almacén.
func NewSesionStore(client *redis.Client, ttl time.Duration) *SesionStore {
	return &SesionStore{client: client, ttl: ttl}
}

func claveSesion(id string) string { return Prefijo + "sesion:" + id }

// Crear guarda la sesión.
func (s *SesionStore) Crear(ctx context.Context, se *entity.Sesion) error {
	if se == nil || se.ID == "" {
		return domain.ErrInvalidInput
	}
	raw, err := json.Marshal(se)
	if err != nil {
		return fmt.Errorf("cache: serializar sesión: %w", err)
	}
	return s.client.Set(ctx, claveSesion(se.ID), raw, s.ttl).Err()
}

// Obtener devuelve (nil, nil) si la clave no existe.
func (s *SesionStore) Obtener(ctx context.Context, id string) (*entity.Sesion, error) {
	raw, err := s.client.Get(ctx, claveSesion(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: leer sesión: %w", err)
	}
	var se entity.Sesion
	if err := json.Unmarshal(raw, &se); err != nil {
		return nil, fmt.Errorf("cache: sesión corrupta: %w", err)
	}
	return &se, nil
}

// SeleccionarAlmacen lee, modifica y escribe dentro de una transacción WATCH; si otra
// escritura gana la carrera se reintenta. Conserva el TTL restante.
func (s *SesionStore) SeleccionarAlmacen(ctx context.Context, id string, almacenID entity.ID) (*entity.Sesion, error) {
	clave := claveSesion(id)
	var resultado *entity.Sesion

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, clave).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrSesionExpirada
		}
		if err != nil {
			return err
		}
		var se entity.Sesion
		if err := json.Unmarshal(raw, &se); err != nil {
			return fmt.Errorf("cache: sesión corrupta: %w", err)
		}
		se.AlmacenID = almacenID
		se.Generacion++
		nuevo, err := json.Marshal(&se)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.SetArgs(ctx, clave, nuevo, redis.SetArgs{KeepTTL: true})
			return nil
		})
		if err == nil {
			resultado = &se
		}
		return err
	}

	for i := 0; i < reintentosWatch; i++ {
		err := s.client.Watch(ctx, txf, clave)
		if err == nil {
			return resultado, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("cache: selección de almacén: demasiados conflictos")
}

// Eliminar borra la sesión.
func (s *SesionStore) Eliminar(ctx context.Context, id string) error {
	return s.client.Del(ctx, claveSesion(id)).Err()
}
