package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
)

// Cache curto de disponibilidade. Segurança de reserva nunca depende dele:
// leitura velha no pior caso vira ErrSlotTaken na hora de reservar.
const availabilityTTL = 30 * time.Second

type AvailabilityCache struct {
	rdb *redis.Client
}

// NewAvailability devolve nil quando addr é vazio; o cache nil é no-op.
func NewAvailability(addr string) *AvailabilityCache {
	if addr == "" {
		return nil
	}
	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(barberID uint, day time.Time) string {
	return fmt.Sprintf("availability:%d:%s", barberID, day.Format("2006-01-02"))
}

func (c *AvailabilityCache) Get(ctx context.Context, barberID uint, day time.Time) (*domain.Availability, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(barberID, day)).Result()
	if err != nil {
		return nil, false
	}

	var av domain.Availability
	if err := json.Unmarshal([]byte(raw), &av); err != nil {
		return nil, false
	}

	return &av, true
}

func (c *AvailabilityCache) Set(ctx context.Context, barberID uint, day time.Time, av *domain.Availability) {
	if c == nil || av == nil {
		return
	}

	b, err := json.Marshal(av)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key(barberID, day), b, availabilityTTL)
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uint, day time.Time) {
	if c == nil {
		return
	}

	c.rdb.Del(ctx, key(barberID, day))
}
