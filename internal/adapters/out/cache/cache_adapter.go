package cache

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

// Весь справочник хранится одной записью
const doctorsListKey = "all"

type doctorsCache struct {
	mu   sync.RWMutex
	list *expirable.LRU[string, []domain.Doctor]
	byID *expirable.LRU[int, domain.Doctor]
}

type CacheAdapter struct {
	doctorsCache *doctorsCache
	logger       out.LoggerPort
}

// Адаптер создается только при включенном кэше, иначе сервис получает nil вместо порта
func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) *CacheAdapter {
	return &CacheAdapter{
		doctorsCache: &doctorsCache{
			list: expirable.NewLRU[string, []domain.Doctor](1, nil, cfg.Cache.DoctorsTTL),
			byID: expirable.NewLRU[int, domain.Doctor](cfg.Cache.DoctorsSize, nil, cfg.Cache.DoctorsTTL),
		},
		logger: logger.WithModule("CacheAdapter"),
	}
}

// Кэширование справочника врачей

func (c *CacheAdapter) GetDoctors(ctx context.Context) ([]domain.Doctor, bool) {
	c.doctorsCache.mu.RLock()
	defer c.doctorsCache.mu.RUnlock()

	doctors, exists := c.doctorsCache.list.Get(doctorsListKey)
	if !exists {
		c.logger.Debug("cache.doctors.get.miss", out.LogFields{})
		return nil, false
	}

	c.logger.Debug("cache.doctors.get.hit", out.LogFields{
		"doctorsCount": len(doctors),
	})
	// Копия, чтобы вызывающий не испортил закэшированный срез
	return append([]domain.Doctor(nil), doctors...), true
}

func (c *CacheAdapter) GetDoctor(ctx context.Context, doctorID int) (domain.Doctor, bool) {
	c.doctorsCache.mu.RLock()
	defer c.doctorsCache.mu.RUnlock()

	doctor, exists := c.doctorsCache.byID.Get(doctorID)
	if !exists {
		c.logger.Debug("cache.doctors.get_doctor.miss", out.LogFields{
			"doctorId": doctorID,
		})
		return domain.Doctor{}, false
	}

	return doctor, true
}

func (c *CacheAdapter) StoreDoctors(ctx context.Context, doctors []domain.Doctor) {
	c.doctorsCache.mu.Lock()
	defer c.doctorsCache.mu.Unlock()

	c.logger.Debug("cache.doctors.store", out.LogFields{
		"doctorsCount": len(doctors),
	})

	c.doctorsCache.list.Add(doctorsListKey, append([]domain.Doctor(nil), doctors...))
	for _, doctor := range doctors {
		c.doctorsCache.byID.Add(doctor.ID, doctor)
	}
}

// Список содержит и этого врача, поэтому сбрасывается вместе с записью
func (c *CacheAdapter) InvalidateDoctor(ctx context.Context, doctorID int) {
	c.doctorsCache.mu.Lock()
	defer c.doctorsCache.mu.Unlock()

	c.doctorsCache.byID.Remove(doctorID)
	c.doctorsCache.list.Remove(doctorsListKey)
}

func (c *CacheAdapter) InvalidateDoctorsCache(ctx context.Context) {
	c.doctorsCache.mu.Lock()
	defer c.doctorsCache.mu.Unlock()

	c.doctorsCache.byID.Purge()
	c.doctorsCache.list.Purge()
}
