package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-appointments-gateway/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) *CacheAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.DoctorsSize = 10
	cfg.Cache.DoctorsTTL = ttl
	return NewCacheAdapter(cfg, logger.NewNopLogger())
}

var doctors = []domain.Doctor{
	{ID: 1, Specialty: "Cardiologia", WorkingHoursStart: "09:00:00", WorkingHoursEnd: "17:00:00"},
	{ID: 2, Specialty: "Pediatria", WorkingHoursStart: "08:00:00", WorkingHoursEnd: "12:00:00"},
}

func TestCacheAdapter_StoreAndGet(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok := c.GetDoctors(ctx)
	assert.False(t, ok)

	c.StoreDoctors(ctx, doctors)

	got, ok := c.GetDoctors(ctx)
	require.True(t, ok)
	assert.Equal(t, doctors, got)

	doctor, ok := c.GetDoctor(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, "Pediatria", doctor.Specialty)

	_, ok = c.GetDoctor(ctx, 3)
	assert.False(t, ok)
}

func TestCacheAdapter_ReturnsCopy(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()
	c.StoreDoctors(ctx, doctors)

	got, _ := c.GetDoctors(ctx)
	got[0].Specialty = "Changed"

	again, _ := c.GetDoctors(ctx)
	assert.Equal(t, "Cardiologia", again[0].Specialty)
}

func TestCacheAdapter_InvalidateDoctor(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()
	c.StoreDoctors(ctx, doctors)

	c.InvalidateDoctor(ctx, 1)

	_, ok := c.GetDoctor(ctx, 1)
	assert.False(t, ok)
	_, ok = c.GetDoctors(ctx)
	assert.False(t, ok)
	_, ok = c.GetDoctor(ctx, 2)
	assert.True(t, ok)
}

func TestCacheAdapter_InvalidateAll(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()
	c.StoreDoctors(ctx, doctors)

	c.InvalidateDoctorsCache(ctx)

	_, ok := c.GetDoctors(ctx)
	assert.False(t, ok)
	_, ok = c.GetDoctor(ctx, 2)
	assert.False(t, ok)
}

func TestCacheAdapter_Expires(t *testing.T) {
	c := newTestCache(t, 20*time.Millisecond)
	ctx := context.Background()
	c.StoreDoctors(ctx, doctors)

	assert.Eventually(t, func() bool {
		_, ok := c.GetDoctors(ctx)
		return !ok
	}, time.Second, 10*time.Millisecond)
}
