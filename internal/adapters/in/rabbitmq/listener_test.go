package rabbitmq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-appointments-gateway/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
)

type fakeCacheUseCase struct {
	invalidatedDoctors []int
	purges             int
}

func (f *fakeCacheUseCase) InvalidateDoctorCache(ctx context.Context, doctorID int) {
	f.invalidatedDoctors = append(f.invalidatedDoctors, doctorID)
}

func (f *fakeCacheUseCase) InvalidateAllCache(ctx context.Context) {
	f.purges++
}

func newTestListener(uc *fakeCacheUseCase) *CacheHitListener {
	return newCacheHitListener(nil, nil, uc, &config.Config{}, logger.NewNopLogger())
}

func TestParseCacheMessageRoutingKey(t *testing.T) {
	key, err := parseCacheMessageRoutingKey("directory.appointments-gateway.doctor.42.invalidate")
	require.NoError(t, err)
	assert.Equal(t, CacheMessageRoutingKey{
		Source:       "directory",
		Receiver:     "appointments-gateway",
		ResourceType: CacheHitResourceTypeDoctor,
		ResourceID:   "42",
		CacheHitType: CacheHitTypeInvalidate,
	}, key)

	_, err = parseCacheMessageRoutingKey("directory.appointments-gateway.doctor")
	assert.Error(t, err)
}

func TestProcessMessage(t *testing.T) {
	uc := &fakeCacheUseCase{}
	l := newTestListener(uc)
	ctx := context.Background()

	require.NoError(t, l.processMessage(ctx, "directory.appointments-gateway.doctor.42.invalidate"))
	require.NoError(t, l.processMessage(ctx, "directory.appointments-gateway._all_._all_.invalidate"))
	assert.Equal(t, []int{42}, uc.invalidatedDoctors)
	assert.Equal(t, 1, uc.purges)
}

func TestProcessMessage_Ignored(t *testing.T) {
	uc := &fakeCacheUseCase{}
	l := newTestListener(uc)
	ctx := context.Background()

	require.NoError(t, l.processMessage(ctx, "directory.appointments-gateway.doctor.42.store"))
	require.NoError(t, l.processMessage(ctx, "directory.appointments-gateway.appointment.7.invalidate"))
	assert.Empty(t, uc.invalidatedDoctors)
	assert.Zero(t, uc.purges)
}

func TestProcessMessage_Invalid(t *testing.T) {
	uc := &fakeCacheUseCase{}
	l := newTestListener(uc)
	ctx := context.Background()

	assert.Error(t, l.processMessage(ctx, "doctor.invalidate"))
	assert.Error(t, l.processMessage(ctx, "directory.appointments-gateway.doctor.abc.invalidate"))
	assert.Empty(t, uc.invalidatedDoctors)
}

func TestStop_NilListener(t *testing.T) {
	var l *CacheHitListener
	assert.NoError(t, l.Stop())
}
