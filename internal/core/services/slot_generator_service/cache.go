package slot_generator_service

import (
	"context"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

// Инвалидация кэша справочника, вызывается из слушателя RabbitMQ

func (s *SlotGeneratorService) InvalidateDoctorCache(ctx context.Context, doctorID int) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidateDoctor(ctx, doctorID)
	s.logger.Info("doctors.cache.invalidated", out.LogFields{
		"doctorId": doctorID,
	})
}

func (s *SlotGeneratorService) InvalidateAllCache(ctx context.Context) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidateDoctorsCache(ctx)
	s.logger.Info("doctors.cache.purged", out.LogFields{})
}
