package rabbitmq

import (
	"context"
	"fmt"
	"strconv"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

// Кэш справочника только сбрасывается, store-сообщения игнорируются:
// свежий список подтянется при следующем запросе
func (l *CacheHitListener) processMessage(ctx context.Context, routingKey string) error {
	key, err := parseCacheMessageRoutingKey(routingKey)
	if err != nil {
		return err
	}

	if key.CacheHitType != CacheHitTypeInvalidate {
		l.logger.Debug("rabbitmq.message.skipped", out.LogFields{
			"routingKey": routingKey,
		})
		return nil
	}

	switch key.ResourceType {
	case CacheHitResourceTypeAll:
		l.useCase.InvalidateAllCache(ctx)

		l.logger.Info("_all_.message.invalidated", out.LogFields{
			"doctors_cache": true,
		})
	case CacheHitResourceTypeDoctor:
		doctorID, err := strconv.Atoi(key.ResourceID)
		if err != nil {
			return fmt.Errorf("invalid doctor id %q in routing key %s", key.ResourceID, routingKey)
		}
		l.useCase.InvalidateDoctorCache(ctx, doctorID)

		l.logger.Info("doctor.message.invalidated", out.LogFields{
			"doctorId": doctorID,
		})
	default:
		l.logger.Debug("rabbitmq.message.skipped", out.LogFields{
			"routingKey": routingKey,
		})
	}

	return nil
}
