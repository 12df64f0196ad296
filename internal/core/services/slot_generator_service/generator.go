package slot_generator_service

import (
	"fmt"
	"time"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/utils"
)

const (
	DefaultSlotDuration = 60 * time.Minute
	DefaultHorizonDays  = 5
)

type GenerateOptions struct {
	SlotDuration time.Duration
	// Количество календарных (не рабочих) дней, начиная с завтрашнего
	HorizonDays int
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		SlotDuration: DefaultSlotDuration,
		HorizonDays:  DefaultHorizonDays,
	}
}

func (o GenerateOptions) Validate() error {
	if o.SlotDuration <= 0 {
		return fmt.Errorf("slot duration must be positive, got %s: %w", o.SlotDuration, domain.ErrInvalidConfiguration)
	}
	if o.HorizonDays <= 0 {
		return fmt.Errorf("horizon must be positive, got %d days: %w", o.HorizonDays, domain.ErrInvalidConfiguration)
	}
	return nil
}

// GenerateSlots строит слоты на HorizonDays календарных дней, начиная с завтрашнего.
// Суббота и воскресенье пропускаются без замены следующими днями,
// неполный слот в конце дня отбрасывается.
func GenerateSlots(now time.Time, hours domain.WorkingHours, opts GenerateOptions) ([]domain.TimeSlot, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0)
	// Часы работы приходят из справочника: перевернутый или пустой интервал дает пустой результат
	if !hours.Valid() {
		return slots, nil
	}

	day := now
	for i := 0; i < opts.HorizonDays; i++ {
		day = utils.StartNextDay(day)
		if utils.IsWeekend(day) {
			continue
		}
		slots = append(slots, generateDaySlots(day, hours, opts.SlotDuration)...)
	}

	return slots, nil
}

func generateDaySlots(day time.Time, hours domain.WorkingHours, slotDuration time.Duration) []domain.TimeSlot {
	cursor, endOfDay := hours.On(day)

	slots := make([]domain.TimeSlot, 0)
	for cursor.Before(endOfDay) {
		next := cursor.Add(slotDuration)
		// Неполный слот в конце дня не создаем
		if !next.After(endOfDay) {
			slots = append(slots, domain.TimeSlot{Start: cursor, End: next})
		}
		cursor = next
	}

	return slots
}
