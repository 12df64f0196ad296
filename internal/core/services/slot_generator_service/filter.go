package slot_generator_service

import (
	"fmt"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

// FilterAvailable убирает слоты, начало которых совпадает с началом записи этого врача.
// Учитывается только точное совпадение, записи не на границе слота слот не занимают.
func FilterAvailable(slots []domain.TimeSlot, appointments []domain.Appointment, doctorID int) ([]domain.TimeSlot, error) {
	taken := make(map[string]struct{})
	for _, appointment := range appointments {
		if appointment.DoctorID != doctorID {
			continue
		}
		start, err := appointment.Start()
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", appointment.ID, err)
		}
		// Сравниваем "наивное" локальное время с точностью до минуты
		taken[start.Format(domain.SlotTimeLayout)] = struct{}{}
	}

	available := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot.Start.Format(domain.SlotTimeLayout)]; ok {
			continue
		}
		available = append(available, slot)
	}

	return available, nil
}
