package slot_generator_service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

// CheckSlotAvailable возвращает domain.ErrSlotUnavailable, если startTime нет среди свободных
// слотов врача. Проверка идет по одному снимку записей и ничего не резервирует.
func (s *SlotGeneratorService) CheckSlotAvailable(ctx context.Context, doctorID int, startTime string) error {
	requested, err := domain.ParseSlotTime(startTime)
	if err != nil {
		return err
	}

	slots, err := s.GetAvailableSlots(ctx, doctorID)
	if err != nil {
		return err
	}

	key := requested.Format(domain.SlotTimeLayout)
	for _, slot := range slots {
		if slot.Start.Format(domain.SlotTimeLayout) == key {
			return nil
		}
	}

	return fmt.Errorf("doctor %d at %s: %w", doctorID, startTime, domain.ErrSlotUnavailable)
}

// CreateAppointment проверяет доступность и передает запись в сервис расписания.
// Шаги не атомарны: два параллельных запроса на один слот могут оба пройти проверку.
func (s *SlotGeneratorService) CreateAppointment(ctx context.Context, req domain.AppointmentRequest) (*domain.SchedulerResponse, error) {
	if err := s.CheckSlotAvailable(ctx, req.DoctorID, req.StartTime); err != nil {
		s.logger.Info("appointments.create.rejected", out.LogFields{
			"doctorId":  req.DoctorID,
			"startTime": req.StartTime,
			"error":     err.Error(),
		})
		return nil, err
	}

	resp, err := s.schedulerPort.CreateAppointment(ctx, req)
	if err != nil {
		s.logger.Error("appointments.create.failed", out.LogFields{
			"doctorId": req.DoctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("appointments.create.failed: %w", err)
	}

	return resp, nil
}

// UpdateAppointment, как и CreateAppointment, проверяет и записывает неатомарно
func (s *SlotGeneratorService) UpdateAppointment(ctx context.Context, appointmentID int, req domain.AppointmentRequest) (*domain.SchedulerResponse, error) {
	if err := s.CheckSlotAvailable(ctx, req.DoctorID, req.StartTime); err != nil {
		s.logger.Info("appointments.update.rejected", out.LogFields{
			"appointmentId": appointmentID,
			"doctorId":      req.DoctorID,
			"startTime":     req.StartTime,
			"error":         err.Error(),
		})
		return nil, err
	}

	resp, err := s.schedulerPort.UpdateAppointment(ctx, appointmentID, req)
	if err != nil {
		s.logger.Error("appointments.update.failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("appointments.update.failed: %w", err)
	}

	return resp, nil
}

func (s *SlotGeneratorService) DeleteAppointment(ctx context.Context, appointmentID int) error {
	if err := s.schedulerPort.DeleteAppointment(ctx, appointmentID); err != nil {
		s.logger.Error("appointments.delete.failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return fmt.Errorf("appointments.delete.failed: %w", err)
	}
	return nil
}

func (s *SlotGeneratorService) ListPatientAppointments(ctx context.Context, patientID int) ([]domain.Appointment, error) {
	appointments, err := s.schedulerPort.ListAppointments(ctx)
	if err != nil {
		s.logger.Error("appointments.list.failed", out.LogFields{
			"patientId": patientID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("appointments.list.failed: %w", err)
	}

	result := make([]domain.Appointment, 0)
	for _, appointment := range appointments {
		if appointment.PatientID == patientID {
			result = append(result, appointment)
		}
	}

	// Формат YYYY-MM-DD HH:MM сортируется как строка
	slices.SortStableFunc(result, func(a, b domain.Appointment) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})

	return result, nil
}
