package slot_generator_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
	"golang.org/x/sync/errgroup"
)

type SlotGeneratorService struct {
	schedulerPort out.SchedulerPort
	directoryPort out.DirectoryPort
	cachePort     out.CachePort
	logger        out.LoggerPort
	options       GenerateOptions
	clock         func() time.Time
}

// cachePort равен nil, если кэш справочника выключен
func NewSlotGeneratorService(
	schedulerPort out.SchedulerPort,
	directoryPort out.DirectoryPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
	options GenerateOptions,
) *SlotGeneratorService {
	return &SlotGeneratorService{
		schedulerPort: schedulerPort,
		directoryPort: directoryPort,
		cachePort:     cachePort,
		logger:        logger.WithModule("SlotGeneratorService"),
		options:       options,
		clock: func() time.Time {
			return time.Now().In(config.TimeZone)
		},
	}
}

// WithClock подменяет источник текущего времени для генератора
func (s *SlotGeneratorService) WithClock(clock func() time.Time) *SlotGeneratorService {
	s.clock = clock
	return s
}

func (s *SlotGeneratorService) GetAvailableSlots(ctx context.Context, doctorID int) ([]domain.TimeSlot, error) {
	return s.availableSlots(ctx, doctorID, nil)
}

func (s *SlotGeneratorService) GetAvailableSlotsDebug(ctx context.Context, doctorID int) ([]domain.TimeSlot, []domain.DebugInfo, error) {
	trace := domain.NewDebugTrace()
	slots, err := s.availableSlots(ctx, doctorID, trace)
	if err != nil {
		return nil, nil, err
	}
	return slots, trace.Steps(), nil
}

func (s *SlotGeneratorService) availableSlots(ctx context.Context, doctorID int, trace *domain.DebugTrace) ([]domain.TimeSlot, error) {
	s.logger.Debug("slots.available.started", out.LogFields{
		"doctorId": doctorID,
	})

	var (
		doctor       *domain.Doctor
		appointments []domain.Appointment
	)

	// Врача и снимок записей получаем параллельно, оба запроса нужны до расчета
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		step := trace.Begin("doctor.fetch")
		defer trace.End(step)

		var err error
		doctor, err = s.getDoctor(gctx, doctorID)
		return err
	})
	g.Go(func() error {
		step := trace.Begin("appointments.fetch")
		defer trace.End(step)

		var err error
		appointments, err = s.schedulerPort.ListAppointments(gctx)
		if err != nil {
			return fmt.Errorf("slots.available.appointments.fetch_failed: %w", err)
		}
		step.AddOption("count", fmt.Sprint(len(appointments)))
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("slots.available.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, err
	}

	hours, err := doctor.WorkingHours()
	if err != nil {
		s.logger.Error("slots.available.working_hours.parse_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("doctor %d: %w", doctorID, err)
	}

	generateStep := trace.Begin("slots.generate")
	slots, err := GenerateSlots(s.clock(), hours, s.options)
	trace.End(generateStep)
	if err != nil {
		s.logger.Error("slots.available.generate_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("doctor %d: %w", doctorID, err)
	}

	filterStep := trace.Begin("slots.filter")
	available, err := FilterAvailable(slots, appointments, doctorID)
	trace.End(filterStep)
	if err != nil {
		s.logger.Error("slots.available.filter_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("slots.available.finished", out.LogFields{
		"doctorId":       doctorID,
		"slotsCount":     len(slots),
		"availableCount": len(available),
	})

	return available, nil
}
