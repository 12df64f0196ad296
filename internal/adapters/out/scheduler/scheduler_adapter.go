package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

// Клиент сервиса расписания. Все запросы идут на один адрес,
// идентификатор записи передается параметром "id".
type SchedulerAdapter struct {
	client  *http.Client
	baseURL string
	logger  out.LoggerPort
}

func NewSchedulerAdapter(cfg *config.Config, logger out.LoggerPort) *SchedulerAdapter {
	return &SchedulerAdapter{
		client:  &http.Client{Timeout: cfg.Scheduler.Timeout},
		baseURL: cfg.Scheduler.URL,
		logger:  logger.WithModule("SchedulerAdapter"),
	}
}

func (a *SchedulerAdapter) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	a.logger.Debug("scheduler.appointments.fetch", out.LogFields{})

	resp, err := a.do(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		a.logger.Error("scheduler.appointments.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("scheduler.appointments.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("scheduler list: unexpected status code %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var appointments []domain.Appointment
	if err := json.Unmarshal(resp.Body, &appointments); err != nil {
		a.logger.Error("scheduler.appointments.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("scheduler list: %v: %w", err, domain.ErrParse)
	}

	a.logger.Debug("scheduler.appointments.fetch_success", out.LogFields{
		"count": len(appointments),
	})

	return appointments, nil
}

// Ответ планировщика возвращается клиенту как есть, в том числе с ошибочным статусом
func (a *SchedulerAdapter) CreateAppointment(ctx context.Context, req domain.AppointmentRequest) (*domain.SchedulerResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := a.do(ctx, http.MethodPost, a.baseURL, body)
	if err != nil {
		a.logger.Error("scheduler.appointments.create_failed", out.LogFields{
			"doctorId": req.DoctorID,
			"error":    err.Error(),
		})
		return nil, err
	}

	a.logger.Info("scheduler.appointments.created", out.LogFields{
		"doctorId":  req.DoctorID,
		"patientId": req.PatientID,
		"startTime": req.StartTime,
		"status":    resp.StatusCode,
	})

	return resp, nil
}

func (a *SchedulerAdapter) UpdateAppointment(ctx context.Context, appointmentID int, req domain.AppointmentRequest) (*domain.SchedulerResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := a.do(ctx, http.MethodPut, a.appointmentURL(appointmentID), body)
	if err != nil {
		a.logger.Error("scheduler.appointments.update_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("scheduler.appointments.update_failed", out.LogFields{
			"appointmentId": appointmentID,
			"status":        resp.StatusCode,
		})
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("appointment %d: %w", appointmentID, domain.ErrAppointmentNotFound)
		}
		return nil, fmt.Errorf("scheduler update: unexpected status code %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	return resp, nil
}

func (a *SchedulerAdapter) DeleteAppointment(ctx context.Context, appointmentID int) error {
	resp, err := a.do(ctx, http.MethodDelete, a.appointmentURL(appointmentID), nil)
	if err != nil {
		a.logger.Error("scheduler.appointments.delete_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		a.logger.Info("scheduler.appointments.deleted", out.LogFields{
			"appointmentId": appointmentID,
		})
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("appointment %d: %w", appointmentID, domain.ErrAppointmentNotFound)
	default:
		a.logger.Error("scheduler.appointments.delete_failed", out.LogFields{
			"appointmentId": appointmentID,
			"status":        resp.StatusCode,
		})
		return fmt.Errorf("scheduler delete: unexpected status code %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}
}

func (a *SchedulerAdapter) appointmentURL(appointmentID int) string {
	u, err := nurl.Parse(a.baseURL)
	if err != nil {
		return fmt.Sprintf("%s?id=%d", a.baseURL, appointmentID)
	}
	q := u.Query()
	q.Set("id", strconv.Itoa(appointmentID))
	u.RawQuery = q.Encode()
	return u.String()
}

// Ошибки транспорта и чтения тела оборачиваются в ErrUpstreamUnavailable
func (a *SchedulerAdapter) do(ctx context.Context, method, url string, body []byte) (*domain.SchedulerResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("scheduler %s: %v: %w", method, err, domain.ErrUpstreamUnavailable)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scheduler %s: %v: %w", method, err, domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scheduler %s: read body: %v: %w", method, err, domain.ErrUpstreamUnavailable)
	}

	return &domain.SchedulerResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}
