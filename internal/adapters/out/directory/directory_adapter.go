package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"

	"github.com/goccy/go-json"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

// Клиент справочника врачей. Ключ API и имя схемы передаются параметрами запроса.
type DirectoryAdapter struct {
	client *http.Client
	url    string
	schema string
	apiKey string
	logger out.LoggerPort
}

func NewDirectoryAdapter(cfg *config.Config, logger out.LoggerPort) *DirectoryAdapter {
	return &DirectoryAdapter{
		client: &http.Client{Timeout: cfg.Directory.Timeout},
		url:    cfg.Directory.URL,
		schema: cfg.Directory.Schema,
		apiKey: cfg.Directory.APIKey,
		logger: logger.WithModule("DirectoryAdapter"),
	}
}

func (a *DirectoryAdapter) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	a.logger.Info("directory.doctors.fetch", out.LogFields{})

	u, err := nurl.Parse(a.url)
	if err != nil {
		return nil, fmt.Errorf("directory url %q: %v: %w", a.url, err, domain.ErrInvalidConfiguration)
	}
	q := u.Query()
	q.Set("key", a.apiKey)
	q.Set("schema", a.schema)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("directory request: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("directory.doctors.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("directory request: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("directory.doctors.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("directory: unexpected status code %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("directory read body: %v: %w", err, domain.ErrUpstreamUnavailable)
	}

	var doctors []domain.Doctor
	if err := json.Unmarshal(body, &doctors); err != nil {
		a.logger.Error("directory.doctors.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("directory decode: %v: %w", err, domain.ErrParse)
	}

	a.logger.Debug("directory.doctors.fetch_success", out.LogFields{
		"count": len(doctors),
	})

	return doctors, nil
}
