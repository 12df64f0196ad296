package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	httpadapter "github.com/suchimauz/clinic-appointments-gateway/internal/adapters/in/http"
	"github.com/suchimauz/clinic-appointments-gateway/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/clinic-appointments-gateway/internal/adapters/out/cache"
	"github.com/suchimauz/clinic-appointments-gateway/internal/adapters/out/directory"
	"github.com/suchimauz/clinic-appointments-gateway/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-appointments-gateway/internal/adapters/out/scheduler"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/services/slot_generator_service"
)

const shutdownTimeout = 10 * time.Second

type application struct {
	cfg     *config.Config
	logger  *logger.ZapLogger
	service *slot_generator_service.SlotGeneratorService
}

func newApplication() (*application, error) {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	mainLogger, err := logger.NewZapLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// Инициализация адаптеров
	schedulerAdapter := scheduler.NewSchedulerAdapter(cfg, mainLogger)
	directoryAdapter := directory.NewDirectoryAdapter(cfg, mainLogger)

	// Порт остается nil при выключенном кэше, а не nil-указателем внутри интерфейса
	var cachePort out.CachePort
	if cfg.Cache.Enabled {
		cachePort = cache.NewCacheAdapter(cfg, mainLogger)
	}

	options := slot_generator_service.GenerateOptions{
		SlotDuration: cfg.SlotDuration(),
		HorizonDays:  cfg.Slots.HorizonDays,
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	service := slot_generator_service.NewSlotGeneratorService(
		schedulerAdapter,
		directoryAdapter,
		cachePort,
		mainLogger,
		options,
	)

	return &application{
		cfg:     cfg,
		logger:  mainLogger,
		service: service,
	}, nil
}

func runServe(ctx context.Context) error {
	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	cfg := app.cfg
	log := app.logger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
		"authEnabled":     len(cfg.Auth.BasicClients) > 0,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := httpadapter.NewRouter(cfg, app.logger,
		httpadapter.NewAvailabilityController(app.service, app.service),
		httpadapter.NewAppointmentController(app.service),
	)
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewCacheHitListener(app.service, cfg, app.logger)
		if err != nil {
			return fmt.Errorf("init rabbitmq: %w", err)
		}
		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()

		if err := listener.Start(ctx); err != nil {
			return fmt.Errorf("start rabbitmq: %w", err)
		}
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Host + ":" + cfg.HTTP.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			return err
		}
	case <-ctx.Done():
		log.Info("app.shutdown.initiated", out.LogFields{})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("app.http.shutdown_failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}

	log.Info("app.stopped", out.LogFields{})
	return nil
}

func runSlots(ctx context.Context, w io.Writer, doctorID int, debug bool) error {
	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	var result interface{}
	if debug {
		slots, debugInfo, err := app.service.GetAvailableSlotsDebug(ctx, doctorID)
		if err != nil {
			return err
		}
		result = map[string]interface{}{
			"slots": slots,
			"debug": debugInfo,
		}
	} else {
		slots, err := app.service.GetAvailableSlots(ctx, doctorID)
		if err != nil {
			return err
		}
		result = slots
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

