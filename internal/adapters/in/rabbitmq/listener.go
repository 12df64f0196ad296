package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

type CacheHitListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.CacheUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	CacheHitType         string
	CacheHitResourceType string
)

type CacheMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType CacheHitResourceType
	ResourceID   string
	CacheHitType CacheHitType
}

const (
	CacheHitResourceTypeAll    CacheHitResourceType = "_all_"
	CacheHitResourceTypeDoctor CacheHitResourceType = "doctor"
)

const (
	CacheHitTypeStore      CacheHitType = "store"
	CacheHitTypeInvalidate CacheHitType = "invalidate"
)

func NewCacheHitListener(useCase in.CacheUseCase, cfg *config.Config, logger out.LoggerPort) (*CacheHitListener, error) {
	logger = logger.WithModule("RabbitMQListener")

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return newCacheHitListener(conn, channel, useCase, cfg, logger), nil
}

func newCacheHitListener(conn *amqp.Connection, channel *amqp.Channel, useCase in.CacheUseCase, cfg *config.Config, logger out.LoggerPort) *CacheHitListener {
	return &CacheHitListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}
}

func (l *CacheHitListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.Bind,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go l.consume(ctx, msgs)

	l.logger.Info("rabbitmq.queue.started", out.LogFields{
		"queue":    queue.Name,
		"bind":     l.cfg.RabbitMQ.Bind,
		"exchange": l.cfg.RabbitMQ.Exchange,
	})

	return nil
}

func (l *CacheHitListener) consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				l.logger.Warn("rabbitmq.queue.closed", out.LogFields{})
				return
			}
			if err := l.processMessage(ctx, msg.RoutingKey); err != nil {
				l.logger.Warn("rabbitmq.message.rejected", out.LogFields{
					"routingKey": msg.RoutingKey,
					"error":      err.Error(),
				})
				// Повтор некорректного ключа ничего не изменит
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

func (l *CacheHitListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Пример routingKey:
// directory.appointments-gateway.doctor.42.invalidate
// directory.appointments-gateway._all_._all_.invalidate
func parseCacheMessageRoutingKey(routingKey string) (CacheMessageRoutingKey, error) {
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 {
		return CacheMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return CacheMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: CacheHitResourceType(parts[2]),
		ResourceID:   parts[3],
		CacheHitType: CacheHitType(parts[4]),
	}, nil
}
