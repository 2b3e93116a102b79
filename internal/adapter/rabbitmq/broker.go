// Package rabbitmq provides the durable job queue and the outbound event
// stream on top of a single AMQP connection.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"drivead/internal/config/configs"
	"drivead/internal/core/port"
)

const (
	// eventsExchange carries driver notifications and wallet events for
	// external consumers. Topic keys are the event kinds.
	eventsExchange = "drivead.events"

	connectAttempts = 10
	connectBackoff  = 3 * time.Second
)

// Broker wraps one AMQP connection/channel pair. It implements
// port.JobQueue, port.JobConsumer and, through EventPublisher,
// port.Notifier.
type Broker struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *slog.Logger
	mu     sync.Mutex
}

// Connect dials RabbitMQ with retries (the broker usually races the
// application at startup) and declares the events exchange.
func Connect(cfg configs.AMQP, logger *slog.Logger) (*Broker, error) {
	var (
		conn *amqp.Connection
		ch   *amqp.Channel
		err  error
	)
	for i := 0; i < connectAttempts; i++ {
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			ch, err = conn.Channel()
			if err == nil {
				break
			}
			_ = conn.Close()
		}
		logger.Warn("rabbitmq not ready, retrying",
			slog.Int("attempt", i+1),
			slog.Any("error", err))
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	if err = ch.ExchangeDeclare(eventsExchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}

	return &Broker{conn: conn, ch: ch, logger: logger}, nil
}

// Close shuts the channel and connection down.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch != nil {
		_ = b.ch.Close()
	}
	if b.conn != nil {
		_ = b.conn.Close()
	}
}

func (b *Broker) declareQueue(queue string) error {
	_, err := b.ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	return err
}

// Publish JSON-encodes the payload onto a durable queue with persistent
// delivery mode.
func (b *Broker) Publish(ctx context.Context, queue string, payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.declareQueue(queue); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return b.ch.PublishWithContext(pubCtx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// Consume binds the handler to a queue with prefetch 1 and manual acks.
// A handler error nacks without requeue: every job is re-enqueued by the
// next scheduled run anyway, so poison messages never loop.
func (b *Broker) Consume(ctx context.Context, queue string, handler port.JobHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.declareQueue(queue); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := b.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}
	deliveries, err := b.ch.Consume(
		queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					return
				}
				if err := handler(ctx, msg.Body); err != nil {
					b.logger.Error("job failed",
						slog.String("queue", queue),
						slog.Any("error", err))
					if err := msg.Nack(false, false); err != nil {
						b.logger.Error("nack failed", slog.Any("error", err))
					}
					continue
				}
				if err := msg.Ack(false); err != nil {
					b.logger.Error("ack failed", slog.Any("error", err))
				}
			}
		}
	}()
	return nil
}

// EventPublisher implements port.Notifier over the broker's topic
// exchange.
type EventPublisher struct {
	broker *Broker
}

// NewEventPublisher returns a notifier publishing to the events exchange.
func NewEventPublisher(broker *Broker) *EventPublisher {
	return &EventPublisher{broker: broker}
}

// Notify publishes the event with its kind as routing key.
func (p *EventPublisher) Notify(ctx context.Context, event port.DriverEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	p.broker.mu.Lock()
	defer p.broker.mu.Unlock()

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return p.broker.ch.PublishWithContext(pubCtx, eventsExchange, event.Kind, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
