package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

// Publisher кладет push-запросы в топик, доставкой занимается cmd/worker-push-requested.
type Publisher struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Publisher {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &Publisher{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (p *Publisher) Send(ctx context.Context, push entities.OrderPush) error {
	if len(push.DeviceIDs) == 0 {
		return nil
	}

	value, err := json.Marshal(dto.FromPush(push))
	if err != nil {
		return fmt.Errorf("gateway kafka push, encode: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		// ключ по заказу сохраняет порядок уведомлений одного заказа
		Key:   sarama.StringEncoder(strconv.FormatInt(push.Order.ID, 10)),
		Value: sarama.ByteEncoder(value),
	}

	err = p.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway kafka push, order %d: %w", push.Order.ID, err)
	}
	return nil
}

func isRetryable(err error) bool {
	return !errors.Is(err, sarama.ErrMessageSizeTooLarge) &&
		!errors.Is(err, sarama.ErrClosedClient)
}
