package kafka

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
)

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewConsumerConfig(versionStr string, autoCommit bool) (*sarama.Config, error) {
	cfg, err := newBaseConfig(versionStr)
	if err != nil {
		return nil, err
	}

	// push-запросы старше подписки тоже нужно доставить
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

// NewConsumer подключается к группе KAFKA_CONSUMER_GROUP на топике KAFKA_TOPIC.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := cfg.KafkaBrokers()
	topics := []string{cfg.Topic}

	saramaConfig, err := NewConsumerConfig(cfg.Sarama.Version, cfg.Sarama.ConsumerOffsetsAutocommit)
	if err != nil {
		return nil, fmt.Errorf("build consumer config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start крутит Consume до отмены ctx или закрытия группы (блокирующий вызов).
// Consume возвращается после каждого ребаланса, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	go c.drainErrors(ctx)

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}
			c.log.With(
				logger.NewField("error", err),
			).Error("Error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}

		c.log.Info("consumer group rebalanced, rejoining")
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

func (c *Consumer) drainErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-c.client.Errors():
			if !ok {
				return
			}
			c.log.With(logger.NewField("error", err)).Warn("consumer group error")
		}
	}
}
