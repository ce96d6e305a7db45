package nsq

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/optimat/internal/pkg/logger"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// ConsumerConfig identifies the topic/channel and where to find it
type ConsumerConfig struct {
	Topic            string
	Channel          string
	Address          string   // nsqd address, used when no lookupd is set
	LookupdAddresses []string // preferred when non-empty
	MaxAttempts      uint16
}

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	logger   *logger.ZapLogger
	topic    string
}

// NewConsumer creates a consumer for a topic/channel and connects it
func NewConsumer(cfg ConsumerConfig, handler MessageHandler, l *logger.ZapLogger) (*Consumer, error) {
	if cfg.Topic == "" || cfg.Channel == "" {
		return nil, errors.New("nsq topic and channel are required")
	}
	if l == nil {
		l = logger.NewNopLogger()
	}

	config := nsq.NewConfig()
	if cfg.MaxAttempts > 0 {
		config.MaxAttempts = cfg.MaxAttempts
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)

	c := &Consumer{consumer: consumer, logger: l, topic: cfg.Topic}
	consumer.AddHandler(nsq.HandlerFunc(c.wrap(handler)))

	if len(cfg.LookupdAddresses) > 0 {
		if err := consumer.ConnectToNSQLookupds(cfg.LookupdAddresses); err != nil {
			return nil, fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
	} else if err := consumer.ConnectToNSQD(cfg.Address); err != nil {
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	l.Info("NSQ consumer connected",
		logger.String("topic", cfg.Topic),
		logger.String("channel", cfg.Channel))

	return c, nil
}

// wrap adapts handler to go-nsq; a returned error requeues the message
func (c *Consumer) wrap(handler MessageHandler) func(*nsq.Message) error {
	return func(message *nsq.Message) error {
		if len(message.Body) == 0 {
			return nil
		}

		if err := handler(message.Body); err != nil {
			c.logger.Error("Error processing message",
				logger.String("topic", c.topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	err := json.Unmarshal(messageBody, v)
	if err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
