package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/optimat/internal/pkg/logger"
)

// Publisher is the subset of go-nsq's producer used here
type Publisher interface {
	Publish(topic string, body []byte) error
	Stop()
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer Publisher
	logger   *logger.ZapLogger
}

// NewProducer creates a new NSQ producer and pings the daemon
func NewProducer(address string, l *logger.ZapLogger) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return NewProducerWithPublisher(producer, l), nil
}

// NewProducerWithPublisher wraps an existing publisher
func NewProducerWithPublisher(p Publisher, l *logger.ZapLogger) *Producer {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Producer{producer: p, logger: l}
}

// Publish sends a JSON encoded message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
