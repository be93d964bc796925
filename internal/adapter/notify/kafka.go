package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

var errNoBrokers = errors.New("no kafka brokers configured")

// KafkaSender publishes notifications as JSON records.
type KafkaSender struct {
	client *kgo.Client
	topic  string
}

// NewKafkaSender creates a producer client; brokers are contacted lazily.
func NewKafkaSender(brokers []string, topic string, logger *slog.Logger) (*KafkaSender, error) {
	if len(brokers) == 0 {
		return nil, errNoBrokers
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
		kgo.WithLogger(&kgoLogger{logger: logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &KafkaSender{client: client, topic: topic}, nil
}

func (s *KafkaSender) Send(ctx context.Context, n model.Notification) error {
	record, err := buildRecord(s.topic, n)
	if err != nil {
		return err
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce %s: %w", n.Kind, err)
	}
	return nil
}

// Close flushes buffered records and closes the client.
func (s *KafkaSender) Close(ctx context.Context) error {
	err := s.client.Flush(ctx)
	s.client.Close()
	return err
}

func buildRecord(topic string, n model.Notification) (*kgo.Record, error) {
	value, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(n.Key()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(n.Kind)},
			{Key: "recipient", Value: []byte(n.Recipient)},
		},
		Timestamp: n.CreatedAt,
	}, nil
}

// kgoLogger forwards client diagnostics to slog.
type kgoLogger struct {
	logger *slog.Logger
}

func (l *kgoLogger) Level() kgo.LogLevel {
	return kgo.LogLevelWarn
}

func (l *kgoLogger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	switch level {
	case kgo.LogLevelError:
		l.logger.Error(msg, keyvals...)
	case kgo.LogLevelWarn:
		l.logger.Warn(msg, keyvals...)
	case kgo.LogLevelInfo:
		l.logger.Info(msg, keyvals...)
	default:
		l.logger.Debug(msg, keyvals...)
	}
}
