package kafka

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	errors "psp-datagen/errors"
	models "psp-datagen/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

const produceBatch = 1000

// Client is the part of *kgo.Client the producer needs.
type Client interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type DeadLetterQueue interface {
	Send(ctx context.Context, records []models.Record) error
}

// Producer publishes each dataset to its own topic, keyed by primary key.
type Producer struct {
	Client Client
	Config *models.ProducerConfig
	DLQ    DeadLetterQueue
	Logger *zap.Logger
}

// NewProducer creates the franz-go client. dlq may be nil, in which case any
// refused record fails the export.
func NewProducer(conf *models.ProducerConfig, dlq DeadLetterQueue, metrics *kprom.Metrics, logger *zap.Logger) (*Producer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...), // Connects to Kafka brokers
		kgo.ClientID(conf.ClientID),      // Identifies the generator to the brokers
		kgo.WithHooks(metrics),           // Attaches monitoring hooks
		kgo.AllowAutoTopicCreation(),     // Entity topics are created on first produce
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, errors.E(errors.Sink, "cannot create kafka client", err)
	}
	return &Producer{Client: client, Config: conf, DLQ: dlq, Logger: logger}, nil
}

func (p *Producer) Name() string {
	return "kafka"
}

func (p *Producer) Topic(entity string) string {
	return p.Config.TopicPrefix + entity
}

// Export publishes records in generation order, in synchronous batches.
func (p *Producer) Export(ctx context.Context, entity string, records []models.Keyed) error {
	topic := p.Topic(entity)

	produced := 0
	var failed []models.Record
	var firstErr error
	for start := 0; start < len(records); start += produceBatch {
		end := min(start+produceBatch, len(records))

		batch := make([]*kgo.Record, 0, end-start)
		for _, rec := range records[start:end] {
			value, err := json.Marshal(rec)
			if err != nil {
				return errors.E(errors.Internal, fmt.Sprintf("cannot encode %s record %s", entity, rec.PrimaryKey()), err)
			}
			batch = append(batch, &kgo.Record{Topic: topic, Key: []byte(rec.PrimaryKey()), Value: value})
		}

		for _, res := range p.Client.ProduceSync(ctx, batch...) {
			if res.Err == nil {
				produced++
				continue
			}
			if firstErr == nil {
				firstErr = res.Err
			}
			failed = append(failed, models.Record{Key: res.Record.Key, Value: res.Record.Value, Topic: res.Record.Topic})
		}
	}

	p.Logger.Info("published dataset", zap.String("topic", topic), zap.Int("count", produced))
	if len(failed) == 0 {
		return nil
	}

	if p.DLQ == nil {
		return errors.E(errors.Sink, fmt.Sprintf("%d %s records refused by kafka", len(failed), entity), firstErr)
	}
	p.Logger.Warn("kafka refused records, sending to dead letter queue",
		zap.String("topic", topic), zap.Int("count", len(failed)), zap.Error(firstErr))
	if err := p.DLQ.Send(ctx, failed); err != nil {
		return errors.E(errors.Sink, fmt.Sprintf("cannot dead-letter %d %s records", len(failed), entity), err)
	}
	return nil
}

func (p *Producer) Close() {
	p.Client.Close()
}
