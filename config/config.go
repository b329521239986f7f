package config

import (
	// Go Internal Packages
	"fmt"
	"time"

	// Local Packages
	errors "psp-datagen/errors"
	models "psp-datagen/models"
)

var DefaultConfig = []byte(`
application: "psp-datagen"

logger:
  level: "info"

is_prod_mode: false

generator:
  seed: 42
  output_dir: "data"
  batch_size: 100
  targets_mb:
    merchants: 4.0
    customers: 4.0
    payments: 4.0
    orders: 4.0
    transactions: 4.0
    payouts: 4.0
    disputes: 4.0
  windows:
    merchants:
      start: "2021-01-01T00:00:00Z"
      end: "2024-01-01T00:00:00Z"
    customers:
      start: "2022-01-01T00:00:00Z"
      end: "2024-01-01T00:00:00Z"
    payments:
      start: "2022-01-01T00:00:00Z"
      end: "2024-01-01T00:00:00Z"
    orders:
      start: "2024-01-01T00:00:00Z"
      end: "2025-01-01T00:00:00Z"

unify:
  input_dir: "data"
  output_file: "data/silver_unified_transactions.jsonl"

mongo:
  enabled: false
  uri: "mongodb://localhost:27017"
  database: "psp"
  batch_size: 1000

redis:
  enabled: false
  uri: "localhost:6379"
  password: ""
  dlq_key: "psp:dlq"

kafka:
  enabled: false
  brokers:
    - "localhost:9092"
  topic_prefix: "psp."
  client_id: "psp-datagen"
`)

type Config struct {
	Application string    `koanf:"application"`
	Logger      Logger    `koanf:"logger"`
	IsProdMode  bool      `koanf:"is_prod_mode"`
	Generator   Generator `koanf:"generator"`
	Unify       Unify     `koanf:"unify"`
	Mongo       Mongo     `koanf:"mongo"`
	Redis       Redis     `koanf:"redis"`
	Kafka       Kafka     `koanf:"kafka"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Generator struct {
	Seed      int64              `koanf:"seed"`
	OutputDir string             `koanf:"output_dir"`
	BatchSize int                `koanf:"batch_size"`
	TargetsMB map[string]float64 `koanf:"targets_mb"`
	Windows   Windows            `koanf:"windows"`
}

// Windows holds the creation-time ranges. Transactions, payouts and disputes
// reuse the order window.
type Windows struct {
	Merchants Window `koanf:"merchants"`
	Customers Window `koanf:"customers"`
	Payments  Window `koanf:"payments"`
	Orders    Window `koanf:"orders"`
}

// Window is an RFC3339 [start, end] range.
type Window struct {
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

type Unify struct {
	InputDir   string `koanf:"input_dir"`
	OutputFile string `koanf:"output_file"`
}

type Mongo struct {
	Enabled   bool   `koanf:"enabled"`
	URI       string `koanf:"uri"`
	Database  string `koanf:"database"`
	BatchSize int    `koanf:"batch_size"`
}

type Redis struct {
	Enabled  bool   `koanf:"enabled"`
	URI      string `koanf:"uri"`
	Password string `koanf:"password"`
	DLQKey   string `koanf:"dlq_key"`
}

type Kafka struct {
	Enabled     bool     `koanf:"enabled"`
	Brokers     []string `koanf:"brokers"`
	TopicPrefix string   `koanf:"topic_prefix"`
	ClientID    string   `koanf:"client_id"`
}

// Bounds parses the window.
func (w Window) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, w.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, w.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start.UTC(), end.UTC(), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}

	g := c.Generator
	if g.Seed == 0 {
		ve.Add("generator.seed", "cannot be zero")
	}
	if g.OutputDir == "" {
		ve.Add("generator.output_dir", "cannot be empty")
	}
	if g.BatchSize <= 0 {
		ve.Add("generator.batch_size", "must be positive")
	}
	for _, entity := range models.Entities {
		if g.TargetsMB[entity] <= 0 {
			ve.Add("generator.targets_mb."+entity, "must be positive")
		}
	}
	windows := map[string]Window{
		"merchants": g.Windows.Merchants,
		"customers": g.Windows.Customers,
		"payments":  g.Windows.Payments,
		"orders":    g.Windows.Orders,
	}
	for name, w := range windows {
		field := "generator.windows." + name
		start, end, err := w.Bounds()
		if err != nil {
			ve.Add(field, fmt.Sprintf("invalid timestamp: %v", err))
			continue
		}
		if !start.Before(end) {
			ve.Add(field, "start must be before end")
		}
	}

	if c.Unify.InputDir == "" {
		ve.Add("unify.input_dir", "cannot be empty")
	}
	if c.Unify.OutputFile == "" {
		ve.Add("unify.output_file", "cannot be empty")
	}

	if c.Mongo.Enabled {
		if c.Mongo.URI == "" {
			ve.Add("mongo.uri", "cannot be empty")
		}
		if c.Mongo.Database == "" {
			ve.Add("mongo.database", "cannot be empty")
		}
		if c.Mongo.BatchSize <= 0 {
			ve.Add("mongo.batch_size", "must be positive")
		}
	}
	if c.Redis.Enabled {
		if c.Redis.URI == "" {
			ve.Add("redis.uri", "cannot be empty")
		}
		if c.Redis.DLQKey == "" {
			ve.Add("redis.dlq_key", "cannot be empty")
		}
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		ve.Add("kafka.brokers", "cannot be empty")
	}

	return ve.Err()
}
