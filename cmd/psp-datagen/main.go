package main

import (
	// Go Internal Packages
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "psp-datagen/config"
	helpers "psp-datagen/helpers"
	kafka "psp-datagen/kafka"
	models "psp-datagen/models"
	jsonl "psp-datagen/repositories/jsonl"
	mongodb "psp-datagen/repositories/mongodb"
	redis "psp-datagen/repositories/redis"
	exporter "psp-datagen/services/exporter"
	generator "psp-datagen/services/generator"
	unify "psp-datagen/services/unify"
	utils "psp-datagen/utils"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

const (
	generateCommand = "generate"
	unifyCommand    = "unify"
)

// LoadSecrets Loads the secret variables and overrides the config
func LoadSecrets(k config.Config) config.Config {
	MongoURI := os.Getenv("MONGO_URI")
	if MongoURI != "" {
		k.Mongo.URI = MongoURI
	}

	RedisURI := os.Getenv("REDIS_URI")
	if RedisURI != "" {
		k.Redis.URI = RedisURI
	}

	RedisPassword := os.Getenv("REDIS_PASSWORD")
	if RedisPassword != "" {
		k.Redis.Password = RedisPassword
	}

	KafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if KafkaBrokers != "" {
		k.Kafka.Brokers = utils.SplitList(KafkaBrokers)
	}

	IsProdMode := os.Getenv("IS_PROD_MODE")
	k.IsProdMode = IsProdMode == "true"
	return k
}

// LoadConfig loads the default configuration, overrides it with the config file
// specified by the path defined in the config flag and then with the command
// flags the user set. It returns the selected command.
func LoadConfig() (*koanf.Koanf, string) {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	var seedSet, outputDirSet, inputDirSet, outputFileSet bool
	generateCmd := kingpin.Command(generateCommand, "Generate the PSP datasets").Default()
	seed := generateCmd.Flag("seed", "Seed of the random source").IsSetByUser(&seedSet).Int64()
	outputDir := generateCmd.Flag("output-dir", "Directory for the generated files").IsSetByUser(&outputDirSet).String()

	unifyCmd := kingpin.Command(unifyCommand, "Build the unified transactions table from generated files")
	inputDir := unifyCmd.Flag("input-dir", "Directory holding the generated files").IsSetByUser(&inputDirSet).String()
	outputFile := unifyCmd.Flag("output-file", "Path of the unified table").IsSetByUser(&outputFileSet).String()

	command := kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}

	overrides := map[string]any{}
	if seedSet {
		overrides["generator.seed"] = *seed
	}
	if outputDirSet {
		overrides["generator.output_dir"] = *outputDir
		overrides["unify.input_dir"] = *outputDir
	}
	if inputDirSet {
		overrides["unify.input_dir"] = *inputDir
	}
	if outputFileSet {
		overrides["unify.output_file"] = *outputFile
	}
	_ = k.Load(confmap.Provider(overrides, "."), nil)
	return k, command
}

func main() {
	k, command := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Update and Validate config before running
	updatedKonf := LoadSecrets(appKonf)
	if err = updatedKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !updatedKonf.IsProdMode {
		k.Print()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(updatedKonf.Logger.Level))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = updatedKonf.Application
	cfg.OutputPaths = []string{"stdout"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch command {
	case unifyCommand:
		runUnify(updatedKonf, logger)
	default:
		runGenerate(ctx, updatedKonf, logger)
	}
}

func runGenerate(ctx context.Context, conf config.Config, logger *zap.Logger) {
	opts, err := generator.OptionsFromConfig(conf.Generator)
	if err != nil {
		logger.Fatal("invalid generator options", zap.Error(err))
	}
	gen, err := generator.NewGenerator(logger, opts)
	if err != nil {
		logger.Fatal("cannot create generator", zap.Error(err))
	}

	var (
		sinks     []exporter.Sink
		manifests exporter.ManifestStore
		dlq       kafka.DeadLetterQueue
	)

	// Redis Connection
	if conf.Redis.Enabled {
		redisClient, err := redis.Connect(ctx, conf.Redis.URI, conf.Redis.Password)
		if err != nil {
			logger.Fatal("cannot create redis client", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		dlq = redis.NewDeadLetterQueue(redisClient, logger, conf.Redis.DLQKey)
		manifests = redis.NewManifestRepository(redisClient)
	}

	// Mongo Connection
	if conf.Mongo.Enabled {
		mongoClient, err := mongodb.Connect(ctx, conf.Mongo.URI)
		if err != nil {
			logger.Fatal("cannot create mongo client", zap.Error(err))
		}
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
		sinks = append(sinks, mongodb.NewDatasetRepository(mongoClient, conf.Mongo.Database, conf.Mongo.BatchSize, logger))
	}

	if conf.Kafka.Enabled {
		metrics := kprom.NewMetrics("psp_datagen")
		producerConf := &models.ProducerConfig{
			Brokers:     conf.Kafka.Brokers,
			ClientID:    conf.Kafka.ClientID,
			TopicPrefix: conf.Kafka.TopicPrefix,
		}
		producer, err := kafka.NewProducer(producerConf, dlq, metrics, logger)
		if err != nil {
			logger.Fatal("cannot create kafka producer", zap.Error(err))
		}
		defer producer.Close()
		sinks = append(sinks, producer)
	}

	ds, err := gen.Run(ctx)
	if err != nil {
		logger.Fatal("cannot generate datasets", zap.Error(err))
	}

	files := jsonl.NewWriter(conf.Generator.OutputDir, logger)
	exp := exporter.NewExporter(logger, files, manifests, sinks...)
	summary, err := exp.Export(ctx, uuid.NewString(), opts.Seed, ds)
	if err != nil {
		logger.Fatal("cannot export datasets", zap.Error(err))
	}

	logger.Info("generation complete", zap.String("run_id", summary.RunID), zap.Int("files", len(summary.Files)))
	if !conf.IsProdMode {
		_ = helpers.PrintStruct(os.Stdout, summary)
	}
}

func runUnify(conf config.Config, logger *zap.Logger) {
	u := unify.NewUnifier(logger)
	stats, report, err := u.Run(conf.Unify.InputDir, conf.Unify.OutputFile)
	if err != nil {
		logger.Fatal("cannot unify transactions", zap.Error(err))
	}

	logger.Info("unify complete", zap.String("path", stats.Path), zap.Int("rows", report.Rows))
	if !conf.IsProdMode {
		_ = helpers.PrintStruct(os.Stdout, report)
	}
}
