package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort           string
	MetricsPort           string
	Environment           string
	LogLevel              string
	MongoDBConfig         MongoDBConfig
	JWTSecret             string
	AdminAPIKey           string
	RequireSellerApproval bool
	StatsJobInterval      time.Duration
	KafkaConfig           KafkaConfig
	ElasticsearchConfig   ElasticsearchConfig
	StorageConfig         StorageConfig
	SMTPConfig            SMTPConfig
	TracingConfig         TracingConfig
	UploadConfig          UploadConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "5000"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MongoDBConfig: MongoDBConfig{
			URI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getEnv("MONGODB_DB_NAME", "ecomstore"),
		},
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
			GroupID:       getEnv("BROKER_GROUP_ID", "ecomstore-catalog-indexer"),
		},
		ElasticsearchConfig: ElasticsearchConfig{
			DBHost:    os.Getenv("ELASTICSEARCH_HOST"),
			IndexName: getEnv("ELASTICSEARCH_INDEX", "products"),
		},
		StorageConfig: StorageConfig{
			Type:     getEnv("STORAGE_TYPE", "local"),
			BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:  getEnv("STORAGE_BASE_URL", "/uploads"),
			Bucket:   os.Getenv("STORAGE_BUCKET"),
			Region:   os.Getenv("STORAGE_REGION"),
			Endpoint: os.Getenv("STORAGE_ENDPOINT"),
		},
		SMTPConfig: SMTPConfig{
			Server:   os.Getenv("SMTP_SERVER"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		UploadConfig: UploadConfig{
			MaxFileSize:     5 << 20,
			MaxProductFiles: 5,
		},
	}

	conf.KafkaConfig.BrokerPartition = getEnvInt("BROKER_PARTITION", 0)
	conf.SMTPConfig.Port = getEnvInt("SMTP_PORT", 587)
	conf.RequireSellerApproval = getEnvBool("REQUIRE_SELLER_APPROVAL", true)
	conf.StatsJobInterval = getEnvDuration("STATS_JOB_INTERVAL", 10*time.Minute)

	return &conf
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
