package config

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
	GroupID         string
}

func (k KafkaConfig) Enabled() bool {
	return k.BrokerAddress != "" && k.BrokerTopic != ""
}

type ElasticsearchConfig struct {
	DBHost    string
	IndexName string
}

func (e ElasticsearchConfig) Enabled() bool {
	return e.DBHost != ""
}

type StorageConfig struct {
	Type     string // local or s3
	BasePath string
	BaseURL  string
	Bucket   string
	Region   string
	Endpoint string
}

type SMTPConfig struct {
	Server   string
	Port     int
	Sender   string
	Password string
}

func (s SMTPConfig) Enabled() bool {
	return s.Server != "" && s.Sender != ""
}

type TracingConfig struct {
	CollectorHost string
}

type UploadConfig struct {
	MaxFileSize     int64
	MaxProductFiles int
}
