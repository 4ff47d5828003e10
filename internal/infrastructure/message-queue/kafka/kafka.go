package kafka

import (
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/segmentio/kafka-go"
)

func CreateKafkaReader(conf config.KafkaConfig) *kafka.Reader {
	readerConfig := kafka.ReaderConfig{
		Brokers:          []string{conf.BrokerAddress},
		Topic:            conf.BrokerTopic,
		MinBytes:         1e3, // 1KB
		MaxBytes:         1e6, // 1MB
		MaxWait:          100 * time.Millisecond,
		ReadLagInterval:  -1,
		StartOffset:      kafka.LastOffset,
		GroupID:          conf.GroupID,
		QueueCapacity:    1000,
		ReadBatchTimeout: 10 * time.Millisecond,
	}

	// A consumer group owns partition assignment.
	if conf.GroupID == "" {
		readerConfig.Partition = conf.BrokerPartition
	}

	return kafka.NewReader(readerConfig)
}

func CreateKafkaWriter(conf config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(conf.BrokerAddress),
		Topic:        conf.BrokerTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}
