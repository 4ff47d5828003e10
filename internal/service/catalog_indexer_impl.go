package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// CatalogIndexerImpl keeps the search mirror in step with product events.
type CatalogIndexerImpl struct {
	searchRepo  repository.SearchRepository
	kafkaReader messageReader
}

func CreateCatalogIndexer(searchRepo repository.SearchRepository, kafkaReader messageReader) CatalogIndexer {
	return &CatalogIndexerImpl{searchRepo: searchRepo, kafkaReader: kafkaReader}
}

func decodeEventData(data interface{}, target interface{}) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return json.Unmarshal(dataBytes, target)
}

func (s *CatalogIndexerImpl) HandleEvent(ctx context.Context, msg dto.KafkaMessage) (err error) {
	switch msg.EventType {
	case dto.EventProductCreated, dto.EventProductUpdated:
		var product dto.ProductResponse
		if err = decodeEventData(msg.Data, &product); err != nil {
			return
		}

		// Only listed products are searchable.
		if domain.ProductStatus(product.Status) != domain.ProductStatusActive {
			return s.searchRepo.DeleteProduct(ctx, product.ID)
		}

		return s.searchRepo.IndexProduct(ctx, dto.NewProductDocument(product))
	case dto.EventProductDeleted:
		var deleted dto.ProductDeleted
		if err = decodeEventData(msg.Data, &deleted); err != nil {
			return
		}

		return s.searchRepo.DeleteProduct(ctx, deleted.ID)
	}

	return nil
}

// ConsumeEvent reads until ctx is cancelled.
func (s *CatalogIndexerImpl) ConsumeEvent(ctx context.Context) {
	for {
		msg, err := s.kafkaReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			log.Ctx(ctx).Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		if err := s.HandleEvent(ctx, receivedMsg); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "ConsumeEvent").Str("event_type", receivedMsg.EventType).Msg("")
		}
	}
}
