package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type ElasticsearchRepositoryImpl struct {
	client *elasticsearch.Client
	index  string
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateNewElasticsearchRepository(client *elasticsearch.Client, index string, cb *gobreaker.CircuitBreaker[[]byte]) SearchRepository {
	return &ElasticsearchRepositoryImpl{client: client, index: index, cb: cb}
}

type elasticsearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source dto.ProductDocument `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// maxResultWindow is the index.max_result_window default.
const maxResultWindow = 10000

// BuildSearchQuery returns the request body for a mirror search. Without a
// term it lists newest first, otherwise by relevance.
func BuildSearchQuery(filter pkgdto.Filter) map[string]interface{} {
	filter = filter.Normalize()

	from, size := filter.Offset(), int64(filter.Limit)
	// Pages past the window only report the total.
	if from+size > maxResultWindow {
		from, size = 0, 0
	}

	body := map[string]interface{}{
		"from":             from,
		"size":             size,
		"track_total_hits": true,
	}

	q := strings.TrimSpace(filter.Q)
	if q == "" {
		body["query"] = map[string]interface{}{"match_all": map[string]interface{}{}}
		body["sort"] = []interface{}{map[string]interface{}{"created_at": map[string]interface{}{"order": "desc"}}}
		return body
	}

	body["query"] = map[string]interface{}{
		"multi_match": map[string]interface{}{
			"query":     q,
			"fields":    []string{"title^3", "tags^2", "description", "category"},
			"fuzziness": "AUTO",
		},
	}

	return body
}

func (r *ElasticsearchRepositoryImpl) IndexProduct(ctx context.Context, doc dto.ProductDocument) (err error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return
	}

	_, err = r.execute(ctx, "IndexProduct", func() (*esapi.Response, error) {
		return r.client.Index(
			r.index,
			bytes.NewReader(payload),
			r.client.Index.WithDocumentID(doc.ID),
			r.client.Index.WithContext(ctx),
		)
	})

	return err
}

func (r *ElasticsearchRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	_, err = r.execute(ctx, "DeleteProduct", func() (*esapi.Response, error) {
		return r.client.Delete(r.index, id, r.client.Delete.WithContext(ctx))
	})

	// Already gone from the mirror.
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}

	return err
}

func (r *ElasticsearchRepositoryImpl) SearchProducts(ctx context.Context, filter pkgdto.Filter) (data []dto.ProductDocument, total int64, err error) {
	payload, err := json.Marshal(BuildSearchQuery(filter))
	if err != nil {
		return
	}

	responseBody, err := r.execute(ctx, "SearchProducts", func() (*esapi.Response, error) {
		return r.client.Search(
			r.client.Search.WithContext(ctx),
			r.client.Search.WithIndex(r.index),
			r.client.Search.WithBody(bytes.NewReader(payload)),
		)
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return []dto.ProductDocument{}, 0, nil
		}
		return
	}

	var parsed elasticsearchResponse
	if err = json.Unmarshal(responseBody, &parsed); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return
	}

	data = make([]dto.ProductDocument, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		data = append(data, hit.Source)
	}

	return data, parsed.Hits.Total.Value, nil
}

// execute runs one request through the circuit breaker. A missing document
// or index comes back as errs.ErrNotFound and does not count as a failure.
func (r *ElasticsearchRepositoryImpl) execute(ctx context.Context, component string, call func() (*esapi.Response, error)) ([]byte, error) {
	var notFound bool

	body, err := r.cb.Execute(func() ([]byte, error) {
		res, err := call()
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}

		if res.StatusCode == http.StatusNotFound {
			notFound = true
			return nil, nil
		}

		if res.IsError() {
			return nil, fmt.Errorf("elasticsearch %s: %s", res.Status(), body)
		}

		return body, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errs.ErrSearchUnavailable
	}

	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return nil, err
	}

	if notFound {
		return nil, errs.ErrNotFound
	}

	return body, nil
}
