package elasticsearch

import (
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func CreateElasticsearchClient(conf config.ElasticsearchConfig) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{
			conf.DBHost,
		},
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return client, fmt.Errorf("connecting to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Warn().Str("component", "CreateElasticsearchClient").Str("response", res.String()).Msg("elasticsearch info request failed")
	}

	return client, nil
}
