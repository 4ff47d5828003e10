package repository

import (
	"regexp"
	"testing"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildCatalogQueryActiveOnly(t *testing.T) {
	query := BuildCatalogQuery(pkgdto.Filter{})
	assert.Equal(t, bson.D{{Key: "status", Value: domain.ProductStatusActive}}, query)

	query = BuildCatalogQuery(pkgdto.Filter{Category: "all"})
	assert.Len(t, query, 1)
}

func TestBuildCatalogQueryCategoryAndSearch(t *testing.T) {
	query := BuildCatalogQuery(pkgdto.Filter{Category: "Elec", Search: "blue (large)"})
	require.Len(t, query, 3)

	assert.Equal(t, "category", query[1].Key)
	category := query[1].Value.(primitive.Regex)
	assert.Equal(t, "i", category.Options)
	assert.True(t, regexp.MustCompile("(?i)"+category.Pattern).MatchString("Consumer Electronics"))

	assert.Equal(t, "$or", query[2].Key)
	clauses := query[2].Value.(bson.A)
	require.Len(t, clauses, 3)

	search := clauses[0].(bson.D)[0].Value.(primitive.Regex)
	assert.Equal(t, `blue \(large\)`, search.Pattern)
	assert.Equal(t, "tags", clauses[2].(bson.D)[0].Key)
}

func TestCatalogFindOptions(t *testing.T) {
	opts := CatalogFindOptions(pkgdto.Filter{Page: 3, Limit: 5})
	assert.Equal(t, int64(10), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)
	assert.Equal(t, newestFirst, opts.Sort)

	opts = CatalogFindOptions(pkgdto.Filter{})
	assert.Equal(t, int64(0), *opts.Skip)
	assert.Equal(t, int64(pkgdto.DefaultPageLimit), *opts.Limit)

	opts = CatalogFindOptions(pkgdto.Filter{Page: 100_000_000_000_000_000, Limit: pkgdto.MaxPageLimit})
	assert.Greater(t, *opts.Skip, int64(0))
}

func TestBuildSearchQuery(t *testing.T) {
	body := BuildSearchQuery(pkgdto.Filter{Page: 2, Limit: 10})
	assert.Equal(t, int64(10), body["from"])
	assert.Equal(t, int64(10), body["size"])
	assert.Contains(t, body["query"], "match_all")

	body = BuildSearchQuery(pkgdto.Filter{Q: "lamp"})
	query := body["query"].(map[string]interface{})
	assert.Equal(t, "lamp", query["multi_match"].(map[string]interface{})["query"])
	assert.NotContains(t, body, "sort")
}

func TestBuildSearchQueryPastResultWindow(t *testing.T) {
	body := BuildSearchQuery(pkgdto.Filter{Page: 101, Limit: 100})
	assert.Equal(t, int64(0), body["from"])
	assert.Equal(t, int64(0), body["size"])
	assert.Equal(t, true, body["track_total_hits"])

	body = BuildSearchQuery(pkgdto.Filter{Page: 100, Limit: 100})
	assert.Equal(t, int64(9900), body["from"])
	assert.Equal(t, int64(100), body["size"])
}
