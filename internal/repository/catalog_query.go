package repository

import (
	"regexp"
	"strings"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// containsFold matches s anywhere, ignoring case. User input is literal text.
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// BuildCatalogQuery returns the public listing filter: active products only,
// optionally narrowed by category and a search term over title, description
// and tags.
func BuildCatalogQuery(filter pkgdto.Filter) bson.D {
	query := bson.D{{Key: "status", Value: domain.ProductStatusActive}}

	if category, ok := filter.CategoryFilter(); ok {
		query = append(query, bson.E{Key: "category", Value: containsFold(category)})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsFold(search)
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
			bson.D{{Key: "tags", Value: pattern}},
		}})
	}

	return query
}

// newestFirst orders by creation time, falling back to insertion order.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}

func CatalogFindOptions(filter pkgdto.Filter) *options.FindOptions {
	filter = filter.Normalize()

	return options.Find().
		SetSort(newestFirst).
		SetSkip(filter.Offset()).
		SetLimit(int64(filter.Limit))
}
