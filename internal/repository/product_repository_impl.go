package repository

import (
	"context"
	"errors"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/database/mongodb"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.ProductsCollection)
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.collection().InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

// GetProductByID treats a malformed id like an unknown one.
func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrProductNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.collection().FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, total int64, err error) {
	query := BuildCatalogQuery(filter)

	total, err = r.collection().CountDocuments(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	cursor, err := r.collection().Find(ctx, query, CatalogFindOptions(filter))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, total, nil
}

func (r *ProductRepositoryImpl) GetProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) (data []domain.Product, err error) {
	filter := bson.D{{Key: "seller_id", Value: sellerID}}

	cursor, err := r.collection().Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return
	}

	return data, nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: data.Title},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "category", Value: data.Category},
		{Key: "stock", Value: data.Stock},
		{Key: "images", Value: data.Images},
		{Key: "tags", Value: data.Tags},
		{Key: "status", Value: data.Status},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	result, err := r.collection().DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) CountProductsBySeller(ctx context.Context) (counts map[primitive.ObjectID]int64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$seller_id"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProductsBySeller").Msg("")
		return
	}

	var rows []struct {
		SellerID primitive.ObjectID `bson:"_id"`
		Total    int64              `bson:"total"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProductsBySeller").Msg("")
		return
	}

	counts = make(map[primitive.ObjectID]int64, len(rows))
	for _, row := range rows {
		counts[row.SellerID] = row.Total
	}

	return counts, nil
}
