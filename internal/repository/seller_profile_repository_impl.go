package repository

import (
	"context"
	"errors"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/database/mongodb"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SellerProfileRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewSellerProfileRepository(db *mongo.Database) SellerProfileRepository {
	return &SellerProfileRepositoryImpl{db: db}
}

func (r *SellerProfileRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.SellerProfilesCollection)
}

func (r *SellerProfileRepositoryImpl) GetProfileByUserID(ctx context.Context, userID primitive.ObjectID) (profile domain.SellerProfile, err error) {
	filter := bson.D{{Key: "user_id", Value: userID}}

	err = r.collection().FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return profile, errs.ErrProfileNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProfileByUserID").Msg("")
		return profile, err
	}

	return profile, nil
}

// SaveProfile replaces the user's profile document, creating it on first
// save. The unique user_id index keeps it at one profile per user.
func (r *SellerProfileRepositoryImpl) SaveProfile(ctx context.Context, data domain.SellerProfile) (profile domain.SellerProfile, err error) {
	filter := bson.D{{Key: "user_id", Value: data.UserID}}
	opts := options.Replace().SetUpsert(true)

	result, err := r.collection().ReplaceOne(ctx, filter, data, opts)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// A concurrent first save won the insert; replace that one instead.
		result, err = r.collection().ReplaceOne(ctx, filter, data)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveProfile").Msg("")
		return data, err
	}

	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		data.ID = id
	}

	if data.ID.IsZero() {
		return r.GetProfileByUserID(ctx, data.UserID)
	}

	return data, nil
}

func (r *SellerProfileRepositoryImpl) ListProfileUserIDs(ctx context.Context) (ids []primitive.ObjectID, err error) {
	opts := options.Find().SetProjection(bson.D{{Key: "user_id", Value: 1}})

	cursor, err := r.collection().Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ListProfileUserIDs").Msg("")
		return
	}

	var rows []struct {
		UserID primitive.ObjectID `bson:"user_id"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ListProfileUserIDs").Msg("")
		return
	}

	ids = make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}

	return ids, nil
}

func (r *SellerProfileRepositoryImpl) SetTotalProducts(ctx context.Context, totals map[primitive.ObjectID]int64) (err error) {
	if len(totals) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(totals))
	for userID, total := range totals {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "user_id", Value: userID}}).
			SetUpdate(bson.D{{Key: "$set", Value: bson.D{{Key: "total_products", Value: total}}}}))
	}

	_, err = r.collection().BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetTotalProducts").Msg("")
		return
	}

	return nil
}
