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
)

type UserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.UsersCollection)
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.collection().InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrEmailAlreadyUsed
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	return r.findOne(ctx, "GetUserByEmail", bson.D{{Key: "email", Value: email}})
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error) {
	return r.findOne(ctx, "GetUserByID", bson.D{{Key: "_id", Value: id}})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, component string, filter bson.D) (user domain.User, err error) {
	err = r.collection().FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, errs.ErrAccountNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return user, err
	}

	return user, nil
}

func (r *UserRepositoryImpl) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (users map[primitive.ObjectID]domain.User, err error) {
	users = make(map[primitive.ObjectID]domain.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return nil, err
	}

	var data []domain.User
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return nil, err
	}

	for _, user := range data {
		users[user.ID] = user
	}

	return users, nil
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "email", Value: data.Email},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrEmailAlreadyUsed
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("Failed to update user")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}
