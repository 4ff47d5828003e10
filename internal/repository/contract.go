package repository

import (
	"context"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (users map[primitive.ObjectID]domain.User, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, total int64, err error)
	GetProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error)
	CountProductsBySeller(ctx context.Context) (counts map[primitive.ObjectID]int64, err error)
}

type SellerProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID primitive.ObjectID) (profile domain.SellerProfile, err error)
	SaveProfile(ctx context.Context, data domain.SellerProfile) (profile domain.SellerProfile, err error)
	ListProfileUserIDs(ctx context.Context) (ids []primitive.ObjectID, err error)
	SetTotalProducts(ctx context.Context, totals map[primitive.ObjectID]int64) (err error)
}

type SearchRepository interface {
	IndexProduct(ctx context.Context, doc dto.ProductDocument) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	SearchProducts(ctx context.Context, filter pkgdto.Filter) (data []dto.ProductDocument, total int64, err error)
}
