package domain

import (
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusSold     ProductStatus = "sold"
)

const DefaultProductStock = 1

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusSold:
		return true
	}

	return false
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Stock       int64              `bson:"stock"`
	Images      []string           `bson:"images"`
	Tags        []string           `bson:"tags"`
	Status      ProductStatus      `bson:"status"`
	SellerID    primitive.ObjectID `bson:"seller_id"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// AuthorizeCreate is a role check: there is no prior resource to own.
func AuthorizeCreate(principal Principal) error {
	if !principal.Role.IsSeller() {
		return errs.ErrOnlySellersCanCreate
	}

	return nil
}

// AuthorizeMutation guards update and delete alike. Only the recorded owner
// passes; role plays no part.
func (p Product) AuthorizeMutation(requesterID primitive.ObjectID) error {
	if p.SellerID.IsZero() || p.SellerID != requesterID {
		return errs.ErrNotOwner
	}

	return nil
}

func (p Product) IsListed() bool {
	return p.Status == ProductStatusActive
}
