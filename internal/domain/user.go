package domain

import (
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleSeller:
		return Role(s), nil
	}

	return "", errs.ErrInvalidRole
}

func (r Role) IsSeller() bool {
	return r == RoleSeller
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	HashedPassword string             `bson:"hashed_password"`
	Role           Role               `bson:"role"`
	ExternalID     string             `bson:"external_id"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

// Principal is the authenticated caller, resolved once from the access token.
type Principal struct {
	ID   primitive.ObjectID
	Role Role
}
