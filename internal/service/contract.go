package service

import (
	"context"
	"io"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
)

type AccountService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.AuthResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.AuthResponse, err error)
	GetUser(ctx context.Context, principal domain.Principal) (resp dto.UserResponse, err error)
	UpdateUser(ctx context.Context, principal domain.Principal, req dto.UserProfileRequest) (resp dto.UserResponse, err error)
}

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductListResponse, err error)
	GetProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	GetSellerProducts(ctx context.Context, principal domain.Principal) (resp []dto.ProductResponse, err error)
	SearchProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductSearchResponse, err error)
	AddProduct(ctx context.Context, principal domain.Principal, req dto.ProductRequest, images []dto.FileUpload) (resp dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, principal domain.Principal, id string, req dto.ProductUpdateRequest, images []dto.FileUpload) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, principal domain.Principal, id string) (err error)
}

type SellerProfileService interface {
	GetProfile(ctx context.Context, principal domain.Principal) (resp dto.SellerProfileEnvelope, err error)
	SubmitProfile(ctx context.Context, principal domain.Principal, req dto.SellerProfileRequest, documents []dto.FileUpload) (resp dto.SellerProfileEnvelope, err error)
	GetStatus(ctx context.Context, principal domain.Principal) (resp dto.SellerStatusResponse, err error)
	ApproveProfile(ctx context.Context, userID string, approvedBy string) (resp dto.SellerProfileEnvelope, err error)
	RejectProfile(ctx context.Context, userID string, reason string) (resp dto.SellerProfileEnvelope, err error)
	SuspendProfile(ctx context.Context, userID string) (resp dto.SellerProfileEnvelope, err error)
	RefreshTotalProducts(ctx context.Context) (err error)
}

type CatalogIndexer interface {
	HandleEvent(ctx context.Context, msg dto.KafkaMessage) (err error)
	ConsumeEvent(ctx context.Context)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

type ObjectStore interface {
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type Notifier interface {
	NotifyProfileStatus(ctx context.Context, to, name, status, reason string) error
}
