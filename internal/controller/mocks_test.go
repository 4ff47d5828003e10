package controller

import (
	"context"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.AuthResponse), args.Error(1)
}

func (m *mockAccountService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.AuthResponse), args.Error(1)
}

func (m *mockAccountService) GetUser(ctx context.Context, principal domain.Principal) (dto.UserResponse, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *mockAccountService) UpdateUser(ctx context.Context, principal domain.Principal, req dto.UserProfileRequest) (dto.UserResponse, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) GetProducts(ctx context.Context, filter pkgdto.Filter) (dto.ProductListResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(dto.ProductListResponse), args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, id string) (dto.ProductResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *mockProductService) GetSellerProducts(ctx context.Context, principal domain.Principal) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *mockProductService) SearchProducts(ctx context.Context, filter pkgdto.Filter) (dto.ProductSearchResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(dto.ProductSearchResponse), args.Error(1)
}

func (m *mockProductService) AddProduct(ctx context.Context, principal domain.Principal, req dto.ProductRequest, images []dto.FileUpload) (dto.ProductResponse, error) {
	args := m.Called(ctx, principal, req, images)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, principal domain.Principal, id string, req dto.ProductUpdateRequest, images []dto.FileUpload) (dto.ProductResponse, error) {
	args := m.Called(ctx, principal, id, req, images)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, principal domain.Principal, id string) error {
	return m.Called(ctx, principal, id).Error(0)
}

type mockSellerProfileService struct {
	mock.Mock
}

func (m *mockSellerProfileService) GetProfile(ctx context.Context, principal domain.Principal) (dto.SellerProfileEnvelope, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(dto.SellerProfileEnvelope), args.Error(1)
}

func (m *mockSellerProfileService) SubmitProfile(ctx context.Context, principal domain.Principal, req dto.SellerProfileRequest, documents []dto.FileUpload) (dto.SellerProfileEnvelope, error) {
	args := m.Called(ctx, principal, req, documents)
	return args.Get(0).(dto.SellerProfileEnvelope), args.Error(1)
}

func (m *mockSellerProfileService) GetStatus(ctx context.Context, principal domain.Principal) (dto.SellerStatusResponse, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(dto.SellerStatusResponse), args.Error(1)
}

func (m *mockSellerProfileService) ApproveProfile(ctx context.Context, userID string, approvedBy string) (dto.SellerProfileEnvelope, error) {
	args := m.Called(ctx, userID, approvedBy)
	return args.Get(0).(dto.SellerProfileEnvelope), args.Error(1)
}

func (m *mockSellerProfileService) RejectProfile(ctx context.Context, userID string, reason string) (dto.SellerProfileEnvelope, error) {
	args := m.Called(ctx, userID, reason)
	return args.Get(0).(dto.SellerProfileEnvelope), args.Error(1)
}

func (m *mockSellerProfileService) SuspendProfile(ctx context.Context, userID string) (dto.SellerProfileEnvelope, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(dto.SellerProfileEnvelope), args.Error(1)
}

func (m *mockSellerProfileService) RefreshTotalProducts(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
