package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func pngUpload(name string) dto.FileUpload {
	return dto.FileUpload{Field: "images", Filename: name, Size: int64(len(pngBytes)), Reader: bytes.NewReader(pngBytes)}
}

func testConfig() config.Config {
	return config.Config{
		RequireSellerApproval: true,
		UploadConfig:          config.UploadConfig{MaxFileSize: 5 << 20, MaxProductFiles: 5},
	}
}

type ProductServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	products  *mockProductRepository
	users     *mockUserRepository
	profiles  *mockSellerProfileRepository
	store     *memoryStore
	publisher *recordingPublisher
	config    config.Config
	svc       ProductService

	seller   domain.User
	other    domain.User
	customer domain.Principal
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.products = new(mockProductRepository)
	s.users = new(mockUserRepository)
	s.profiles = new(mockSellerProfileRepository)
	s.store = newMemoryStore()
	s.publisher = &recordingPublisher{}
	s.config = testConfig()
	s.buildService()

	s.seller = domain.User{ID: primitive.NewObjectID(), Name: "Jane", Email: "jane@example.com", Role: domain.RoleSeller}
	s.other = domain.User{ID: primitive.NewObjectID(), Name: "Raj", Email: "raj@example.com", Role: domain.RoleSeller}
	s.customer = domain.Principal{ID: primitive.NewObjectID(), Role: domain.RoleCustomer}
}

func (s *ProductServiceTestSuite) buildService() {
	s.svc = CreateProductService(s.products, s.users, s.profiles, nil, s.store, s.publisher, s.config)
}

func (s *ProductServiceTestSuite) principal(u domain.User) domain.Principal {
	return domain.Principal{ID: u.ID, Role: u.Role}
}

func (s *ProductServiceTestSuite) approve(u domain.User) {
	profile := domain.NewSellerProfile(u.ID)
	profile.ProfileStatus = domain.ProfileStatusApproved
	s.profiles.On("GetProfileByUserID", mock.Anything, u.ID).Return(profile, nil)
}

func (s *ProductServiceTestSuite) ownedProduct() domain.Product {
	return domain.Product{
		ID:          primitive.NewObjectID(),
		Title:       "Desk lamp",
		Description: "Warm light",
		Price:       20,
		Category:    "Home",
		Stock:       3,
		Images:      []string{"products/first.png"},
		Tags:        []string{"light"},
		Status:      domain.ProductStatusActive,
		SellerID:    s.seller.ID,
	}
}

func (s *ProductServiceTestSuite) Test_CustomerCannotCreate() {
	_, err := s.svc.AddProduct(s.ctx, s.customer, dto.ProductRequest{Title: "x", Description: "y", Price: "1", Category: "z"}, []dto.FileUpload{pngUpload("a.png")})

	s.ErrorIs(err, errs.ErrOnlySellersCanCreate)
	s.Equal(errs.ErrOnlySellersCanCreate.Error(), err.Error())
	s.products.AssertNotCalled(s.T(), "AddProduct", mock.Anything, mock.Anything)
	s.Empty(s.store.objects)
	s.Empty(s.publisher.messages)
}

func (s *ProductServiceTestSuite) Test_ApprovalGate() {
	pending := domain.NewSellerProfile(s.seller.ID)
	pending.ProfileStatus = domain.ProfileStatusPending
	s.profiles.On("GetProfileByUserID", mock.Anything, s.seller.ID).Return(pending, nil)
	s.profiles.On("GetProfileByUserID", mock.Anything, s.other.ID).Return(domain.SellerProfile{}, errs.ErrProfileNotFound)

	req := dto.ProductRequest{Title: "Lamp", Description: "Warm", Price: "10", Category: "Home"}

	_, err := s.svc.AddProduct(s.ctx, s.principal(s.seller), req, nil)
	s.ErrorIs(err, errs.ErrSellerNotApproved)

	_, err = s.svc.AddProduct(s.ctx, s.principal(s.other), req, nil)
	s.ErrorIs(err, errs.ErrSellerNotApproved)

	s.products.AssertNotCalled(s.T(), "AddProduct", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) Test_ApprovalGateDisabled() {
	s.config.RequireSellerApproval = false
	s.buildService()

	id := primitive.NewObjectID()
	s.products.On("AddProduct", mock.Anything, mock.Anything).Return(id, nil)
	s.users.On("GetUserByID", mock.Anything, s.seller.ID).Return(s.seller, nil)

	resp, err := s.svc.AddProduct(s.ctx, s.principal(s.seller), dto.ProductRequest{Title: "Lamp", Description: "Warm", Price: "10", Category: "Home"}, nil)
	s.Require().NoError(err)
	s.Equal(id.Hex(), resp.ID)
	s.profiles.AssertNotCalled(s.T(), "GetProfileByUserID", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) Test_CreateProduct() {
	s.approve(s.seller)
	id := primitive.NewObjectID()
	s.products.On("AddProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.SellerID == s.seller.ID &&
			p.Stock == domain.DefaultProductStock &&
			p.Status == domain.ProductStatusActive &&
			p.Price == 19.5 &&
			len(p.Images) == 2 &&
			strings.Join(p.Tags, "|") == "desk|warm light"
	})).Return(id, nil)
	s.users.On("GetUserByID", mock.Anything, s.seller.ID).Return(s.seller, nil)

	resp, err := s.svc.AddProduct(s.ctx, s.principal(s.seller), dto.ProductRequest{
		Title: " Lamp ", Description: "Warm", Price: "19.5", Category: "Home", Tags: "desk, warm light,",
	}, []dto.FileUpload{pngUpload("a.png"), pngUpload("b.png")})

	s.Require().NoError(err)
	s.Equal("Lamp", resp.Title)
	s.Equal("active", resp.Status)
	s.Require().NotNil(resp.Seller)
	s.Equal("Jane", resp.Seller.Name)
	s.Len(resp.Images, 2)
	s.True(strings.HasPrefix(resp.Images[0], "/uploads/products/"))
	s.Len(s.store.objects, 2)
	s.Equal([]string{dto.EventProductCreated}, s.publisher.eventTypes())
}

func (s *ProductServiceTestSuite) Test_CreateProductRejectsBadUploads() {
	s.approve(s.seller)
	req := dto.ProductRequest{Title: "Lamp", Description: "Warm", Price: "10", Category: "Home"}

	text := dto.FileUpload{Field: "images", Size: 5, Reader: strings.NewReader("hello")}
	_, err := s.svc.AddProduct(s.ctx, s.principal(s.seller), req, []dto.FileUpload{pngUpload("a.png"), text})
	s.ErrorIs(err, errs.ErrUnsupportedFileType)

	big := pngUpload("big.png")
	big.Size = 6 << 20
	_, err = s.svc.AddProduct(s.ctx, s.principal(s.seller), req, []dto.FileUpload{big})
	s.ErrorIs(err, errs.ErrFileTooLarge)

	files := make([]dto.FileUpload, 6)
	for i := range files {
		files[i] = pngUpload("p.png")
	}
	_, err = s.svc.AddProduct(s.ctx, s.principal(s.seller), req, files)
	s.ErrorIs(err, errs.ErrTooManyFiles)

	s.Empty(s.store.objects)
	s.products.AssertNotCalled(s.T(), "AddProduct", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) Test_CreateProductInvalidPrice() {
	s.approve(s.seller)

	_, err := s.svc.AddProduct(s.ctx, s.principal(s.seller), dto.ProductRequest{Title: "Lamp", Description: "Warm", Price: "-1", Category: "Home"}, nil)
	s.ErrorIs(err, errs.ErrValidation)
}

func (s *ProductServiceTestSuite) Test_PublishFailureDoesNotFailCreate() {
	s.approve(s.seller)
	s.publisher.err = errors.New("broker down")
	s.products.On("AddProduct", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
	s.users.On("GetUserByID", mock.Anything, s.seller.ID).Return(s.seller, nil)

	_, err := s.svc.AddProduct(s.ctx, s.principal(s.seller), dto.ProductRequest{Title: "Lamp", Description: "Warm", Price: "10", Category: "Home"}, nil)
	s.NoError(err)
}

func (s *ProductServiceTestSuite) Test_NonOwnerCannotMutate() {
	product := s.ownedProduct()
	s.products.On("GetProductByID", mock.Anything, product.ID.Hex()).Return(product, nil)

	_, err := s.svc.UpdateProduct(s.ctx, s.principal(s.other), product.ID.Hex(), dto.ProductUpdateRequest{Price: "1"}, nil)
	s.ErrorIs(err, errs.ErrNotOwner)
	s.Equal("Not authorized", err.Error())

	_, err = s.svc.UpdateProduct(s.ctx, s.customer, product.ID.Hex(), dto.ProductUpdateRequest{Price: "1"}, nil)
	s.ErrorIs(err, errs.ErrNotOwner)

	err = s.svc.DeleteProduct(s.ctx, s.principal(s.other), product.ID.Hex())
	s.ErrorIs(err, errs.ErrNotOwner)

	s.products.AssertNotCalled(s.T(), "UpdateProduct", mock.Anything, mock.Anything)
	s.products.AssertNotCalled(s.T(), "DeleteProduct", mock.Anything, mock.Anything)
	s.Empty(s.publisher.messages)
}

func (s *ProductServiceTestSuite) Test_MutateUnknownProduct() {
	s.products.On("GetProductByID", mock.Anything, "missing").Return(domain.Product{}, errs.ErrProductNotFound)

	_, err := s.svc.UpdateProduct(s.ctx, s.principal(s.seller), "missing", dto.ProductUpdateRequest{}, nil)
	s.ErrorIs(err, errs.ErrProductNotFound)

	err = s.svc.DeleteProduct(s.ctx, s.principal(s.seller), "missing")
	s.ErrorIs(err, errs.ErrProductNotFound)
}

func (s *ProductServiceTestSuite) Test_OwnerPartialUpdate() {
	s.approve(s.seller)
	product := s.ownedProduct()
	s.products.On("GetProductByID", mock.Anything, product.ID.Hex()).Return(product, nil)
	s.products.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Price == 25 &&
			p.Title == "Desk lamp" &&
			p.Description == "Warm light" &&
			p.Stock == 3 &&
			p.Status == domain.ProductStatusSold &&
			len(p.Images) == 2 && p.Images[0] == "products/first.png"
	})).Return(nil)
	s.users.On("GetUserByID", mock.Anything, s.seller.ID).Return(s.seller, nil)

	resp, err := s.svc.UpdateProduct(s.ctx, s.principal(s.seller), product.ID.Hex(),
		dto.ProductUpdateRequest{Price: "25", Status: "sold"}, []dto.FileUpload{pngUpload("c.png")})

	s.Require().NoError(err)
	s.Equal(float64(25), resp.Price)
	s.Equal("sold", resp.Status)
	s.Equal([]string{"light"}, resp.Tags)
	s.Equal([]string{dto.EventProductUpdated}, s.publisher.eventTypes())
	s.products.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) Test_OwnerDelete() {
	product := s.ownedProduct()
	s.products.On("GetProductByID", mock.Anything, product.ID.Hex()).Return(product, nil)
	s.products.On("DeleteProduct", mock.Anything, product.ID).Return(nil)

	err := s.svc.DeleteProduct(s.ctx, s.principal(s.seller), product.ID.Hex())

	s.Require().NoError(err)
	s.Equal([]string{"products/first.png"}, s.store.deleted)
	s.Equal([]string{dto.EventProductDeleted}, s.publisher.eventTypes())
}

func (s *ProductServiceTestSuite) Test_ListEnrichesWithSeller() {
	now := time.Now().UTC()
	orphanSeller := primitive.NewObjectID()
	products := []domain.Product{
		{ID: primitive.NewObjectID(), Title: "A", Status: domain.ProductStatusActive, SellerID: s.seller.ID, CreatedAt: now},
		{ID: primitive.NewObjectID(), Title: "B", Status: domain.ProductStatusActive, SellerID: s.seller.ID, CreatedAt: now},
		{ID: primitive.NewObjectID(), Title: "C", Status: domain.ProductStatusActive, SellerID: orphanSeller, CreatedAt: now},
	}
	filter := pkgdto.Filter{Page: 1, Limit: 3, Category: "all"}
	s.products.On("GetProducts", mock.Anything, filter).Return(products, int64(7), nil)
	s.users.On("GetUsersByIDs", mock.Anything, []primitive.ObjectID{s.seller.ID, orphanSeller}).
		Return(map[primitive.ObjectID]domain.User{s.seller.ID: s.seller}, nil)

	resp, err := s.svc.GetProducts(s.ctx, filter)

	s.Require().NoError(err)
	s.Equal(int64(7), resp.Total)
	s.Equal(int64(3), resp.TotalPages)
	s.Equal(1, resp.CurrentPage)
	s.Require().Len(resp.Products, 3)
	s.Equal("jane@example.com", resp.Products[0].Seller.Email)
	s.Equal(s.seller.ID.Hex(), resp.Products[1].Seller.ID)
	s.Nil(resp.Products[2].Seller)
}

func (s *ProductServiceTestSuite) Test_ListPageOutOfRange() {
	filter := pkgdto.Filter{Page: 5, Limit: 12}
	s.products.On("GetProducts", mock.Anything, filter).Return([]domain.Product{}, int64(3), nil)
	s.users.On("GetUsersByIDs", mock.Anything, []primitive.ObjectID{}).Return(map[primitive.ObjectID]domain.User{}, nil)

	resp, err := s.svc.GetProducts(s.ctx, filter)

	s.Require().NoError(err)
	s.Empty(resp.Products)
	s.NotNil(resp.Products)
	s.Equal(int64(3), resp.Total)
	s.Equal(int64(1), resp.TotalPages)
	s.Equal(5, resp.CurrentPage)
}

func (s *ProductServiceTestSuite) Test_ListAppliesDefaults() {
	s.products.On("GetProducts", mock.Anything, pkgdto.Filter{Page: 1, Limit: pkgdto.DefaultPageLimit}).Return([]domain.Product{}, int64(0), nil)
	s.users.On("GetUsersByIDs", mock.Anything, []primitive.ObjectID{}).Return(map[primitive.ObjectID]domain.User{}, nil)

	resp, err := s.svc.GetProducts(s.ctx, pkgdto.Filter{})

	s.Require().NoError(err)
	s.Equal(int64(0), resp.TotalPages)
	s.Equal(1, resp.CurrentPage)
}

func (s *ProductServiceTestSuite) Test_SellerProductsIncludeAllStatuses() {
	product := s.ownedProduct()
	sold := s.ownedProduct()
	sold.Status = domain.ProductStatusSold
	s.products.On("GetProductsBySeller", mock.Anything, s.seller.ID).Return([]domain.Product{product, sold}, nil)
	s.users.On("GetUserByID", mock.Anything, s.seller.ID).Return(s.seller, nil)

	resp, err := s.svc.GetSellerProducts(s.ctx, s.principal(s.seller))

	s.Require().NoError(err)
	s.Len(resp, 2)
	s.Equal("sold", resp[1].Status)
}

func (s *ProductServiceTestSuite) Test_SellerProductsWithMissingAccount() {
	product := s.ownedProduct()
	s.products.On("GetProductsBySeller", mock.Anything, s.seller.ID).Return([]domain.Product{product}, nil)
	s.users.On("GetUserByID", mock.Anything, s.seller.ID).Return(domain.User{}, errs.ErrAccountNotFound)

	resp, err := s.svc.GetSellerProducts(s.ctx, s.principal(s.seller))

	s.Require().NoError(err)
	s.Require().Len(resp, 1)
	s.Nil(resp[0].Seller)
}

func (s *ProductServiceTestSuite) Test_SellerProductsUserLookupFails() {
	s.products.On("GetProductsBySeller", mock.Anything, s.seller.ID).Return([]domain.Product{s.ownedProduct()}, nil)
	s.users.On("GetUserByID", mock.Anything, s.seller.ID).Return(domain.User{}, errs.ErrInternalServer)

	_, err := s.svc.GetSellerProducts(s.ctx, s.principal(s.seller))

	s.ErrorIs(err, errs.ErrInternalServer)
}

func (s *ProductServiceTestSuite) Test_SearchUnavailableWithoutMirror() {
	_, err := s.svc.SearchProducts(s.ctx, pkgdto.Filter{Q: "lamp"})
	s.ErrorIs(err, errs.ErrSearchUnavailable)
}

func (s *ProductServiceTestSuite) Test_SearchUsesMirror() {
	search := new(mockSearchRepository)
	s.svc = CreateProductService(s.products, s.users, s.profiles, search, s.store, s.publisher, s.config)
	search.On("SearchProducts", mock.Anything, pkgdto.Filter{Q: "lamp", Page: 1, Limit: 12}).
		Return([]dto.ProductDocument{{ID: "1", Title: "Lamp"}}, int64(1), nil)

	resp, err := s.svc.SearchProducts(s.ctx, pkgdto.Filter{Q: "lamp"})

	s.Require().NoError(err)
	s.Equal(int64(1), resp.TotalPages)
	s.Equal("Lamp", resp.Products[0].Title)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
