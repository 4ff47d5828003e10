package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/repository"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const productImagePrefix = "products"

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	profileRepo repository.SellerProfileRepository
	searchRepo  repository.SearchRepository
	store       ObjectStore
	publisher   EventPublisher
	config      config.Config
}

// CreateProductService wires the catalog. searchRepo may be nil when no
// search mirror is configured.
func CreateProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository, profileRepo repository.SellerProfileRepository,
	searchRepo repository.SearchRepository, store ObjectStore, publisher EventPublisher, config config.Config) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		searchRepo:  searchRepo,
		store:       store,
		publisher:   publisher,
		config:      config,
	}
}

func (s *ProductServiceImpl) imagePolicy() uploadPolicy {
	return uploadPolicy{
		maxFiles: s.config.UploadConfig.MaxProductFiles,
		maxSize:  s.config.UploadConfig.MaxFileSize,
		allowed:  imageTypes,
	}
}

func (s *ProductServiceImpl) project(p domain.Product, seller *domain.User) dto.ProductResponse {
	resp := dto.NewProductResponse(p, seller)

	images := make([]string, 0, len(p.Images))
	for _, key := range p.Images {
		images = append(images, s.store.URL(key))
	}
	resp.Images = images

	return resp
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductListResponse, err error) {
	filter = filter.Normalize()

	products, total, err := s.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	sellerIDs := make([]primitive.ObjectID, 0, len(products))
	seen := make(map[primitive.ObjectID]bool, len(products))
	for _, p := range products {
		if !seen[p.SellerID] {
			seen[p.SellerID] = true
			sellerIDs = append(sellerIDs, p.SellerID)
		}
	}

	sellers, err := s.userRepo.GetUsersByIDs(ctx, sellerIDs)
	if err != nil {
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		var seller *domain.User
		if user, ok := sellers[p.SellerID]; ok {
			seller = &user
		}
		items = append(items, s.project(p, seller))
	}

	return dto.ProductListResponse{
		Products:    items,
		TotalPages:  filter.TotalPages(total),
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return s.projectWithSeller(ctx, product)
}

func (s *ProductServiceImpl) projectWithSeller(ctx context.Context, product domain.Product) (resp dto.ProductResponse, err error) {
	seller, err := s.userRepo.GetUserByID(ctx, product.SellerID)
	if errors.Is(err, errs.ErrAccountNotFound) {
		return s.project(product, nil), nil
	}
	if err != nil {
		return
	}

	return s.project(product, &seller), nil
}

func (s *ProductServiceImpl) GetSellerProducts(ctx context.Context, principal domain.Principal) (resp []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProductsBySeller(ctx, principal.ID)
	if err != nil {
		return
	}

	var sellerRef *domain.User
	seller, err := s.userRepo.GetUserByID(ctx, principal.ID)
	switch {
	case err == nil:
		sellerRef = &seller
	case !errors.Is(err, errs.ErrAccountNotFound):
		return
	}

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, s.project(p, sellerRef))
	}

	return resp, nil
}

func (s *ProductServiceImpl) SearchProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductSearchResponse, err error) {
	if s.searchRepo == nil {
		return resp, errs.ErrSearchUnavailable
	}

	filter = filter.Normalize()
	docs, total, err := s.searchRepo.SearchProducts(ctx, filter)
	if err != nil {
		return
	}

	return dto.ProductSearchResponse{
		Products:    docs,
		TotalPages:  filter.TotalPages(total),
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

// requireApprovedSeller is the server-side approval gate for catalog writes.
func (s *ProductServiceImpl) requireApprovedSeller(ctx context.Context, principal domain.Principal) error {
	if !s.config.RequireSellerApproval {
		return nil
	}

	profile, err := s.profileRepo.GetProfileByUserID(ctx, principal.ID)
	if errors.Is(err, errs.ErrProfileNotFound) {
		return errs.ErrSellerNotApproved
	}
	if err != nil {
		return err
	}

	if !profile.CanSell() {
		return errs.ErrSellerNotApproved
	}

	return nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 {
		return 0, errs.NewValidationError("price", "Price must be a non-negative number")
	}

	return price, nil
}

func parseStock(raw string) (int64, error) {
	stock, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || stock < 0 {
		return 0, errs.NewValidationError("stock", "Stock must be a non-negative whole number")
	}

	return stock, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, principal domain.Principal, req dto.ProductRequest, images []dto.FileUpload) (resp dto.ProductResponse, err error) {
	if err = domain.AuthorizeCreate(principal); err != nil {
		return
	}

	if err = s.requireApprovedSeller(ctx, principal); err != nil {
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return
	}

	stock := int64(domain.DefaultProductStock)
	if strings.TrimSpace(req.Stock) != "" {
		if stock, err = parseStock(req.Stock); err != nil {
			return
		}
	}

	stored, err := storeUploads(ctx, s.store, productImagePrefix, images, s.imagePolicy())
	if err != nil {
		return
	}

	now := time.Now().UTC()
	product := domain.Product{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       price,
		Category:    strings.TrimSpace(req.Category),
		Stock:       stock,
		Images:      keysOf(stored),
		Tags:        dto.SplitTags(req.Tags),
		Status:      domain.ProductStatusActive,
		SellerID:    principal.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	product.ID, err = s.productRepo.AddProduct(ctx, product)
	if err != nil {
		removeUploads(ctx, s.store, product.Images)
		return
	}

	resp, err = s.projectWithSeller(ctx, product)
	if err != nil {
		return
	}

	s.publish(ctx, product.ID.Hex(), dto.KafkaMessage{EventType: dto.EventProductCreated, Data: resp})

	return resp, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, principal domain.Principal, id string, req dto.ProductUpdateRequest, images []dto.FileUpload) (resp dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if err = product.AuthorizeMutation(principal.ID); err != nil {
		return
	}

	if err = s.requireApprovedSeller(ctx, principal); err != nil {
		return
	}

	if err = applyProductUpdate(&product, req); err != nil {
		return
	}

	stored, err := storeUploads(ctx, s.store, productImagePrefix, images, s.imagePolicy())
	if err != nil {
		return
	}
	product.Images = append(product.Images, keysOf(stored)...)
	product.UpdatedAt = time.Now().UTC()

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		removeUploads(ctx, s.store, keysOf(stored))
		return
	}

	resp, err = s.projectWithSeller(ctx, product)
	if err != nil {
		return
	}

	s.publish(ctx, product.ID.Hex(), dto.KafkaMessage{EventType: dto.EventProductUpdated, Data: resp})

	return resp, nil
}

// applyProductUpdate changes only the fields present in req.
func applyProductUpdate(product *domain.Product, req dto.ProductUpdateRequest) error {
	if title := strings.TrimSpace(req.Title); title != "" {
		product.Title = title
	}

	if description := strings.TrimSpace(req.Description); description != "" {
		product.Description = description
	}

	if category := strings.TrimSpace(req.Category); category != "" {
		product.Category = category
	}

	if strings.TrimSpace(req.Price) != "" {
		price, err := parsePrice(req.Price)
		if err != nil {
			return err
		}
		product.Price = price
	}

	if strings.TrimSpace(req.Stock) != "" {
		stock, err := parseStock(req.Stock)
		if err != nil {
			return err
		}
		product.Stock = stock
	}

	if strings.TrimSpace(req.Tags) != "" {
		product.Tags = dto.SplitTags(req.Tags)
	}

	if req.Status != "" {
		status := domain.ProductStatus(req.Status)
		if !status.IsValid() {
			return errs.NewValidationError("status", "Status must be one of: active, inactive, sold")
		}
		product.Status = status
	}

	return nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, principal domain.Principal, id string) (err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if err = product.AuthorizeMutation(principal.ID); err != nil {
		return
	}

	if err = s.productRepo.DeleteProduct(ctx, product.ID); err != nil {
		return
	}

	removeUploads(ctx, s.store, product.Images)
	s.publish(ctx, product.ID.Hex(), dto.KafkaMessage{EventType: dto.EventProductDeleted, Data: dto.ProductDeleted{ID: product.ID.Hex()}})

	return nil
}

// publish never fails the caller; the write already happened.
func (s *ProductServiceImpl) publish(ctx context.Context, key string, msg dto.KafkaMessage) {
	if err := s.publisher.Publish(ctx, key, msg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publish").Str("event_type", msg.EventType).Msg("")
	}
}
