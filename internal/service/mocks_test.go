package service

import (
	"context"
	"io"
	"sync"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[primitive.ObjectID]domain.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	return m.Called(ctx, data).Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepository) GetProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]domain.Product, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	return m.Called(ctx, data).Error(0)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepository) CountProductsBySeller(ctx context.Context) (map[primitive.ObjectID]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[primitive.ObjectID]int64), args.Error(1)
}

type mockSellerProfileRepository struct {
	mock.Mock
}

func (m *mockSellerProfileRepository) GetProfileByUserID(ctx context.Context, userID primitive.ObjectID) (domain.SellerProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.SellerProfile), args.Error(1)
}

func (m *mockSellerProfileRepository) SaveProfile(ctx context.Context, data domain.SellerProfile) (domain.SellerProfile, error) {
	args := m.Called(ctx, data)
	if fn, ok := args.Get(0).(func(context.Context, domain.SellerProfile) domain.SellerProfile); ok {
		return fn(ctx, data), args.Error(1)
	}
	return args.Get(0).(domain.SellerProfile), args.Error(1)
}

func (m *mockSellerProfileRepository) ListProfileUserIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *mockSellerProfileRepository) SetTotalProducts(ctx context.Context, totals map[primitive.ObjectID]int64) error {
	return m.Called(ctx, totals).Error(0)
}

type mockSearchRepository struct {
	mock.Mock
}

func (m *mockSearchRepository) IndexProduct(ctx context.Context, doc dto.ProductDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *mockSearchRepository) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSearchRepository) SearchProducts(ctx context.Context, filter pkgdto.Filter) ([]dto.ProductDocument, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.ProductDocument), args.Get(1).(int64), args.Error(2)
}

// recordingPublisher keeps every published message.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []dto.KafkaMessage
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return p.err
}

func (p *recordingPublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.messages))
	for _, msg := range p.messages {
		types = append(types, msg.EventType)
	}
	return types
}

// memoryStore is an in-memory ObjectStore.
type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}}
}

func (s *memoryStore) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *memoryStore) URL(key string) string {
	return "/uploads/" + key
}

type recordingNotifier struct {
	statuses []string
}

func (n *recordingNotifier) NotifyProfileStatus(ctx context.Context, to, name, status, reason string) error {
	n.statuses = append(n.statuses, status)
	return nil
}
