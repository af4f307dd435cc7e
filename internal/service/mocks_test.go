package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"atelier/internal/mail"
	"atelier/internal/model"
	"atelier/internal/repository"
	"atelier/internal/storage"
)

// MockTaxonomyRepository is a mock implementation of TaxonomyRepository.
type MockTaxonomyRepository struct {
	mock.Mock
}

func (m *MockTaxonomyRepository) Create(ctx context.Context, kind model.TaxonomyKind, entry *model.Taxonomy) error {
	args := m.Called(ctx, kind, entry)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) ExistsByName(ctx context.Context, kind model.TaxonomyKind, name string) (bool, error) {
	args := m.Called(ctx, kind, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaxonomyRepository) ExistsByFullname(ctx context.Context, kind model.TaxonomyKind, fullname string) (bool, error) {
	args := m.Called(ctx, kind, fullname)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaxonomyRepository) ExistsByID(ctx context.Context, kind model.TaxonomyKind, id uint) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaxonomyRepository) FindByName(ctx context.Context, kind model.TaxonomyKind, name string) (*model.Taxonomy, error) {
	args := m.Called(ctx, kind, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Taxonomy), args.Error(1)
}

func (m *MockTaxonomyRepository) List(ctx context.Context, kind model.TaxonomyKind) ([]model.Taxonomy, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Taxonomy), args.Error(1)
}

// WithTransaction runs fn against the mock itself.
func (m *MockTaxonomyRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.TaxonomyRepository) error) error {
	return fn(ctx, m)
}

// MockPhotoRepository is a mock implementation of PhotoRepository.
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo *model.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) Update(ctx context.Context, photo *model.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ExistsByFilename(ctx context.Context, filename string) (bool, error) {
	args := m.Called(ctx, filename)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhotoRepository) ListFilenames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPhotoRepository) ListSlideshow(ctx context.Context) ([]model.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListByCategoryPage(ctx context.Context, categoryID uint, offset, limit int) ([]model.Photo, error) {
	args := m.Called(ctx, categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListByCategoryAndSubcategory(ctx context.Context, categoryID, subcategoryID uint) ([]model.Photo, error) {
	args := m.Called(ctx, categoryID, subcategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListAllWithTaxonomy(ctx context.Context) ([]model.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

// WithTransaction runs fn against the mock itself.
func (m *MockPhotoRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.PhotoRepository) error) error {
	return fn(ctx, m)
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) ListActiveByDate(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) ListWithCounts(ctx context.Context) ([]model.EventWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EventWithCount), args.Error(1)
}

func (m *MockEventRepository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// WithTransaction runs fn against the mock itself.
func (m *MockEventRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.EventRepository) error) error {
	return fn(ctx, m)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockLister is a mock implementation of storage.Lister.
type MockLister struct {
	mock.Mock
}

func (m *MockLister) ListImages(ctx context.Context) ([]storage.File, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.File), args.Error(1)
}

// MockDispatcher is a mock implementation of mail.Dispatcher.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) DispatchContact(ctx context.Context, msg mail.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func uintPtr(v uint) *uint {
	return &v
}
