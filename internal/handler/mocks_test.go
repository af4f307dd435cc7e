package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"atelier/internal/model"
	"atelier/internal/service"
	"atelier/internal/storage"
)

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) ListSlideshow(ctx context.Context) ([]model.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoService) ListByCategory(ctx context.Context, categorySlug, subcategorySlug string, page int) (*service.GalleryPage, error) {
	args := m.Called(ctx, categorySlug, subcategorySlug, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GalleryPage), args.Error(1)
}

func (m *MockPhotoService) RegisterUnlisted(ctx context.Context, filename string, refs model.TaxonomyRefs, flags model.PhotoFlags) (*model.Photo, error) {
	args := m.Called(ctx, filename, refs, flags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockPhotoService) Update(ctx context.Context, id uint, flags model.PhotoFlags, refs model.TaxonomyRefs) (*model.Photo, error) {
	args := m.Called(ctx, id, flags, refs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockPhotoService) Get(ctx context.Context, id uint) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockPhotoService) ListAllAdmin(ctx context.Context) ([]service.AdminPhoto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AdminPhoto), args.Error(1)
}

func (m *MockPhotoService) ListUnregistered(ctx context.Context) ([]storage.File, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.File), args.Error(1)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ListPublic(ctx context.Context) ([]service.EventView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.EventView), args.Error(1)
}

func (m *MockEventService) ListAdmin(ctx context.Context) ([]service.EventView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.EventView), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) RegisterCustomer(ctx context.Context, eventID uint, in service.CustomerInput) (*model.Customer, error) {
	args := m.Called(ctx, eventID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, in service.EventInput) (*model.Event, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, id uint, in service.EventInput) (*model.Event, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, form service.ContactForm) {
	m.Called(ctx, form)
}

func (m *MockContactService) SubmitForEvent(ctx context.Context, event *model.Event, form service.ContactForm) {
	m.Called(ctx, event, form)
}

type MockTaxonomyService struct {
	mock.Mock
}

func (m *MockTaxonomyService) Register(ctx context.Context, kind model.TaxonomyKind, fullname string) (*model.Taxonomy, error) {
	args := m.Called(ctx, kind, fullname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Taxonomy), args.Error(1)
}

func (m *MockTaxonomyService) List(ctx context.Context, kind model.TaxonomyKind) ([]model.Taxonomy, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Taxonomy), args.Error(1)
}

func (m *MockTaxonomyService) FindBySlug(ctx context.Context, kind model.TaxonomyKind, name string) (*model.Taxonomy, error) {
	args := m.Called(ctx, kind, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Taxonomy), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, session *model.Session) (*model.User, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) RegisterAdmin(ctx context.Context, email, username, password string) (*model.User, error) {
	args := m.Called(ctx, email, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
