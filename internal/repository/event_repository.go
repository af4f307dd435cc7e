package repository

import (
	"context"

	"gorm.io/gorm"

	"atelier/internal/model"
)

const registeredCountSelect = "events.*, (SELECT COUNT(*) FROM customers WHERE customers.event_id = events.id) AS registered"

// EventRepository defines event and customer persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	ListActiveByDate(ctx context.Context) ([]model.Event, error)
	ListWithCounts(ctx context.Context) ([]model.EventWithCount, error)
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo EventRepository) error) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event.
func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Update saves every editable column of an event, including zero values.
func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Model(event).
		Select("name", "description", "location", "date", "time", "capacity", "active").
		Updates(event).Error
}

// FindByID finds an event by ID.
func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListActiveByDate lists active events, soonest first.
func (r *eventRepository) ListActiveByDate(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("date ASC").Order("id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListWithCounts lists every event, active first, with its number of registrations.
func (r *eventRepository) ListWithCounts(ctx context.Context) ([]model.EventWithCount, error) {
	var events []model.EventWithCount
	if err := r.db.WithContext(ctx).Model(&model.Event{}).
		Select(registeredCountSelect).
		Order("active DESC").Order("date ASC").Order("id").
		Scan(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// CreateCustomer stores a registration.
func (r *eventRepository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Omit("Event").Create(customer).Error
}

// WithTransaction executes a function within a database transaction.
func (r *eventRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo EventRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &eventRepository{db: tx})
	})
}
