package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"atelier/internal/cache"
	apperrors "atelier/internal/errors"
	"atelier/internal/model"
	"atelier/internal/repository"
)

const publicEventsCacheTTL = time.Minute

// EventInput carries the editable fields of an event.
type EventInput struct {
	Name        string
	Description string
	Location    string
	Date        time.Time
	Time        time.Duration
	Capacity    int
	Active      bool
}

// EventView is an event with its remaining capacity. Free is nil on the public listing.
type EventView struct {
	model.Event
	Registered *int64 `json:"registered,omitempty"`
	Free       *int64 `json:"free"`
}

// CustomerInput is a registration for an event.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// EventService handles the event roster.
type EventService interface {
	ListPublic(ctx context.Context) ([]EventView, error)
	ListAdmin(ctx context.Context) ([]EventView, error)
	Get(ctx context.Context, id uint) (*model.Event, error)
	RegisterCustomer(ctx context.Context, eventID uint, in CustomerInput) (*model.Customer, error)
	Create(ctx context.Context, in EventInput) (*model.Event, error)
	Update(ctx context.Context, id uint, in EventInput) (*model.Event, error)
}

type eventService struct {
	repo  repository.EventRepository
	cache *cache.Client
}

// NewEventService creates a new event service.
func NewEventService(repo repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{repo: repo, cache: cache}
}

// ListPublic returns active events by date ascending.
func (s *eventService) ListPublic(ctx context.Context) ([]EventView, error) {
	var cached []EventView
	if s.cache.GetJSON(ctx, cache.KeyPublicEvents, &cached) {
		return cached, nil
	}

	events, err := s.repo.ListActiveByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, EventView{Event: e})
	}
	s.cache.SetJSON(ctx, cache.KeyPublicEvents, out, publicEventsCacheTTL)
	return out, nil
}

// ListAdmin returns every event, active first, with free = capacity - registered.
// Free is not clamped, an overbooked event reports a negative value.
func (s *eventService) ListAdmin(ctx context.Context) ([]EventView, error) {
	events, err := s.repo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]EventView, 0, len(events))
	for _, e := range events {
		registered := e.Registered
		free := int64(e.Capacity) - registered
		out = append(out, EventView{Event: e.Event, Registered: &registered, Free: &free})
	}
	return out, nil
}

// Get returns an event by ID.
func (s *eventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateEventErr(err)
	}
	return event, nil
}

// RegisterCustomer signs a customer up for an event. Capacity is not checked here.
func (s *eventService) RegisterCustomer(ctx context.Context, eventID uint, in CustomerInput) (*model.Customer, error) {
	customer := &model.Customer{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: in.Message,
		EventID: eventID,
	}

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.EventRepository) error {
		if _, err := repo.FindByID(ctx, eventID); err != nil {
			return err
		}
		return repo.CreateCustomer(ctx, customer)
	})
	if err != nil {
		return nil, translateEventErr(err)
	}

	log.Info().Uint("event_id", eventID).Uint("customer_id", customer.ID).Msg("customer registered")
	return customer, nil
}

// Create adds a new event.
func (s *eventService) Create(ctx context.Context, in EventInput) (*model.Event, error) {
	if err := validateEvent(in); err != nil {
		return nil, err
	}

	event := &model.Event{}
	in.apply(event)

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.EventRepository) error {
		return repo.Create(ctx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.KeyPublicEvents)
	log.Info().Uint("id", event.ID).Str("name", event.Name).Msg("event created")
	return event, nil
}

// Update replaces the editable fields of an event.
func (s *eventService) Update(ctx context.Context, id uint, in EventInput) (*model.Event, error) {
	if err := validateEvent(in); err != nil {
		return nil, err
	}

	var updated *model.Event
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.EventRepository) error {
		event, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		in.apply(event)
		if err := repo.Update(ctx, event); err != nil {
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, translateEventErr(err)
	}

	_ = s.cache.Delete(ctx, cache.KeyPublicEvents)
	log.Info().Uint("id", id).Msg("event updated")
	return updated, nil
}

func (in EventInput) apply(event *model.Event) {
	event.Name = strings.TrimSpace(in.Name)
	event.Description = in.Description
	event.Location = strings.TrimSpace(in.Location)
	event.Date = datatypes.Date(in.Date)
	event.Time = datatypes.NewTime(int(in.Time.Hours()), int(in.Time.Minutes())%60, 0, 0)
	event.Capacity = in.Capacity
	event.Active = in.Active
}

func validateEvent(in EventInput) error {
	fields := map[string]string{}

	name := utf8.RuneCountInString(strings.TrimSpace(in.Name))
	switch {
	case name == 0:
		fields["name"] = "required"
	case name < 3 || name > 64:
		fields["name"] = "length"
	}

	location := strings.TrimSpace(in.Location)
	switch {
	case location == "":
		fields["location"] = "required"
	case utf8.RuneCountInString(location) > 256:
		fields["location"] = "max"
	}

	if in.Date.IsZero() {
		fields["date"] = "required"
	}
	if in.Time < 0 || in.Time >= 24*time.Hour {
		fields["time"] = "range"
	}
	if in.Capacity < model.MinEventCapacity || in.Capacity > model.MaxEventCapacity {
		fields["capacity"] = "range"
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

func translateEventErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("event: %w", apperrors.ErrNotFound)
	default:
		return err
	}
}
