package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"atelier/internal/errors"
	"atelier/internal/service"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// EventHandler serves public event pages and their administration.
type EventHandler struct {
	eventService   service.EventService
	contactService service.ContactService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, contactService service.ContactService) *EventHandler {
	return &EventHandler{eventService: eventService, contactService: contactService}
}

// EventForm creates or edits an event.
type EventForm struct {
	Name        string `json:"name" form:"name" validate:"required,min=3,max=64"`
	Description string `json:"description" form:"description"`
	Location    string `json:"location" form:"location" validate:"required,max=256"`
	Date        string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" form:"time" validate:"required,datetime=15:04"`
	Capacity    int    `json:"capacity" form:"capacity" validate:"required,min=1,max=50"`
	Active      *bool  `json:"active" form:"active"`
}

func (f EventForm) input() (service.EventInput, error) {
	date, err := time.Parse(dateLayout, f.Date)
	if err != nil {
		return service.EventInput{}, errors.NewValidationError("date", "datetime")
	}
	clock, err := time.Parse(timeLayout, f.Time)
	if err != nil {
		return service.EventInput{}, errors.NewValidationError("time", "datetime")
	}

	active := true
	if f.Active != nil {
		active = *f.Active
	}
	return service.EventInput{
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		Date:        date,
		Time:        time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute,
		Capacity:    f.Capacity,
		Active:      active,
	}, nil
}

// EventContactForm registers a visitor for an event.
type EventContactForm struct {
	Name      string `json:"name" form:"name" validate:"required,notblank,min=3,max=30"`
	Surname   string `json:"surname" form:"surname" validate:"required,notblank,min=3,max=30"`
	Email     string `json:"email" form:"email" validate:"required,max=64,email"`
	Telephone string `json:"telephone" form:"telephone" validate:"required,min=9,max=16"`
	Message   string `json:"message" form:"message"`
	Agree     bool   `json:"agree" form:"agree" validate:"required"`
}

// EventListResponse lists events.
type EventListResponse struct {
	Events []service.EventView `json:"events"`
}

// ListPublic godoc
// @Summary Upcoming active events
// @Tags events
// @Produce json
// @Success 200 {object} EventListResponse
// @Router /events [get]
func (h *EventHandler) ListPublic(c echo.Context) error {
	events, err := h.eventService.ListPublic(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, EventListResponse{Events: events})
}

// Get godoc
// @Summary Event detail
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// Apply godoc
// @Summary Register for an event
// @Tags events
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Event ID"
// @Param request body EventContactForm true "Registration"
// @Success 201 {object} model.Customer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id}/apply [post]
func (h *EventHandler) Apply(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var form EventContactForm
	if err := bind(c, &form); err != nil {
		return err
	}

	ctx := c.Request().Context()
	event, err := h.eventService.Get(ctx, id)
	if err != nil {
		return respondError(err)
	}

	contact := service.ContactForm{
		Name:      form.Name,
		Surname:   form.Surname,
		Email:     form.Email,
		Telephone: form.Telephone,
		Message:   form.Message,
	}
	customer, err := h.eventService.RegisterCustomer(ctx, id, service.CustomerInput{
		Name:    contact.FullName(),
		Email:   form.Email,
		Phone:   form.Telephone,
		Message: form.Message,
	})
	if err != nil {
		return respondError(err)
	}

	h.contactService.SubmitForEvent(ctx, event, contact)
	return c.JSON(http.StatusCreated, customer)
}

// ListAdmin godoc
// @Summary All events with remaining capacity
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} EventListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/events [get]
func (h *EventHandler) ListAdmin(c echo.Context) error {
	events, err := h.eventService.ListAdmin(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, EventListResponse{Events: events})
}

// Create godoc
// @Summary Create an event
// @Tags admin-events
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body EventForm true "Event"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var form EventForm
	if err := bind(c, &form); err != nil {
		return err
	}
	in, err := form.input()
	if err != nil {
		return respondError(err)
	}

	event, err := h.eventService.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

// AdminGet godoc
// @Summary Event for the edit form
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [get]
func (h *EventHandler) AdminGet(c echo.Context) error {
	return h.Get(c)
}

// Update godoc
// @Summary Edit an event
// @Tags admin-events
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body EventForm true "Event"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var form EventForm
	if err := bind(c, &form); err != nil {
		return err
	}
	in, err := form.input()
	if err != nil {
		return respondError(err)
	}

	event, err := h.eventService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, event)
}
