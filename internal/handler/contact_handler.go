package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"atelier/internal/service"
)

// ContactHandler accepts the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name      string `json:"name" form:"name" validate:"required,notblank,min=3,max=30"`
	Surname   string `json:"surname" form:"surname" validate:"required,notblank,min=3,max=30"`
	Email     string `json:"email" form:"email" validate:"required,max=64,email"`
	Telephone string `json:"telephone" form:"telephone" validate:"required,min=9,max=16"`
	Message   string `json:"message" form:"message" validate:"required,min=1"`
}

// Submit godoc
// @Summary Send the contact form
// @Description Mail delivery happens in the background, the response does not wait for it.
// @Tags contact
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body ContactRequest true "Contact form"
// @Success 202 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	h.contactService.Submit(c.Request().Context(), service.ContactForm{
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		Telephone: req.Telephone,
		Message:   req.Message,
	})
	return c.JSON(http.StatusAccepted, MessageResponse{Message: "message sent"})
}
