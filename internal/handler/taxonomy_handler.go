package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"atelier/internal/model"
	"atelier/internal/service"
)

// TaxonomyHandler manages categories, subcategories and collections.
type TaxonomyHandler struct {
	taxonomyService service.TaxonomyService
}

// NewTaxonomyHandler creates a new taxonomy handler.
func NewTaxonomyHandler(taxonomyService service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// TaxonomyRequest registers a taxonomy entry.
type TaxonomyRequest struct {
	Fullname string `json:"fullname" form:"fullname" validate:"required,max=64"`
}

// TaxonomyListResponse lists taxonomy entries.
type TaxonomyListResponse struct {
	Items []model.Taxonomy `json:"items"`
}

// List godoc
// @Summary List entries of a taxonomy
// @Tags admin-taxonomy
// @Produce json
// @Security BearerAuth
// @Param kind path string true "categories, subcategories or collections"
// @Success 200 {object} TaxonomyListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/taxonomy/{kind} [get]
func (h *TaxonomyHandler) List(c echo.Context) error {
	items, err := h.taxonomyService.List(c.Request().Context(), model.TaxonomyKind(c.Param("kind")))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, TaxonomyListResponse{Items: items})
}

// Register godoc
// @Summary Register a taxonomy entry with a derived slug
// @Tags admin-taxonomy
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param kind path string true "categories, subcategories or collections"
// @Param request body TaxonomyRequest true "Entry"
// @Success 201 {object} model.Taxonomy
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/taxonomy/{kind} [post]
func (h *TaxonomyHandler) Register(c echo.Context) error {
	var req TaxonomyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	entry, err := h.taxonomyService.Register(c.Request().Context(), model.TaxonomyKind(c.Param("kind")), req.Fullname)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}
