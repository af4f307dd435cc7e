package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"atelier/internal/model"
	"atelier/internal/service"
	"atelier/internal/storage"
)

// PhotoHandler manages the photo catalog.
type PhotoHandler struct {
	photoService service.PhotoService
}

// NewPhotoHandler creates a new photo handler.
func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// PhotoForm edits flags and taxonomy references. Omitted flags take their defaults.
type PhotoForm struct {
	CategoryID    *uint `json:"category_id" form:"category_id" validate:"omitempty,min=1"`
	SubcategoryID *uint `json:"subcategory_id" form:"subcategory_id" validate:"omitempty,min=1"`
	CollectionID  *uint `json:"collection_id" form:"collection_id" validate:"omitempty,min=1"`
	Slideshow     *bool `json:"slideshow" form:"slideshow"`
	Active        *bool `json:"active" form:"active"`
	Featured      *bool `json:"featured" form:"featured"`
}

// RegisterPhotoRequest catalogs a file found in storage.
type RegisterPhotoRequest struct {
	Filename string `json:"filename" form:"filename" validate:"required,max=64"`
	PhotoForm
}

func (f PhotoForm) flags() model.PhotoFlags {
	flags := model.DefaultPhotoFlags()
	if f.Slideshow != nil {
		flags.Slideshow = *f.Slideshow
	}
	if f.Active != nil {
		flags.Active = *f.Active
	}
	if f.Featured != nil {
		flags.Featured = *f.Featured
	}
	return flags
}

func (f PhotoForm) refs() model.TaxonomyRefs {
	return model.TaxonomyRefs{
		CategoryID:    f.CategoryID,
		SubcategoryID: f.SubcategoryID,
		CollectionID:  f.CollectionID,
	}
}

// PhotoListResponse lists catalog rows.
type PhotoListResponse struct {
	Photos []service.AdminPhoto `json:"photos"`
}

// UnregisteredResponse lists files missing from the catalog.
type UnregisteredResponse struct {
	Files []storage.File `json:"files"`
}

// List godoc
// @Summary Whole catalog, active photos first
// @Tags admin-gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PhotoListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/gallery [get]
func (h *PhotoHandler) List(c echo.Context) error {
	photos, err := h.photoService.ListAllAdmin(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, PhotoListResponse{Photos: photos})
}

// Unregistered godoc
// @Summary Image files in storage that are not cataloged yet
// @Tags admin-gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnregisteredResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/gallery/unregistered [get]
func (h *PhotoHandler) Unregistered(c echo.Context) error {
	files, err := h.photoService.ListUnregistered(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, UnregisteredResponse{Files: files})
}

// Register godoc
// @Summary Catalog an unregistered photo
// @Tags admin-gallery
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body RegisterPhotoRequest true "Photo"
// @Success 201 {object} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/gallery/photos [post]
func (h *PhotoHandler) Register(c echo.Context) error {
	var req RegisterPhotoRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	photo, err := h.photoService.RegisterUnlisted(c.Request().Context(), req.Filename, req.refs(), req.flags())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, photo)
}

// Get godoc
// @Summary Photo detail
// @Tags admin-gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} model.Photo
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/gallery/photos/{id} [get]
func (h *PhotoHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	photo, err := h.photoService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, photo)
}

// Update godoc
// @Summary Edit photo flags and taxonomy
// @Tags admin-gallery
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Param request body PhotoForm true "Photo"
// @Success 200 {object} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/gallery/photos/{id} [put]
func (h *PhotoHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var form PhotoForm
	if err := bind(c, &form); err != nil {
		return err
	}

	photo, err := h.photoService.Update(c.Request().Context(), id, form.flags(), form.refs())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, photo)
}
