package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"atelier/internal/errors"
	"atelier/internal/model"
	"atelier/internal/service"
)

// GalleryHandler serves the public gallery.
type GalleryHandler struct {
	photoService service.PhotoService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(photoService service.PhotoService) *GalleryHandler {
	return &GalleryHandler{photoService: photoService}
}

// SlideshowResponse lists the slideshow photos.
type SlideshowResponse struct {
	Photos []model.Photo `json:"photos"`
}

// Slideshow godoc
// @Summary Slideshow photos for the home page
// @Tags gallery
// @Produce json
// @Success 200 {object} SlideshowResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /slideshow [get]
func (h *GalleryHandler) Slideshow(c echo.Context) error {
	photos, err := h.photoService.ListSlideshow(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SlideshowResponse{Photos: photos})
}

// Category godoc
// @Summary Gallery of a category
// @Description With two segments the second is a page number when numeric, otherwise a subcategory slug.
// @Description With three segments the second is always a subcategory slug.
// @Tags gallery
// @Produce json
// @Param cat path string true "Category slug"
// @Param sub path string false "Page number or subcategory slug"
// @Param page path int false "Page number"
// @Success 200 {object} service.GalleryPage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /gallery/{cat} [get]
// @Router /gallery/{cat}/{sub} [get]
// @Router /gallery/{cat}/{sub}/{page} [get]
func (h *GalleryHandler) Category(c echo.Context) error {
	var (
		subcategory string
		page        = 1
	)

	sub, raw := c.Param("sub"), c.Param("page")
	switch {
	case raw != "":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(errors.NewValidationError("page", "numeric"))
		}
		subcategory, page = sub, n
	case sub != "":
		if n, err := strconv.Atoi(sub); err == nil {
			page = n
		} else {
			subcategory = sub
		}
	}
	if page < 1 {
		return respondError(errors.NewValidationError("page", "min"))
	}

	result, err := h.photoService.ListByCategory(c.Request().Context(), c.Param("cat"), subcategory, page)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, result)
}
