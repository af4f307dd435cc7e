package repository

import (
	"context"

	"gorm.io/gorm"

	"atelier/internal/model"
)

// PhotoRepository defines photo persistence operations.
type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
	Update(ctx context.Context, photo *model.Photo) error
	FindByID(ctx context.Context, id uint) (*model.Photo, error)
	ExistsByFilename(ctx context.Context, filename string) (bool, error)
	ListFilenames(ctx context.Context) ([]string, error)
	ListSlideshow(ctx context.Context) ([]model.Photo, error)
	ListByCategoryPage(ctx context.Context, categoryID uint, offset, limit int) ([]model.Photo, error)
	ListByCategoryAndSubcategory(ctx context.Context, categoryID, subcategoryID uint) ([]model.Photo, error)
	ListAllWithTaxonomy(ctx context.Context) ([]model.Photo, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PhotoRepository) error) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// Create creates a new photo.
func (r *photoRepository) Create(ctx context.Context, photo *model.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

// Update saves flags and taxonomy references of an existing photo.
func (r *photoRepository) Update(ctx context.Context, photo *model.Photo) error {
	return r.db.WithContext(ctx).Model(photo).
		Select("slideshow", "active", "featured", "category_id", "subcategory_id", "collection_id").
		Updates(photo).Error
}

// FindByID finds a photo by ID.
func (r *photoRepository) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// ExistsByFilename checks whether a file is already cataloged.
func (r *photoRepository) ExistsByFilename(ctx context.Context, filename string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Photo{}).Where("filename = ?", filename).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFilenames returns the filename of every cataloged photo.
func (r *photoRepository) ListFilenames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&model.Photo{}).Pluck("filename", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// ListSlideshow lists photos flagged for the home page slideshow.
func (r *photoRepository) ListSlideshow(ctx context.Context) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.WithContext(ctx).Where("slideshow = ?", true).Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// ListByCategoryPage returns one page of a category's photos regardless of the active flag.
func (r *photoRepository) ListByCategoryPage(ctx context.Context, categoryID uint, offset, limit int) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.WithContext(ctx).Preload("Subcategory").
		Where("category_id = ?", categoryID).
		Order("id").Offset(offset).Limit(limit).
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// ListByCategoryAndSubcategory returns every photo matching both references.
func (r *photoRepository) ListByCategoryAndSubcategory(ctx context.Context, categoryID, subcategoryID uint) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.WithContext(ctx).Preload("Subcategory").
		Where("category_id = ? AND subcategory_id = ?", categoryID, subcategoryID).
		Order("id").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// ListAllWithTaxonomy lists every photo, active first, with taxonomy rows preloaded.
func (r *photoRepository) ListAllWithTaxonomy(ctx context.Context) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Subcategory").Preload("Collection").
		Order("active DESC").Order("id").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// WithTransaction executes a function within a database transaction.
func (r *photoRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PhotoRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &photoRepository{db: tx})
	})
}
