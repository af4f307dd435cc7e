package repository

import (
	"context"

	"gorm.io/gorm"

	"atelier/internal/model"
)

// TaxonomyRepository persists categories, subcategories and collections.
// Every method is scoped to one table by kind.
type TaxonomyRepository interface {
	Create(ctx context.Context, kind model.TaxonomyKind, entry *model.Taxonomy) error
	ExistsByName(ctx context.Context, kind model.TaxonomyKind, name string) (bool, error)
	ExistsByFullname(ctx context.Context, kind model.TaxonomyKind, fullname string) (bool, error)
	ExistsByID(ctx context.Context, kind model.TaxonomyKind, id uint) (bool, error)
	FindByName(ctx context.Context, kind model.TaxonomyKind, name string) (*model.Taxonomy, error)
	List(ctx context.Context, kind model.TaxonomyKind) ([]model.Taxonomy, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TaxonomyRepository) error) error
}

type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository creates a new taxonomy repository.
func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) table(ctx context.Context, kind model.TaxonomyKind) *gorm.DB {
	return r.db.WithContext(ctx).Table(string(kind))
}

// Create inserts a new row into the kind's table.
func (r *taxonomyRepository) Create(ctx context.Context, kind model.TaxonomyKind, entry *model.Taxonomy) error {
	return r.table(ctx, kind).Create(entry).Error
}

func (r *taxonomyRepository) exists(ctx context.Context, kind model.TaxonomyKind, column string, value interface{}) (bool, error) {
	var count int64
	if err := r.table(ctx, kind).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByName checks whether a slug is already used in the kind's table.
func (r *taxonomyRepository) ExistsByName(ctx context.Context, kind model.TaxonomyKind, name string) (bool, error) {
	return r.exists(ctx, kind, "name", name)
}

// ExistsByFullname checks whether a display name is already registered.
func (r *taxonomyRepository) ExistsByFullname(ctx context.Context, kind model.TaxonomyKind, fullname string) (bool, error) {
	return r.exists(ctx, kind, "fullname", fullname)
}

// ExistsByID checks whether a referenced row exists.
func (r *taxonomyRepository) ExistsByID(ctx context.Context, kind model.TaxonomyKind, id uint) (bool, error) {
	return r.exists(ctx, kind, "id", id)
}

// FindByName finds an entry by its slug.
func (r *taxonomyRepository) FindByName(ctx context.Context, kind model.TaxonomyKind, name string) (*model.Taxonomy, error) {
	var entry model.Taxonomy
	if err := r.table(ctx, kind).Where("name = ?", name).Take(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns every entry ordered by display name.
func (r *taxonomyRepository) List(ctx context.Context, kind model.TaxonomyKind) ([]model.Taxonomy, error) {
	var entries []model.Taxonomy
	if err := r.table(ctx, kind).Order("fullname").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// WithTransaction executes a function within a database transaction.
func (r *taxonomyRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TaxonomyRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &taxonomyRepository{db: tx})
	})
}
