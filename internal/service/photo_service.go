package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"atelier/internal/cache"
	"atelier/internal/db"
	apperrors "atelier/internal/errors"
	"atelier/internal/model"
	"atelier/internal/repository"
	"atelier/internal/storage"
)

const slideshowCacheTTL = 5 * time.Minute

// GalleryPhoto is a publicly visible photo.
type GalleryPhoto struct {
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	Featured bool   `json:"featured"`
}

// Facet is a subcategory link in the gallery sidebar.
type Facet struct {
	Name     string `json:"name"`
	Fullname string `json:"fullname"`
}

// GalleryPage is the view model of a gallery listing.
type GalleryPage struct {
	Title         string          `json:"title"`
	Category      model.Taxonomy  `json:"category"`
	Subcategory   *model.Taxonomy `json:"subcategory,omitempty"`
	Page          int             `json:"page,omitempty"`
	PageSize      int             `json:"page_size,omitempty"`
	Photos        []GalleryPhoto  `json:"photos"`
	Subcategories []Facet         `json:"subcategories"`
}

// AdminPhoto is a catalog row with resolved taxonomy display names.
type AdminPhoto struct {
	ID          uint   `json:"id"`
	Filename    string `json:"filename"`
	Filepath    string `json:"filepath"`
	Active      bool   `json:"active"`
	Slideshow   bool   `json:"slideshow"`
	Featured    bool   `json:"featured"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Collection  string `json:"collection"`
}

// PhotoService handles the photo catalog.
type PhotoService interface {
	ListSlideshow(ctx context.Context) ([]model.Photo, error)
	ListByCategory(ctx context.Context, categorySlug, subcategorySlug string, page int) (*GalleryPage, error)
	RegisterUnlisted(ctx context.Context, filename string, refs model.TaxonomyRefs, flags model.PhotoFlags) (*model.Photo, error)
	Update(ctx context.Context, id uint, flags model.PhotoFlags, refs model.TaxonomyRefs) (*model.Photo, error)
	Get(ctx context.Context, id uint) (*model.Photo, error)
	ListAllAdmin(ctx context.Context) ([]AdminPhoto, error)
	ListUnregistered(ctx context.Context) ([]storage.File, error)
}

type photoService struct {
	repo         repository.PhotoRepository
	taxonomyRepo repository.TaxonomyRepository
	lister       storage.Lister
	cache        *cache.Client
	pageSize     int
}

// NewPhotoService creates a new photo service.
func NewPhotoService(
	repo repository.PhotoRepository,
	taxonomyRepo repository.TaxonomyRepository,
	lister storage.Lister,
	cache *cache.Client,
	pageSize int,
) PhotoService {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &photoService{
		repo:         repo,
		taxonomyRepo: taxonomyRepo,
		lister:       lister,
		cache:        cache,
		pageSize:     pageSize,
	}
}

// ListSlideshow returns every photo flagged for the slideshow.
func (s *photoService) ListSlideshow(ctx context.Context) ([]model.Photo, error) {
	var cached []model.Photo
	if s.cache.GetJSON(ctx, cache.KeySlideshow, &cached) {
		return cached, nil
	}

	photos, err := s.repo.ListSlideshow(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slideshow: %w", err)
	}
	s.cache.SetJSON(ctx, cache.KeySlideshow, photos, slideshowCacheTTL)
	return photos, nil
}

// ListByCategory builds a gallery listing. Without a subcategory one page is fetched
// and inactive photos are dropped afterwards, so a page may hold fewer than pageSize
// photos. The facet list is only built without a subcategory.
func (s *photoService) ListByCategory(ctx context.Context, categorySlug, subcategorySlug string, page int) (*GalleryPage, error) {
	category, err := s.resolve(ctx, model.KindCategory, categorySlug)
	if err != nil {
		return nil, err
	}

	result := &GalleryPage{
		Title:         category.Fullname,
		Category:      *category,
		Photos:        []GalleryPhoto{},
		Subcategories: []Facet{},
	}

	var photos []model.Photo
	if subcategorySlug != "" {
		subcategory, err := s.resolve(ctx, model.KindSubcategory, subcategorySlug)
		if err != nil {
			return nil, err
		}
		result.Subcategory = subcategory
		result.Title = category.Fullname + " - " + subcategory.Fullname

		photos, err = s.repo.ListByCategoryAndSubcategory(ctx, category.ID, subcategory.ID)
		if err != nil {
			return nil, fmt.Errorf("list gallery: %w", err)
		}
	} else {
		if page < 1 {
			page = 1
		}
		result.Page = page
		result.PageSize = s.pageSize

		photos, err = s.repo.ListByCategoryPage(ctx, category.ID, (page-1)*s.pageSize, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("list gallery: %w", err)
		}
	}

	seen := make(map[uint]bool)
	for _, p := range photos {
		if !p.Active {
			continue
		}
		result.Photos = append(result.Photos, GalleryPhoto{
			Filename: p.Filename,
			Filepath: p.Filepath,
			Featured: p.Featured,
		})
		if subcategorySlug != "" || p.Subcategory == nil || seen[p.Subcategory.ID] {
			continue
		}
		seen[p.Subcategory.ID] = true
		result.Subcategories = append(result.Subcategories, Facet{
			Name:     p.Subcategory.Name,
			Fullname: p.Subcategory.Fullname,
		})
	}
	return result, nil
}

func (s *photoService) resolve(ctx context.Context, kind model.TaxonomyKind, name string) (*model.Taxonomy, error) {
	entry, err := s.taxonomyRepo.FindByName(ctx, kind, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %q: %w", kind, name, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("resolve %s: %w", kind, err)
	}
	return entry, nil
}

// checkRefs verifies every set taxonomy reference points at an existing row.
func (s *photoService) checkRefs(ctx context.Context, refs model.TaxonomyRefs) error {
	checks := []struct {
		kind  model.TaxonomyKind
		field string
		id    *uint
	}{
		{model.KindCategory, "category_id", refs.CategoryID},
		{model.KindSubcategory, "subcategory_id", refs.SubcategoryID},
		{model.KindCollection, "collection_id", refs.CollectionID},
	}
	for _, c := range checks {
		if c.id == nil {
			continue
		}
		ok, err := s.taxonomyRepo.ExistsByID(ctx, c.kind, *c.id)
		if err != nil {
			return fmt.Errorf("check %s: %w", c.field, err)
		}
		if !ok {
			return fmt.Errorf("%s %d: %w", c.field, *c.id, apperrors.ErrNotFound)
		}
	}
	return nil
}

// RegisterUnlisted catalogs a file that exists in storage but not in the catalog.
// The stored path is the one reported by storage.
func (s *photoService) RegisterUnlisted(ctx context.Context, filename string, refs model.TaxonomyRefs, flags model.PhotoFlags) (*model.Photo, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, apperrors.NewValidationError("filename", "required")
	}
	file, err := s.findStored(ctx, filename)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, refs); err != nil {
		return nil, err
	}

	photo := &model.Photo{Filename: file.Name, Filepath: file.Path}
	photo.Apply(flags, refs)

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.PhotoRepository) error {
		exists, err := repo.ExistsByFilename(ctx, filename)
		if err != nil {
			return fmt.Errorf("check filename: %w", err)
		}
		if exists {
			return fmt.Errorf("photo %q: %w", filename, apperrors.ErrDuplicateName)
		}
		return repo.Create(ctx, photo)
	})
	if err != nil {
		return nil, s.translate(err)
	}

	if flags.Slideshow {
		_ = s.cache.Delete(ctx, cache.KeySlideshow)
	}
	log.Info().Str("filename", filename).Uint("id", photo.ID).Msg("photo registered")
	return photo, nil
}

func (s *photoService) findStored(ctx context.Context, filename string) (*storage.File, error) {
	files, err := s.lister.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list storage: %w", err)
	}
	for i := range files {
		if files[i].Name == filename {
			return &files[i], nil
		}
	}
	return nil, fmt.Errorf("file %q: %w", filename, apperrors.ErrNotFound)
}

// Update changes flags and taxonomy references of a cataloged photo.
func (s *photoService) Update(ctx context.Context, id uint, flags model.PhotoFlags, refs model.TaxonomyRefs) (*model.Photo, error) {
	if err := s.checkRefs(ctx, refs); err != nil {
		return nil, err
	}

	var updated *model.Photo
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.PhotoRepository) error {
		photo, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		photo.Apply(flags, refs)
		if err := repo.Update(ctx, photo); err != nil {
			return err
		}
		updated = photo
		return nil
	})
	if err != nil {
		return nil, s.translate(err)
	}

	_ = s.cache.Delete(ctx, cache.KeySlideshow)
	log.Info().Uint("id", id).Msg("photo updated")
	return updated, nil
}

// Get returns a photo by ID.
func (s *photoService) Get(ctx context.Context, id uint) (*model.Photo, error) {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	return photo, nil
}

// ListAllAdmin lists the whole catalog, active photos first.
func (s *photoService) ListAllAdmin(ctx context.Context) ([]AdminPhoto, error) {
	photos, err := s.repo.ListAllWithTaxonomy(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	out := make([]AdminPhoto, 0, len(photos))
	for _, p := range photos {
		row := AdminPhoto{
			ID:        p.ID,
			Filename:  p.Filename,
			Filepath:  p.Filepath,
			Active:    p.Active,
			Slideshow: p.Slideshow,
			Featured:  p.Featured,
		}
		if p.Category != nil {
			row.Category = p.Category.Fullname
		}
		if p.Subcategory != nil {
			row.Subcategory = p.Subcategory.Fullname
		}
		if p.Collection != nil {
			row.Collection = p.Collection.Fullname
		}
		out = append(out, row)
	}
	// the query already orders active first; keep it stable if a driver does not
	sort.SliceStable(out, func(i, j int) bool { return out[i].Active && !out[j].Active })
	return out, nil
}

// ListUnregistered diffs the storage listing against cataloged filenames.
func (s *photoService) ListUnregistered(ctx context.Context) ([]storage.File, error) {
	files, err := s.lister.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list storage: %w", err)
	}
	names, err := s.repo.ListFilenames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list filenames: %w", err)
	}

	cataloged := make(map[string]bool, len(names))
	for _, n := range names {
		cataloged[n] = true
	}

	out := make([]storage.File, 0)
	for _, f := range files {
		if !cataloged[f.Name] {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *photoService) translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("photo: %w", apperrors.ErrNotFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("photo taxonomy reference: %w", apperrors.ErrNotFound)
	case db.IsDuplicateKey(err):
		return fmt.Errorf("photo filename: %w", apperrors.ErrDuplicateName)
	default:
		return err
	}
}
