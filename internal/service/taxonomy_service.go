package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"atelier/internal/db"
	apperrors "atelier/internal/errors"
	"atelier/internal/model"
	"atelier/internal/repository"
	"atelier/internal/slug"
)

const (
	maxFullnameLength = 64
	// slugRetryLimit bounds re-derivation after a concurrent writer took the slug.
	slugRetryLimit = 3
)

var errSlugTaken = errors.New("slug taken by concurrent writer")

// TaxonomyService registers and resolves categories, subcategories and collections.
type TaxonomyService interface {
	Register(ctx context.Context, kind model.TaxonomyKind, fullname string) (*model.Taxonomy, error)
	List(ctx context.Context, kind model.TaxonomyKind) ([]model.Taxonomy, error)
	FindBySlug(ctx context.Context, kind model.TaxonomyKind, name string) (*model.Taxonomy, error)
}

type taxonomyService struct {
	repo repository.TaxonomyRepository
}

// NewTaxonomyService creates a new taxonomy service.
func NewTaxonomyService(repo repository.TaxonomyRepository) TaxonomyService {
	return &taxonomyService{repo: repo}
}

// Register stores a new entry whose slug is derived from fullname.
func (s *taxonomyService) Register(ctx context.Context, kind model.TaxonomyKind, fullname string) (*model.Taxonomy, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("kind", "oneof")
	}
	fullname = strings.TrimSpace(fullname)
	if fullname == "" {
		return nil, apperrors.NewValidationError("fullname", "required")
	}
	if utf8.RuneCountInString(fullname) > maxFullnameLength {
		return nil, apperrors.NewValidationError("fullname", "max")
	}

	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		var created *model.Taxonomy
		err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaxonomyRepository) error {
			exists, err := repo.ExistsByFullname(ctx, kind, fullname)
			if err != nil {
				return fmt.Errorf("check fullname: %w", err)
			}
			if exists {
				return apperrors.ErrDuplicateName
			}

			name, err := slug.DeriveUniqueSlug(ctx, fullname, func(ctx context.Context, candidate string) (bool, error) {
				return repo.ExistsByName(ctx, kind, candidate)
			})
			if err != nil {
				return err
			}

			entry := &model.Taxonomy{Name: name, Fullname: fullname}
			if err := repo.Create(ctx, kind, entry); err != nil {
				if db.IsDuplicateKey(err) {
					return errSlugTaken
				}
				return fmt.Errorf("create: %w", err)
			}
			created = entry
			return nil
		})

		switch {
		case err == nil:
			log.Info().Str("kind", string(kind)).Str("name", created.Name).Msg("taxonomy registered")
			return created, nil
		case errors.Is(err, errSlugTaken):
			log.Warn().Str("kind", string(kind)).Int("attempt", attempt+1).Msg("slug race, retrying")
			continue
		case errors.Is(err, apperrors.ErrDuplicateName):
			return nil, fmt.Errorf("register %s %q: %w", kind, fullname, err)
		default:
			return nil, fmt.Errorf("register %s: %w", kind, err)
		}
	}
	return nil, fmt.Errorf("register %s %q: %w", kind, fullname, apperrors.ErrDuplicateName)
}

// List returns every entry of a kind ordered by display name.
func (s *taxonomyService) List(ctx context.Context, kind model.TaxonomyKind) ([]model.Taxonomy, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("kind", "oneof")
	}
	return s.repo.List(ctx, kind)
}

// FindBySlug resolves an entry by its slug.
func (s *taxonomyService) FindBySlug(ctx context.Context, kind model.TaxonomyKind, name string) (*model.Taxonomy, error) {
	entry, err := s.repo.FindByName(ctx, kind, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %q: %w", kind, name, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return entry, nil
}
