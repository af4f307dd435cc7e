package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"atelier/internal/model"
	"atelier/internal/repository"
)

type roleDef struct {
	name        string
	permissions []model.Permission
	isDefault   bool
}

var builtinRoles = []roleDef{
	{name: model.RoleUser, permissions: []model.Permission{model.PermAttend}, isDefault: true},
	{name: model.RoleAdmin, permissions: model.AllPermissions},
}

// RoleService manages the fixed set of roles.
type RoleService interface {
	EnsureRoles(ctx context.Context) error
	IsAdmin(ctx context.Context, user *model.User) (bool, error)
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService creates a new role service.
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

// EnsureRoles creates the built-in roles that do not exist yet. Existing roles are left untouched.
func (s *roleService) EnsureRoles(ctx context.Context) error {
	for _, def := range builtinRoles {
		_, err := s.repo.FindByName(ctx, def.name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find role %s: %w", def.name, err)
		}

		role := &model.Role{
			Name:        def.name,
			Permissions: model.NewPermissionSet(def.permissions...),
			IsDefault:   def.isDefault,
		}
		if err := s.repo.Create(ctx, role); err != nil {
			return fmt.Errorf("create role %s: %w", def.name, err)
		}
		log.Info().Str("role", def.name).Strs("permissions", role.Permissions.Sorted()).Msg("role created")
	}
	return nil
}

// IsAdmin reports whether the user holds the role named Admin.
func (s *roleService) IsAdmin(ctx context.Context, user *model.User) (bool, error) {
	if user == nil {
		return false, nil
	}
	admin, err := s.repo.FindByName(ctx, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find admin role: %w", err)
	}
	return user.RoleID == admin.ID, nil
}
