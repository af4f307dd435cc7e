package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"atelier/internal/model"
)

func TestRoleService_EnsureRolesCreatesMissing(t *testing.T) {
	mockRepo := new(MockRoleRepository)
	mockRepo.On("FindByName", mock.Anything, model.RoleUser).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByName", mock.Anything, model.RoleAdmin).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Role) bool {
		return r.Name == model.RoleUser && r.IsDefault && r.Permissions.Has(model.PermAttend) && !r.Permissions.Has(model.PermAdminister)
	})).Return(nil).Once()
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Role) bool {
		return r.Name == model.RoleAdmin && !r.IsDefault && len(r.Permissions) == len(model.AllPermissions)
	})).Return(nil).Once()

	require.NoError(t, NewRoleService(mockRepo).EnsureRoles(context.Background()))
	mockRepo.AssertExpectations(t)
}

func TestRoleService_EnsureRolesIsIdempotent(t *testing.T) {
	mockRepo := new(MockRoleRepository)
	mockRepo.On("FindByName", mock.Anything, model.RoleUser).Return(&model.Role{ID: 1, Name: model.RoleUser}, nil)
	mockRepo.On("FindByName", mock.Anything, model.RoleAdmin).Return(&model.Role{ID: 2, Name: model.RoleAdmin}, nil)

	require.NoError(t, NewRoleService(mockRepo).EnsureRoles(context.Background()))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoleService_EnsureRolesStorageError(t *testing.T) {
	mockRepo := new(MockRoleRepository)
	mockRepo.On("FindByName", mock.Anything, model.RoleUser).Return(nil, errors.New("db down"))

	assert.ErrorContains(t, NewRoleService(mockRepo).EnsureRoles(context.Background()), "db down")
}

func TestRoleService_IsAdmin(t *testing.T) {
	mockRepo := new(MockRoleRepository)
	mockRepo.On("FindByName", mock.Anything, model.RoleAdmin).Return(&model.Role{ID: 2, Name: model.RoleAdmin}, nil)
	svc := NewRoleService(mockRepo)

	tests := []struct {
		name     string
		user     *model.User
		expected bool
	}{
		{"admin", &model.User{ID: 1, RoleID: 2}, true},
		{"regular user", &model.User{ID: 2, RoleID: 1}, false},
		{"no user", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.IsAdmin(context.Background(), tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}
