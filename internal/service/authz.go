package service

import (
	apperrors "atelier/internal/errors"
	"atelier/internal/model"
)

// Authorize checks that the session exists and carries the required role.
func Authorize(session *model.Session, role string) error {
	if session == nil {
		return apperrors.ErrUnauthenticated
	}
	if session.Role != role {
		return apperrors.ErrForbidden
	}
	return nil
}
