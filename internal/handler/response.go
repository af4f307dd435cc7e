package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"atelier/internal/errors"
	"atelier/internal/model"
)

// SessionContextKey is where the session middleware stores the *model.Session.
const SessionContextKey = "session"

// SessionFrom returns the session of the request, nil when anonymous.
func SessionFrom(c echo.Context) *model.Session {
	session, _ := c.Get(SessionContextKey).(*model.Session)
	return session
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// bind decodes the request and runs struct validation. Validation failures carry
// the failed rule per field.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return respondError(&errors.ValidationError{Fields: fields})
		}
		return respondError(errors.NewValidationError("body", err.Error()))
	}
	return nil
}

// respondError maps a service error to an echo HTTP error.
func respondError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// paramID parses a positive numeric path parameter.
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, respondError(errors.NewValidationError(name, "numeric"))
	}
	return uint(id), nil
}
