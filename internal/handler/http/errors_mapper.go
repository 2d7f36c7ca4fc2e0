package http

import (
	"errors"
	"net/http"

	"github.com/moviereview/go-movie-review/internal/service"
	"github.com/moviereview/go-movie-review/internal/store"
)

// errorStatusMap pins every well-known sentinel to its HTTP status. The
// browser client decides retry and redirect behaviour from these codes, so
// they are part of the public contract: validation problems and duplicate
// emails are 400, credential and token problems are 401, a vanished account
// is 404.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrInvalidEmailFormat:       http.StatusBadRequest,
	service.ErrPasswordTooShort:         http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:         http.StatusBadRequest,
	service.ErrInvalidTheme:             http.StatusBadRequest,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrCurrentPasswordIncorrect: http.StatusUnauthorized,
	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrTokenSignatureInvalid:    http.StatusUnauthorized,
	service.ErrTokenIsInvalid:           http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrInvalidUserData:    http.StatusBadRequest,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the API-facing text for err: the sentinel's own
// message when one matches, a generic text otherwise so that internal error
// details never leak into responses.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "internal server error"
}
