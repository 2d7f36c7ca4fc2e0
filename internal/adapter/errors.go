package adapter

import "errors"

// Sentinels mapped from HTTP statuses by mapHTTPError. The server's JSON
// error message is attached via wrapping, so both errors.Is matching and the
// original text survive the transport.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
