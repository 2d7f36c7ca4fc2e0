package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")
	ErrInvalidServerConfigs  = errors.New("invalid server configs: HTTP address is required")
	ErrInvalidAuthConfigs    = errors.New("invalid auth configs: sign key, issuer and token duration are required")
)
