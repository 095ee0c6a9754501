package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	// GetTokenExpiry returns the bearer token lifetime.
	GetTokenExpiry() time.Duration
	GetAppBaseURL() string
	// GetUploadRoot returns the directory uploaded files live under.
	GetUploadRoot() string
}
