// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// EnvDevelop marks the local development environment. Push authentication
	// is skipped there.
	EnvDevelop = "develop"
)
