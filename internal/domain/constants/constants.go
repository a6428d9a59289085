// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
