package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Service identity reported by the root endpoint.
const (
	ServiceName    = "SyncFloww API"
	ServiceVersion = "1.0.0"
)

// PushAttributeRequestID carries the originating request id on bus messages.
const PushAttributeRequestID = "request_id"
