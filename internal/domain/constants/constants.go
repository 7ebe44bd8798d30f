// Package constants holds configuration values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Store providers.
const (
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
	StoreProviderMemory    = "memory"
)

// Identity providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

// PubSub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collections.
const (
	CollectionShelves = "shelves"
	CollectionDevices = "onus"
	CollectionUsers   = "users"
)

// DefaultMaxWritesPerCommit mirrors Firestore's per-commit write limit.
const DefaultMaxWritesPerCommit = 500
