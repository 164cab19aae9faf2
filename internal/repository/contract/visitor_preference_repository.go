package contract

import "context"

// VisitorPreferenceRepository is per-visitor key/value state keyed by the visitor token.
type VisitorPreferenceRepository interface {
	// Get returns the stored value, or fallback when the visitor never set the key.
	Get(ctx context.Context, visitorId, key, fallback string) (string, error)
	// Lookup reports whether the key was ever set, so an empty stored value is
	// distinguishable from a missing one.
	Lookup(ctx context.Context, visitorId, key string) (value string, found bool, err error)
	Set(ctx context.Context, visitorId, key, value string) error
	Delete(ctx context.Context, visitorId string) error
}
