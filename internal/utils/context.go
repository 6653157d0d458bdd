// Package utils provides general-purpose helper utilities used across the
// site server and the sitectl client: context keys, configuration
// checksums, HTTP response writing, the HTTP client, publisher tokens and
// revision IDs.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PublisherCtxKey holds the authenticated publisher (the token subject).
var PublisherCtxKey = contextKey("publisher")

// WithPublisher returns a copy of ctx carrying publisher.
func WithPublisher(ctx context.Context, publisher string) context.Context {
	return context.WithValue(ctx, PublisherCtxKey, publisher)
}

// GetPublisherFromContext retrieves the publisher stored by [WithPublisher].
// ok is false when the value is missing, empty or of another type.
func GetPublisherFromContext(ctx context.Context) (string, bool) {
	publisher, ok := ctx.Value(PublisherCtxKey).(string)
	return publisher, ok && publisher != ""
}
