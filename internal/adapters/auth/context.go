package auth

import (
	"challenge-clips/internal/core/domain"
	"context"
)

type identityKey struct{}

// WithIdentity stores the authenticated identity in ctx
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the identity stored in ctx, nil when the request is anonymous
func IdentityFrom(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return identity
}
