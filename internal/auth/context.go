package auth

import "context"

type contextKey struct{}

// AuthContext carries the resolved identity of the caller. The user id is
// an opaque string issued by the external identity provider; handlers and
// storage never see raw credentials.
type AuthContext struct {
	UserID       string
	SessionToken string
}

func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(contextKey{}).(AuthContext)
	return ac, ok
}

func UserID(ctx context.Context) string {
	ac, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return ac.UserID
}
