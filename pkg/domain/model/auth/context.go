package auth

import "context"

type ctxKey struct{}

// ContextWithToken returns a context carrying the session token
func ContextWithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// TokenFromContext extracts the session token from the context, if any
func TokenFromContext(ctx context.Context) (*Token, bool) {
	token, ok := ctx.Value(ctxKey{}).(*Token)
	return token, ok
}
