package cont

import (
	"PharmaCS/entity"
	"context"
)

type ctxKey int

const userKey ctxKey = iota

// PutUser stores the authenticated client in the request context.
func PutUser(ctx context.Context, user *entity.UserAuth) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the authenticated client, if any.
func GetUser(ctx context.Context) *entity.UserAuth {
	user, _ := ctx.Value(userKey).(*entity.UserAuth)
	return user
}
