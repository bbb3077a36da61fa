// Package identity carries the acting user through request context. The
// service trusts the gateway in front of it to authenticate and forwards the
// verified identity via headers.
package identity

import "context"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "INTERNAL_STAFF"
	RoleCustomer Role = "CUSTOMER"
)

type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type contextKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(Actor)
	return actor, ok
}
