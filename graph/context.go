package graph

import (
	"context"
	"errors"

	"github.com/lumicoach/coaching-api/models"
)

// Viewer is the authenticated caller derived from the bearer token.
type Viewer struct {
	ID    uint
	Email string
	Role  string
}

type ctxKey int

const (
	viewerKey ctxKey = iota
	clientIPKey
)

func WithViewer(ctx context.Context, v *Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}

func ViewerFrom(ctx context.Context) *Viewer {
	v, _ := ctx.Value(viewerKey).(*Viewer)
	return v
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

func ClientIPFrom(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// requireAuth gates resolvers that need any signed-in user.
func requireAuth(ctx context.Context) (*Viewer, error) {
	v := ViewerFrom(ctx)
	if v == nil {
		return nil, errors.New("Unauthorized")
	}
	return v, nil
}

// requireAdmin gates admin-only resolvers.
func requireAdmin(ctx context.Context) (*Viewer, error) {
	v := ViewerFrom(ctx)
	if v == nil {
		return nil, errors.New("Unauthorized")
	}
	if v.Role != models.RoleAdmin {
		return nil, errors.New("Access denied")
	}
	return v, nil
}
