package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/hook"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// ErrWildcardGrantImmutable is returned when a mutation touches a persisted
// wildcard grant (resource_id equal to the AllResources sentinel) or tries to
// repoint an existing grant at the sentinel. Such rows can only be created
// and cascade-deleted with their permission set, never edited in place.
var ErrWildcardGrantImmutable = errors.New("wildcard grants are immutable")

// RegisterHooks installs data-integrity hooks on the client. Both production
// and test clients go through here so the guarantees hold everywhere.
func RegisterHooks(client *ent.Client) {
	client.Grant.Use(wildcardGrantGuard())
}

// wildcardGrantGuard rejects updates and deletes that would touch a wildcard
// grant. Bulk grant mutations are rejected outright: they cannot be screened
// row by row, and no caller needs them.
func wildcardGrantGuard() ent.Hook {
	guard := func(next ent.Mutator) ent.Mutator {
		return hook.GrantFunc(func(ctx context.Context, m *ent.GrantMutation) (ent.Value, error) {
			if m.Op().Is(ent.OpUpdate | ent.OpDelete) {
				return nil, fmt.Errorf("bulk grant mutations are not supported: %w", ErrWildcardGrantImmutable)
			}

			old, err := currentResourceID(ctx, m)
			if err != nil {
				return nil, fmt.Errorf("loading grant for immutability check: %w", err)
			}
			if old == models.AllResources {
				return nil, fmt.Errorf("grant for resource %q: %w", old, ErrWildcardGrantImmutable)
			}
			if rid, ok := m.ResourceID(); ok && rid == models.AllResources {
				return nil, fmt.Errorf("cannot repoint a grant at the wildcard sentinel: %w", ErrWildcardGrantImmutable)
			}

			return next.Mutate(ctx, m)
		})
	}
	return hook.On(guard, ent.OpUpdate|ent.OpUpdateOne|ent.OpDelete|ent.OpDeleteOne)
}

// currentResourceID reads the mutated row's resource_id. OldResourceID is
// only generated for UpdateOne, so deletes load the row through the client.
func currentResourceID(ctx context.Context, m *ent.GrantMutation) (string, error) {
	if m.Op().Is(ent.OpUpdateOne) {
		return m.OldResourceID(ctx)
	}
	id, ok := m.ID()
	if !ok {
		return "", fmt.Errorf("grant mutation without id")
	}
	g, err := m.Client().Grant.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return g.ResourceID, nil
}
