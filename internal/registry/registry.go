// Package registry holds the boards of one parse session, keyed by id, for
// resolving `{id.prop}` references. Ids iterate in registration order.
package registry

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/model"
)

// Registry maps board ids to boards for a single session. It is not safe for
// concurrent use; sessions are never shared.
type Registry struct {
	boards *linkedhashmap.Map
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{boards: linkedhashmap.New()}
}

// Register adds b under its id. A reused id is rejected and the board
// registered first stays authoritative.
func (r *Registry) Register(b *model.Board) error {
	if _, exists := r.boards.Get(b.ID); exists {
		return errors.Wrapf(model.ErrDuplicateID, "board id %q", b.ID)
	}
	r.boards.Put(b.ID, b)
	return nil
}

// Lookup returns the board registered under id.
func (r *Registry) Lookup(id string) (*model.Board, bool) {
	v, ok := r.boards.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*model.Board), true
}

// Has reports whether id is taken.
func (r *Registry) Has(id string) bool {
	_, ok := r.boards.Get(id)
	return ok
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	keys := r.boards.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}
	return ids
}

// Len returns the number of registered boards.
func (r *Registry) Len() int {
	return r.boards.Size()
}
