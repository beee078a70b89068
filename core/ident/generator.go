package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Width is the identifier length used by the manifest format.
const Width = 24

// Generator produces manifest identifiers. Every identifier is distinct from
// the seeded set and from everything issued earlier by the same Generator.
type Generator struct {
	used map[string]struct{}
}

// NewGenerator returns a Generator seeded with the identifiers already
// present in the document being mutated.
func NewGenerator(used map[string]struct{}) *Generator {
	g := &Generator{used: make(map[string]struct{}, len(used))}
	for id := range used {
		g.used[id] = struct{}{}
	}
	return g
}

// Next returns a fresh identifier: 24 uppercase hex characters drawn from a
// random UUID, retried on the off chance of a collision.
func (g *Generator) Next() string {
	for {
		id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:Width]
		if _, taken := g.used[id]; taken {
			continue
		}
		g.used[id] = struct{}{}
		return id
	}
}
