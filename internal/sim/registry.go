package sim

import "fmt"

// Group names one of the four disjoint entity collections.
type Group int

const (
	GroupFriendly Group = iota
	GroupEnemy
	GroupPlayerShots
	GroupEnemyShots

	groupCount
)

// String returns a human-readable name for the group.
func (g Group) String() string {
	switch g {
	case GroupFriendly:
		return "friendly"
	case GroupEnemy:
		return "enemy"
	case GroupPlayerShots:
		return "player-shots"
	case GroupEnemyShots:
		return "enemy-shots"
	default:
		return "unknown"
	}
}

// GroupOf returns the collection an entity of the given kind belongs to.
func GroupOf(k Kind) Group {
	switch k {
	case KindPlayer:
		return GroupFriendly
	case KindEnemy, KindBoss:
		return GroupEnemy
	case KindPlayerProjectile:
		return GroupPlayerShots
	default:
		return GroupEnemyShots
	}
}

// Registry owns every live entity, split into four disjoint collections.
// The collection is derived from the entity kind, so an entity can only ever
// be in one of them. Collections shrink only in Sweep and Clear.
type Registry struct {
	groups [groupCount][]*Entity
	nextID uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add registers an entity in the collection of its kind and assigns its ID.
// Registering the same entity twice is a programming error and panics.
func (r *Registry) Add(e *Entity) {
	if e.registered {
		panic(fmt.Sprintf("sim: entity %d (%s) registered twice", e.id, e.kind))
	}
	e.registered = true
	e.id = r.nextID
	r.nextID++

	g := GroupOf(e.kind)
	r.groups[g] = append(r.groups[g], e)
}

// Group returns the live slice of a collection. Callers must not modify it.
func (r *Registry) Group(g Group) []*Entity {
	return r.groups[g]
}

// Len returns the size of a collection.
func (r *Registry) Len(g Group) int {
	return len(r.groups[g])
}

// Total returns the number of registered entities across all collections.
func (r *Registry) Total() int {
	n := 0
	for g := range r.groups {
		n += len(r.groups[g])
	}
	return n
}

// Each calls fn for every entity, friendly first, then enemies, player shots
// and enemy shots.
func (r *Registry) Each(fn func(*Entity)) {
	for g := range r.groups {
		for _, e := range r.groups[g] {
			fn(e)
		}
	}
}

// Sweep removes every destroyed entity from all collections, calling onRemove
// for each, and returns how many were removed.
func (r *Registry) Sweep(onRemove func(*Entity)) int {
	removed := 0
	for g := range r.groups {
		list := r.groups[g]
		kept := list[:0]
		for _, e := range list {
			if e.destroyed {
				e.registered = false
				if onRemove != nil {
					onRemove(e)
				}
				removed++
				continue
			}
			kept = append(kept, e)
		}
		// Drop references held by the tail
		for i := len(kept); i < len(list); i++ {
			list[i] = nil
		}
		r.groups[g] = kept
	}
	return removed
}

// Clear destroys and removes every entity, calling onRemove for each.
func (r *Registry) Clear(onRemove func(*Entity)) {
	for g := range r.groups {
		for _, e := range r.groups[g] {
			e.destroy()
			e.registered = false
			if onRemove != nil {
				onRemove(e)
			}
		}
		r.groups[g] = nil
	}
}
