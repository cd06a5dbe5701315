// Package faction provides the faction lookup collaborator consulted while
// custom systems load. Systems loaded before the faction set is known are
// parked on a deferral list and resolved in a second phase.
package faction

import "log"

// BadFactionIdx is the sentinel index signalling a failed lookup.
const BadFactionIdx = -1

// Faction is one known faction.
type Faction struct {
	Idx  int
	Name string
}

var badFaction = &Faction{Idx: BadFactionIdx}

// CustomSystem is the part of a system record the registry needs to finish a
// deferred resolution.
type CustomSystem interface {
	SystemName() string
	SetFaction(*Faction)
}

type deferred struct {
	system      CustomSystem
	factionName string
}

// Registry holds the known factions and the deferred custom-system
// registrations accumulated before initialization.
type Registry struct {
	byName      map[string]*Faction
	initialized bool
	pending     []deferred
}

// NewRegistry returns an uninitialized registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Faction)}
}

// IsInitialized reports whether the faction set has been loaded.
func (r *Registry) IsInitialized() bool {
	return r.initialized
}

// GetFaction looks a faction up by name. A miss returns the shared sentinel
// whose Idx is BadFactionIdx, never nil.
func (r *Registry) GetFaction(name string) *Faction {
	if f, ok := r.byName[name]; ok {
		return f
	}
	return badFaction
}

// RegisterCustomSystem parks a system for resolution once the faction set is
// known. Calling it after initialization resolves immediately.
func (r *Registry) RegisterCustomSystem(sys CustomSystem, factionName string) {
	if r.initialized {
		r.resolve(deferred{system: sys, factionName: factionName})
		return
	}
	r.pending = append(r.pending, deferred{system: sys, factionName: factionName})
}

// SetInitialized installs the faction set and resolves every deferred
// registration. Unknown names are logged and left unresolved.
func (r *Registry) SetInitialized(factions []*Faction) {
	r.byName = make(map[string]*Faction, len(factions))
	for _, f := range factions {
		r.byName[f.Name] = f
	}
	r.initialized = true
	pending := r.pending
	r.pending = nil
	for _, d := range pending {
		r.resolve(d)
	}
}

func (r *Registry) resolve(d deferred) {
	f := r.GetFaction(d.factionName)
	if f.Idx == BadFactionIdx {
		log.Printf("warning: unknown faction %q for custom system %q", d.factionName, d.system.SystemName())
		return
	}
	d.system.SetFaction(f)
}
