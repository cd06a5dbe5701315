// Package system models one custom star system: its metadata, its star
// signature, and the body tree it owns.
package system

import (
	"errors"
	"fmt"

	"github.com/louisbranch/stellarforge/internal/galaxy/body"
	"github.com/louisbranch/stellarforge/internal/galaxy/faction"
	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
	"github.com/louisbranch/stellarforge/internal/galaxy/param"
)

// MaxStars is the number of primary star slots in a system's signature.
const MaxStars = 4

var (
	// ErrInvalidStarType indicates a signature entry that is neither a star
	// type nor the gravpoint terminator.
	ErrInvalidStarType = errors.New("star does not have a valid star type")
	// ErrRootNotStar indicates a body tree whose first body is not star-typed
	// or a gravpoint.
	ErrRootNotStar = errors.New("first body does not have a valid star type")
	// ErrRootTypeMismatch indicates a non-gravpoint root whose type differs
	// from the first entry of the declared star signature.
	ErrRootTypeMismatch = errors.New("first body type does not match the system's primary star type")
)

// Position is the system's position within its sector.
type Position struct {
	X, Y, Z float64
}

// System is one custom star system record. Both ingestion paths build it in
// memory; ownership passes to the sector registry on admission.
type System struct {
	Name       string
	OtherNames []string

	SectorX, SectorY, SectorZ int
	SystemIndex               int
	Pos                       Position

	// StarTypes is the primary star signature, at most MaxStars entries,
	// terminated early by the first gravpoint token. NumStars is the declared
	// star count; the document path may declare more stars than the
	// signature holds slots for, in which case the excess is dropped from
	// generation but the declared count stands.
	StarTypes []body.Type
	NumStars  int

	Seed        param.Randomizable[uint32]
	Explored    param.Randomizable[bool]
	Lawlessness param.Randomizable[fixed.Value]
	ShortDesc   string
	LongDesc    string
	GovType     GovType
	Faction     *faction.Faction

	Root *body.Body
}

// New builds a system record from a name and up to MaxStars star-type
// tokens. The sequence ends at the first gravpoint entry; each entry before
// the terminator must be a star type.
func New(name string, starTypes []body.Type) (*System, error) {
	signature := make([]body.Type, 0, MaxStars)
	for i, t := range starTypes {
		if i >= MaxStars {
			break
		}
		if t == body.TypeGravpoint {
			break
		}
		if !t.IsStar() {
			return nil, fmt.Errorf("system star %d: %w", i+1, ErrInvalidStarType)
		}
		signature = append(signature, t)
	}
	return &System{
		Name:      name,
		StarTypes: signature,
		NumStars:  len(signature),
		GovType:   GovInvalid,
	}, nil
}

// PrimaryType returns the first entry of the star signature, or gravpoint
// when the signature is empty.
func (s *System) PrimaryType() body.Type {
	if len(s.StarTypes) == 0 {
		return body.TypeGravpoint
	}
	return s.StarTypes[0]
}

// AttachBodies installs root as the system's body tree. The root must be a
// star type or a gravpoint, a non-gravpoint root must match the signature's
// first entry, and the tree's recursive star count must equal the declared
// star count.
func (s *System) AttachBodies(root *body.Body) error {
	if root == nil {
		return nil
	}
	if !root.Type.IsStar() && root.Type != body.TypeGravpoint {
		return ErrRootNotStar
	}
	if root.Type != body.TypeGravpoint && root.Type != s.PrimaryType() {
		return ErrRootTypeMismatch
	}
	s.Root = root
	return s.checkStarCount()
}

func (s *System) checkStarCount() error {
	found := s.Root.CountStars()
	if found != s.NumStars {
		return fmt.Errorf("expected %d star(s) in system %s, but found %d (did you forget star types in the system declaration?)",
			s.NumStars, s.Name, found)
	}
	// Someday the secondary star types should be checked against the tree as
	// well, but nothing consumes them yet.
	return nil
}

// IsRandom reports whether the system carries no explicit body tree and is
// left entirely to the procedural generator.
func (s *System) IsRandom() bool {
	return s.Root == nil
}

// SanityChecks validates the owned body tree. Random systems pass trivially.
func (s *System) SanityChecks() error {
	if s.IsRandom() {
		return nil
	}
	return s.Root.SanityChecks()
}

// SystemName returns the system's name for the faction deferral protocol.
func (s *System) SystemName() string {
	return s.Name
}

// SetFaction installs a resolved faction reference.
func (s *System) SetFaction(f *faction.Faction) {
	s.Faction = f
}
