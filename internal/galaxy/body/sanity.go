package body

import (
	"errors"
	"fmt"
	"log"

	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
)

// Physical constants used to normalize the Schwarzschild radius to solar
// radii. Mass is declared in solar masses, radius in solar radii.
const (
	gravitationConst = 6.67408e-11 // m^3 kg^-1 s^-2
	solMassKg        = 1.98892e30  // kg
	solRadiusM       = 6.955e8     // m
	lightSpeedMS     = 3.0e8       // m/s
)

var (
	// ErrEmptyName indicates a body with no name set.
	ErrEmptyName = errors.New("custom system body with name not set")
	// ErrNoRadiusOrMass indicates a body with both radius and mass left
	// undefined when its type requires at least one.
	ErrNoRadiusOrMass = errors.New("custom system body with both radius and mass left undefined")
)

// SanityChecks validates the tree rooted at b. Structural problems are
// returned as errors; physically questionable values are logged and kept.
// Black holes below their Schwarzschild radius are silently corrected upward.
func (b *Body) SanityChecks() error {
	if err := b.check(); err != nil {
		return err
	}
	for _, child := range b.Children {
		if err := child.SanityChecks(); err != nil {
			return err
		}
	}
	return nil
}

// exemptFromPhysicals reports whether the type carries no physical extent of
// its own: barycenters and starports.
func exemptFromPhysicals(t Type) bool {
	return t == TypeGravpoint || t.IsStarport()
}

func (b *Body) check() error {
	if b.Name == "" {
		return ErrEmptyName
	}
	nonPositiveRadius := !fixed.IsPositive(b.Radius)
	nonPositiveMass := !fixed.IsPositive(b.Mass)
	if nonPositiveRadius && nonPositiveMass && !exemptFromPhysicals(b.Type) {
		return fmt.Errorf("%w: %q", ErrNoRadiusOrMass, b.Name)
	}
	if nonPositiveRadius && !exemptFromPhysicals(b.Type) {
		log.Printf("warning: 'radius' is %s for body %q", b.Radius, b.Name)
	}
	if nonPositiveMass && !exemptFromPhysicals(b.Type) {
		log.Printf("warning: 'mass' is %s for body %q", b.Mass, b.Name)
	}
	if b.AverageTemp <= 0 && !exemptFromPhysicals(b.Type) {
		log.Printf("warning: 'averageTemp' is %d for body %q", b.AverageTemp, b.Name)
	}
	if b.Type.IsBlackHole() {
		schwarzschild := SchwarzschildRadius(b.Mass)
		if b.Radius.LessThan(schwarzschild) {
			log.Printf("warning: black hole radius defaulted to Schwarzschild radius (%s sol radii) for body %q", schwarzschild, b.Name)
			b.Radius = schwarzschild
		}
	}
	return nil
}

// SchwarzschildRadius computes the minimum radius in solar radii for a mass
// given in solar masses.
func SchwarzschildRadius(mass fixed.Value) fixed.Value {
	m := mass.InexactFloat64()
	r := 2 * m * (gravitationConst * solMassKg) / (lightSpeedMS * lightSpeedMS)
	return fixed.FromFloat(r / solRadiusM)
}
