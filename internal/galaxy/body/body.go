// Package body models a single astronomical body in a custom star system and
// the recursive tree of bodies it owns.
package body

import (
	"errors"
	"fmt"
	"log"
	"math"
	"path"

	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
	"github.com/louisbranch/stellarforge/internal/galaxy/param"
)

// HeightMapDir is the directory height-map references are joined below.
const HeightMapDir = "heightmaps"

// maxHeightMapFractal bounds the terrain fractal selector.
const maxHeightMapFractal = 1

var (
	// ErrInvalidType indicates a body type outside the enumerated range.
	ErrInvalidType = errors.New("body does not have a valid type")
	// ErrPhaseOutOfRange indicates a phase outside [0, 2π).
	ErrPhaseOutOfRange = errors.New("phase must be between 0 and 2 PI radians (including 0 but not 2 PI)")
	// ErrAspectRatioOutOfRange indicates an equatorial-to-polar radius ratio
	// outside [1, 10000].
	ErrAspectRatioOutOfRange = errors.New("equatorial to polar radius ratio must be between 1 and 10000")
	// ErrInvalidFractal indicates an unknown terrain fractal selector.
	ErrInvalidFractal = errors.New("invalid terrain fractal type")
)

// RingMode describes how a body's ring system is decided.
type RingMode int

const (
	// RingsRandom leaves rings to the procedural generator.
	RingsRandom RingMode = iota
	// RingsNone declares the body explicitly ringless.
	RingsNone
	// RingsWanted asks the generator to place default rings.
	RingsWanted
	// RingsCustom carries explicit radii and color.
	RingsCustom
)

// RingColor is an RGBA ring tint.
type RingColor struct {
	R, G, B, A float64
}

// DefaultRingAlpha is used when a custom ring color omits its 4th component.
const DefaultRingAlpha = 0.85

// Rings is the tri-state ring declaration of a body.
type Rings struct {
	Mode        RingMode
	InnerRadius fixed.Value
	OuterRadius fixed.Value
	Color       RingColor
}

// Body is one node of a custom system's body tree. A body exclusively owns
// its children; the document ingestion path additionally keeps transient
// child indices until they are resolved into direct links.
type Body struct {
	Name string
	Type Type

	Radius      fixed.Value
	Mass        fixed.Value
	AverageTemp int
	AspectRatio fixed.Value

	Metallicity    fixed.Value
	Volcanicity    fixed.Value
	VolatileGas    fixed.Value
	VolatileLiquid fixed.Value
	VolatileIces   fixed.Value
	AtmosOxidizing fixed.Value
	Life           fixed.Value
	Population     fixed.Value
	Agricultural   fixed.Value

	SemiMajorAxis          fixed.Value
	Eccentricity           fixed.Value
	OrbitalOffset          param.Randomizable[fixed.Value]
	OrbitalPhaseAtStart    param.Randomizable[fixed.Value]
	ArgOfPeriapsis         param.Randomizable[fixed.Value]
	RotationPeriod         fixed.Value
	AxialTilt              fixed.Value
	RotationalPhaseAtStart param.Randomizable[fixed.Value]
	Latitude               fixed.Value
	Longitude              fixed.Value

	HeightMapPath    string
	HeightMapFractal int
	SpaceStationType string
	RingState        Rings
	Seed             param.Randomizable[uint32]

	Children []*Body

	childIndices []int
}

// New constructs a body in its default state: aspect ratio 1, average
// temperature 1, rings random, seed and every orbital parameter left to the
// generator.
func New(name string, t Type) (*Body, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("body %q: %w", name, ErrInvalidType)
	}
	return &Body{
		Name:        name,
		Type:        t,
		AspectRatio: fixed.One,
		AverageTemp: 1,
		RingState:   Rings{Mode: RingsRandom},
	}, nil
}

// noteNegative logs the diagnostic for a negative value supplied to a field
// that must not be negative. The value is still stored by the caller; custom
// system authors rely on this being permissive.
func (b *Body) noteNegative(field string, v fixed.Value) {
	if fixed.IsNegative(v) {
		log.Printf("custom system definition: value cannot be negative (%s) for %s : %s", v, b.Name, field)
	}
}

// SetNonNegative stores v into the named non-negative field, logging a
// diagnostic when the value is negative. Unknown fields are a programming
// error and panic.
func (b *Body) SetNonNegative(field string, v fixed.Value) {
	b.noteNegative(field, v)
	switch field {
	case "radius":
		b.Radius = v
	case "mass":
		b.Mass = v
	case "semi_major_axis":
		b.SemiMajorAxis = v
	case "eccentricity":
		b.Eccentricity = v
	case "rotation_period":
		b.RotationPeriod = v
	case "axial_tilt":
		b.AxialTilt = v
	case "metallicity":
		b.Metallicity = v
	case "volcanicity":
		b.Volcanicity = v
	case "atmos_density":
		b.VolatileGas = v
	case "atmos_oxidizing":
		b.AtmosOxidizing = v
	case "ocean_cover":
		b.VolatileLiquid = v
	case "ice_cover":
		b.VolatileIces = v
	case "life":
		b.Life = v
	case "population":
		b.Population = v
	case "agricultural":
		b.Agricultural = v
	default:
		panic(fmt.Sprintf("body: unknown non-negative field %q", field))
	}
}

// SetSeed stores an explicit seed.
func (b *Body) SetSeed(seed uint32) {
	b.Seed.Set(seed)
}

// SetOrbitalOffset stores an explicit orbital offset.
func (b *Body) SetOrbitalOffset(v fixed.Value) {
	b.OrbitalOffset.Set(v)
}

// SetArgOfPeriapsis stores an explicit argument of periapsis.
func (b *Body) SetArgOfPeriapsis(v fixed.Value) {
	b.ArgOfPeriapsis.Set(v)
}

// SetOrbitalPhaseAtStart stores the orbital phase at game start, rejecting
// values outside [0, 2π).
func (b *Body) SetOrbitalPhaseAtStart(v fixed.Value) error {
	if err := checkPhase(v); err != nil {
		return fmt.Errorf("orbital phase at game start: %w", err)
	}
	b.OrbitalPhaseAtStart.Set(v)
	return nil
}

// SetRotationalPhaseAtStart stores the phase of the body's spin about its
// axis at game start, rejecting values outside [0, 2π).
func (b *Body) SetRotationalPhaseAtStart(v fixed.Value) error {
	if err := checkPhase(v); err != nil {
		return fmt.Errorf("rotational phase at start: %w", err)
	}
	b.RotationalPhaseAtStart.Set(v)
	return nil
}

// SetAspectRatio stores the equatorial-to-polar radius ratio, rejecting
// values outside [1, 10000].
func (b *Body) SetAspectRatio(v fixed.Value) error {
	if v.LessThan(fixed.One) || v.GreaterThan(fixed.FromInt(10000)) {
		return ErrAspectRatioOutOfRange
	}
	b.AspectRatio = v
	return nil
}

// SetHeightMap records a height-map reference joined below the height-map
// directory, rejecting unknown fractal selectors.
func (b *Body) SetHeightMap(filename string, fractal int) error {
	if fractal < 0 || fractal > maxHeightMapFractal {
		return ErrInvalidFractal
	}
	b.HeightMapPath = path.Join(HeightMapDir, filename)
	b.HeightMapFractal = fractal
	return nil
}

// SetRings declares ring presence or absence without custom geometry.
func (b *Body) SetRings(want bool) {
	if want {
		b.RingState = Rings{Mode: RingsWanted}
	} else {
		b.RingState = Rings{Mode: RingsNone}
	}
}

// SetCustomRings declares an explicit ring system.
func (b *Body) SetCustomRings(inner, outer fixed.Value, color RingColor) {
	b.RingState = Rings{
		Mode:        RingsCustom,
		InnerRadius: inner,
		OuterRadius: outer,
		Color:       color,
	}
}

// AddChild appends a directly owned child body.
func (b *Body) AddChild(child *Body) {
	b.Children = append(b.Children, child)
}

// SetChildIndices records the unresolved child references of a document body.
func (b *Body) SetChildIndices(indices []int) {
	b.childIndices = indices
}

// ChildIndices returns the unresolved child references, if any remain.
func (b *Body) ChildIndices() []int {
	return b.childIndices
}

// ClearChildIndices discards the transient index list once links resolve.
func (b *Body) ClearChildIndices() {
	b.childIndices = nil
}

// CountStars walks the tree rooted at b counting star-typed bodies.
func (b *Body) CountStars() int {
	if b == nil {
		return 0
	}
	count := 0
	if b.Type.IsStar() {
		count++
	}
	for _, child := range b.Children {
		count += child.CountStars()
	}
	return count
}

func checkPhase(v fixed.Value) error {
	twoPi := fixed.FromFloat(2 * math.Pi)
	if fixed.IsNegative(v) || v.GreaterThanOrEqual(twoPi) {
		return ErrPhaseOutOfRange
	}
	return nil
}
