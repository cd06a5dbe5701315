package body

import (
	"errors"
	"math"
	"testing"

	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
)

func TestNewDefaults(t *testing.T) {
	b, err := New("Sol", TypeStarG)
	if err != nil {
		t.Fatalf("new body: %v", err)
	}
	if !b.AspectRatio.Equal(fixed.One) {
		t.Fatalf("expected default aspect ratio 1, got %s", b.AspectRatio)
	}
	if b.AverageTemp != 1 {
		t.Fatalf("expected default average temp 1, got %d", b.AverageTemp)
	}
	if b.RingState.Mode != RingsRandom {
		t.Fatalf("expected rings left to the generator, got mode %d", b.RingState.Mode)
	}
	if !b.Seed.IsRandom() {
		t.Fatal("expected seed to default to randomizable")
	}
	if !b.OrbitalOffset.IsRandom() || !b.OrbitalPhaseAtStart.IsRandom() ||
		!b.ArgOfPeriapsis.IsRandom() || !b.RotationalPhaseAtStart.IsRandom() {
		t.Fatal("expected all orbital parameters to default to randomizable")
	}
}

func TestNewRejectsInvalidType(t *testing.T) {
	if _, err := New("Nowhere", Type(999)); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if _, err := New("Nowhere", Type(-1)); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestPhaseSettersDomain(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "zero", value: 0, wantErr: false},
		{name: "mid", value: math.Pi, wantErr: false},
		{name: "just below two pi", value: 2*math.Pi - 1e-9, wantErr: false},
		{name: "two pi", value: 2 * math.Pi, wantErr: true},
		{name: "above two pi", value: 7, wantErr: true},
		{name: "negative", value: -0.1, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New("Planet", TypePlanetTerrestrial)
			if err != nil {
				t.Fatalf("new body: %v", err)
			}
			err = b.SetOrbitalPhaseAtStart(fixed.FromFloat(tc.value))
			if tc.wantErr {
				if !errors.Is(err, ErrPhaseOutOfRange) {
					t.Fatalf("expected ErrPhaseOutOfRange for %v, got %v", tc.value, err)
				}
				if !b.OrbitalPhaseAtStart.IsRandom() {
					t.Fatal("rejected phase must leave the field randomizable")
				}
				return
			}
			if err != nil {
				t.Fatalf("set orbital phase %v: %v", tc.value, err)
			}
			if b.OrbitalPhaseAtStart.IsRandom() {
				t.Fatal("explicit phase must clear the randomize state")
			}
			if err := b.SetRotationalPhaseAtStart(fixed.FromFloat(tc.value)); err != nil {
				t.Fatalf("set rotational phase %v: %v", tc.value, err)
			}
		})
	}
}

func TestAspectRatioDomain(t *testing.T) {
	b, err := New("Oblate", TypePlanetGasGiant)
	if err != nil {
		t.Fatalf("new body: %v", err)
	}
	if err := b.SetAspectRatio(fixed.FromFloat(0.5)); !errors.Is(err, ErrAspectRatioOutOfRange) {
		t.Fatalf("expected ErrAspectRatioOutOfRange below 1, got %v", err)
	}
	if err := b.SetAspectRatio(fixed.FromInt(10001)); !errors.Is(err, ErrAspectRatioOutOfRange) {
		t.Fatalf("expected ErrAspectRatioOutOfRange above 10000, got %v", err)
	}
	if err := b.SetAspectRatio(fixed.FromFloat(1.2)); err != nil {
		t.Fatalf("set aspect ratio 1.2: %v", err)
	}
	if !b.AspectRatio.Equal(fixed.FromFloat(1.2)) {
		t.Fatalf("expected aspect ratio 1.2, got %s", b.AspectRatio)
	}
}

func TestNegativeValueStoredWithDiagnostic(t *testing.T) {
	b, err := New("Odd", TypePlanetTerrestrial)
	if err != nil {
		t.Fatalf("new body: %v", err)
	}
	b.SetNonNegative("mass", fixed.FromFloat(-2))
	if !b.Mass.Equal(fixed.FromFloat(-2)) {
		t.Fatalf("negative value must still be stored, got %s", b.Mass)
	}
}

func TestHeightMap(t *testing.T) {
	b, err := New("Terra", TypePlanetTerrestrial)
	if err != nil {
		t.Fatalf("new body: %v", err)
	}
	if err := b.SetHeightMap("terra.hmap", 2); !errors.Is(err, ErrInvalidFractal) {
		t.Fatalf("expected ErrInvalidFractal, got %v", err)
	}
	if err := b.SetHeightMap("terra.hmap", 1); err != nil {
		t.Fatalf("set height map: %v", err)
	}
	if b.HeightMapPath != "heightmaps/terra.hmap" {
		t.Fatalf("expected joined height map path, got %q", b.HeightMapPath)
	}
}

func TestRingStates(t *testing.T) {
	b, err := New("Saturnine", TypePlanetGasGiant)
	if err != nil {
		t.Fatalf("new body: %v", err)
	}

	b.SetRings(false)
	if b.RingState.Mode != RingsNone {
		t.Fatalf("expected explicit no-rings, got mode %d", b.RingState.Mode)
	}

	b.SetRings(true)
	if b.RingState.Mode != RingsWanted {
		t.Fatalf("expected explicit rings, got mode %d", b.RingState.Mode)
	}

	b.SetCustomRings(fixed.FromFloat(1.1), fixed.FromFloat(1.8), RingColor{R: 0.5, G: 0.4, B: 0.3, A: DefaultRingAlpha})
	if b.RingState.Mode != RingsCustom {
		t.Fatalf("expected custom rings, got mode %d", b.RingState.Mode)
	}
	if b.RingState.Color.A != DefaultRingAlpha {
		t.Fatalf("expected default alpha %v, got %v", DefaultRingAlpha, b.RingState.Color.A)
	}
}

func TestCountStars(t *testing.T) {
	root, err := New("Barycenter", TypeGravpoint)
	if err != nil {
		t.Fatalf("new root: %v", err)
	}
	a, _ := New("A", TypeStarG)
	b, _ := New("B", TypeStarK)
	planet, _ := New("C", TypePlanetTerrestrial)
	b.AddChild(planet)
	root.AddChild(a)
	root.AddChild(b)

	if got := root.CountStars(); got != 2 {
		t.Fatalf("expected 2 stars, got %d", got)
	}
}

func TestSanityChecksEmptyName(t *testing.T) {
	b := &Body{Type: TypeStarG, Radius: fixed.One, Mass: fixed.One}
	if err := b.SanityChecks(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestSanityChecksRadiusAndMass(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		wantErr bool
	}{
		{name: "planet with nothing set", typ: TypePlanetTerrestrial, wantErr: true},
		{name: "gravpoint exempt", typ: TypeGravpoint, wantErr: false},
		{name: "orbital starport exempt", typ: TypeStarportOrbital, wantErr: false},
		{name: "surface starport exempt", typ: TypeStarportSurface, wantErr: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.name, tc.typ)
			if err != nil {
				t.Fatalf("new body: %v", err)
			}
			err = b.SanityChecks()
			if tc.wantErr && !errors.Is(err, ErrNoRadiusOrMass) {
				t.Fatalf("expected ErrNoRadiusOrMass, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected exempt body to pass, got %v", err)
			}
		})
	}
}

func TestSanityChecksRecursesIntoChildren(t *testing.T) {
	root, _ := New("Star", TypeStarG)
	root.Radius = fixed.One
	root.Mass = fixed.One
	bad, _ := New("Bad", TypePlanetTerrestrial)
	root.AddChild(bad)

	if err := root.SanityChecks(); !errors.Is(err, ErrNoRadiusOrMass) {
		t.Fatalf("expected child failure to surface, got %v", err)
	}
}

func TestBlackHoleSchwarzschildCorrection(t *testing.T) {
	b, err := New("Cygnus X-1", TypeStarStellarBlackHole)
	if err != nil {
		t.Fatalf("new body: %v", err)
	}
	b.Mass = fixed.FromInt(10)
	b.Radius = fixed.FromFloat(1e-9)

	if err := b.SanityChecks(); err != nil {
		t.Fatalf("sanity checks: %v", err)
	}

	want := SchwarzschildRadius(b.Mass)
	if b.Radius.LessThan(want) {
		t.Fatalf("expected radius corrected to at least %s, got %s", want, b.Radius)
	}
	if !b.Radius.Equal(want) {
		t.Fatalf("expected radius defaulted to Schwarzschild radius %s, got %s", want, b.Radius)
	}
}

func TestSchwarzschildRadiusScalesWithMass(t *testing.T) {
	small := SchwarzschildRadius(fixed.FromInt(1))
	large := SchwarzschildRadius(fixed.FromInt(100))
	if !small.IsPositive() {
		t.Fatalf("expected positive radius, got %s", small)
	}
	if !large.GreaterThan(small) {
		t.Fatalf("expected radius to grow with mass: %s vs %s", large, small)
	}
}

func TestTypePredicates(t *testing.T) {
	if TypeGravpoint.IsStar() {
		t.Fatal("gravpoint is not a star")
	}
	if !TypeBrownDwarf.IsStar() || !TypeStarSMBlackHole.IsStar() {
		t.Fatal("stellar range bounds must be stars")
	}
	if TypePlanetGasGiant.IsStar() {
		t.Fatal("gas giant is not a star")
	}
	if !TypeStarIMBlackHole.IsBlackHole() {
		t.Fatal("intermediate-mass black hole must be a black hole")
	}
	if !TypeStarportSurface.IsStarport() {
		t.Fatal("surface starport must be a starport")
	}
}

func TestTypeNameRoundTrip(t *testing.T) {
	for t0 := TypeGravpoint; t0 <= typeMax; t0++ {
		name := t0.String()
		resolved, ok := TypeFromName(name)
		if !ok {
			t.Fatalf("name %q did not resolve", name)
		}
		if resolved != t0 {
			t.Fatalf("name %q resolved to %v, want %v", name, resolved, t0)
		}
	}
}
