package jsondef

import (
	"encoding/json"

	"github.com/louisbranch/stellarforge/internal/galaxy/body"
	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
	"github.com/louisbranch/stellarforge/internal/galaxy/system"
)

// SaveToJSON serializes sys into the document shape LoadSystemFromJSON
// accepts. Fields left to the generator are omitted so they reload as
// randomizable. The body tree flattens to pre-order with child indices.
func SaveToJSON(sys *system.System) ([]byte, error) {
	doc := systemDoc{
		Name:       sys.Name,
		OtherNames: sys.OtherNames,
		NumStars:   sys.NumStars,
		SectorX:    &sys.SectorX,
		SectorY:    &sys.SectorY,
		SectorZ:    &sys.SectorZ,
		Pos:        &[3]float64{sys.Pos.X, sys.Pos.Y, sys.Pos.Z},
		ShortDesc:  sys.ShortDesc,
		LongDesc:   sys.LongDesc,
	}
	// An unset government has no symbolic name; omit the key so the document
	// reloads with the default instead of failing the enum lookup.
	if sys.GovType.IsValid() {
		doc.GovType = sys.GovType.String()
	}
	for _, t := range sys.StarTypes {
		doc.Stars = append(doc.Stars, t.String())
	}
	if seed, ok := sys.Seed.Value(); ok {
		doc.Seed = &seed
	}
	if explored, ok := sys.Explored.Value(); ok {
		doc.Explored = &explored
	}
	if lawlessness, ok := sys.Lawlessness.Value(); ok {
		doc.Lawlessness = &lawlessness
	}
	if sys.Faction != nil {
		doc.Faction = sys.Faction.Name
	}

	if sys.Root != nil {
		flat := flatten(sys.Root)
		index := make(map[*body.Body]int, len(flat))
		for i, b := range flat {
			index[b] = i
		}
		for _, b := range flat {
			doc.Bodies = append(doc.Bodies, bodyToDoc(b, index))
		}
	}

	return json.MarshalIndent(doc, "", "\t")
}

func flatten(root *body.Body) []*body.Body {
	flat := []*body.Body{root}
	for _, child := range root.Children {
		flat = append(flat, flatten(child)...)
	}
	return flat
}

func bodyToDoc(b *body.Body, index map[*body.Body]int) bodyDoc {
	bd := bodyDoc{
		Name:              b.Name,
		Type:              b.Type.String(),
		Radius:            b.Radius,
		AspectRatio:       b.AspectRatio,
		Mass:              b.Mass,
		AverageTemp:       b.AverageTemp,
		RotationPeriod:    b.RotationPeriod,
		SemiMajorAxis:     b.SemiMajorAxis,
		Eccentricity:      b.Eccentricity,
		AxialTilt:         b.AxialTilt,
		Inclination:       b.Latitude,
		Longitude:         b.Longitude,
		Metallicity:       b.Metallicity,
		Volcanicity:       b.Volcanicity,
		VolatileGas:       b.VolatileGas,
		VolatileLiquid:    b.VolatileLiquid,
		VolatileIces:      b.VolatileIces,
		AtmosOxidizing:    b.AtmosOxidizing,
		Life:              b.Life,
		Population:        b.Population,
		Agricultural:      b.Agricultural,
		SpaceStationType:  b.SpaceStationType,
		HeightMapFilename: b.HeightMapPath,
		HeightMapFractal:  b.HeightMapFractal,
	}
	if seed, ok := b.Seed.Value(); ok {
		bd.Seed = &seed
	}
	if v, ok := b.OrbitalOffset.Value(); ok {
		bd.OrbitalOffset = valuePtr(v)
	}
	if v, ok := b.OrbitalPhaseAtStart.Value(); ok {
		bd.OrbitalPhase = valuePtr(v)
	}
	if v, ok := b.RotationalPhaseAtStart.Value(); ok {
		bd.RotationalPhase = valuePtr(v)
	}
	if v, ok := b.ArgOfPeriapsis.Value(); ok {
		bd.ArgOfPeriapsis = valuePtr(v)
	}

	switch b.RingState.Mode {
	case body.RingsNone:
		bd.Rings = &ringsDoc{Present: false}
	case body.RingsWanted:
		bd.Rings = &ringsDoc{Present: true}
	case body.RingsCustom:
		bd.Rings = &ringsDoc{
			Present: true,
			Inner:   valuePtr(b.RingState.InnerRadius),
			Outer:   valuePtr(b.RingState.OuterRadius),
			Color:   []float64{b.RingState.Color.R, b.RingState.Color.G, b.RingState.Color.B, b.RingState.Color.A},
		}
	}

	for _, child := range b.Children {
		bd.Children = append(bd.Children, index[child])
	}
	return bd
}

func valuePtr(v fixed.Value) *fixed.Value {
	return &v
}
