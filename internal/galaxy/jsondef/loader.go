package jsondef

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/stellarforge/internal/galaxy/body"
	"github.com/louisbranch/stellarforge/internal/galaxy/faction"
	"github.com/louisbranch/stellarforge/internal/galaxy/sector"
	"github.com/louisbranch/stellarforge/internal/galaxy/system"
)

// ErrMissingField indicates a document without one of its required
// top-level fields.
var ErrMissingField = errors.New("system document is missing a required field")

// Loader parses system documents and admits them into a sector registry.
// Not safe for concurrent use; only one load pass runs at a time.
type Loader struct {
	registry *sector.Registry
	factions *faction.Registry
}

// NewLoader wires a document loader to its registry and faction
// collaborator.
func NewLoader(registry *sector.Registry, factions *faction.Registry) *Loader {
	return &Loader{registry: registry, factions: factions}
}

// LoadDir ingests every .json document below dir. A failing document is
// logged and skipped; it never prevents other documents from being admitted.
func (l *Loader) LoadDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Printf("warning: could not read system definition %s: %v", path, readErr)
			return nil
		}
		if _, loadErr := l.LoadSystemFromJSON(d.Name(), data); loadErr != nil {
			log.Printf("warning: could not load JSON system definition %s: %v", d.Name(), loadErr)
		}
		return nil
	})
}

// LoadSystemFromJSON parses one document, admits the finished system into
// the registry, and returns it. On a structural parse failure nothing is
// admitted and the partially built record is discarded.
func (l *Loader) LoadSystemFromJSON(filename string, data []byte) (*system.System, error) {
	var doc systemDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := checkRequired(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	sys, err := buildSystem(filename, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	l.resolveFaction(filename, sys, doc.Faction)

	root, err := buildBodies(filename, doc.Bodies)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	sys.Root = root

	l.registry.Admit(sector.Coord{X: sys.SectorX, Y: sys.SectorY, Z: sys.SectorZ}, sys)
	return sys, nil
}

func checkRequired(doc *systemDoc) error {
	switch {
	case doc.Name == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	case len(doc.Stars) == 0:
		return fmt.Errorf("%w: stars", ErrMissingField)
	case doc.SectorX == nil || doc.SectorY == nil || doc.SectorZ == nil:
		return fmt.Errorf("%w: sector coordinates", ErrMissingField)
	case doc.Pos == nil:
		return fmt.Errorf("%w: pos", ErrMissingField)
	case len(doc.Bodies) == 0:
		return fmt.Errorf("%w: bodies", ErrMissingField)
	}
	return nil
}

func buildSystem(filename string, doc *systemDoc) (*system.System, error) {
	sys := &system.System{
		Name:       doc.Name,
		OtherNames: doc.OtherNames,
		SectorX:    *doc.SectorX,
		SectorY:    *doc.SectorY,
		SectorZ:    *doc.SectorZ,
		Pos:        system.Position{X: doc.Pos[0], Y: doc.Pos[1], Z: doc.Pos[2]},
		NumStars:   len(doc.Stars),
		ShortDesc:  doc.ShortDesc,
		LongDesc:   doc.LongDesc,
		GovType:    system.GovNone,
	}

	// More stars than signature slots: the excess is dropped from generation
	// but the declared count stands.
	starNames := doc.Stars
	if len(starNames) > system.MaxStars {
		log.Printf("warning: custom system %s defines %d stars of %d max, extra stars will not be used in sector generation",
			filename, len(starNames), system.MaxStars)
		starNames = starNames[:system.MaxStars]
	}
	for _, name := range starNames {
		t, ok := body.TypeFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown star type %q", name)
		}
		sys.StarTypes = append(sys.StarTypes, t)
	}

	if doc.Seed != nil {
		sys.Seed.Set(*doc.Seed)
	}
	if doc.Explored != nil {
		sys.Explored.Set(*doc.Explored)
	}
	if doc.Lawlessness != nil {
		sys.Lawlessness.Set(*doc.Lawlessness)
	}

	govName := doc.GovType
	if govName == "" {
		govName = system.GovNone.String()
	}
	gov, ok := system.GovTypeFromName(govName)
	if !ok {
		return nil, fmt.Errorf("unknown government type %q", govName)
	}
	sys.GovType = gov

	return sys, nil
}

func (l *Loader) resolveFaction(filename string, sys *system.System, name string) {
	if name == "" {
		return
	}
	if !l.factions.IsInitialized() {
		l.factions.RegisterCustomSystem(sys, name)
		return
	}
	f := l.factions.GetFaction(name)
	if f.Idx == faction.BadFactionIdx {
		log.Printf("warning: unknown faction %q for custom system %s", name, filename)
		return
	}
	sys.Faction = f
}

// buildBodies parses the flat body list and resolves child indices into
// direct links. The first body becomes the tree root.
func buildBodies(filename string, docs []bodyDoc) (*body.Body, error) {
	bodies := make([]*body.Body, 0, len(docs))
	for _, bd := range docs {
		b, err := buildBody(&bd)
		if err != nil {
			return nil, err
		}
		indices := make([]int, 0, len(bd.Children))
		for _, idx := range bd.Children {
			if idx < 0 || idx >= len(docs) {
				log.Printf("warning: body %q in system %s has out-of-range child index %d", b.Name, filename, idx)
				continue
			}
			indices = append(indices, idx)
		}
		b.SetChildIndices(indices)
		bodies = append(bodies, b)
	}

	for _, b := range bodies {
		for _, idx := range b.ChildIndices() {
			b.AddChild(bodies[idx])
		}
		b.ClearChildIndices()
	}

	return bodies[0], nil
}

func buildBody(bd *bodyDoc) (*body.Body, error) {
	typeName := bd.Type
	if typeName == "" {
		typeName = body.TypeGravpoint.String()
	}
	t, ok := body.TypeFromName(typeName)
	if !ok {
		return nil, fmt.Errorf("body %q has unknown type %q", bd.Name, typeName)
	}
	b, err := body.New(bd.Name, t)
	if err != nil {
		return nil, err
	}

	b.Radius = bd.Radius
	b.AspectRatio = bd.AspectRatio
	b.Mass = bd.Mass
	b.AverageTemp = bd.AverageTemp
	b.RotationPeriod = bd.RotationPeriod
	b.SemiMajorAxis = bd.SemiMajorAxis
	b.Eccentricity = bd.Eccentricity
	b.AxialTilt = bd.AxialTilt
	b.Latitude = bd.Inclination
	b.Longitude = bd.Longitude
	b.Metallicity = bd.Metallicity
	b.Volcanicity = bd.Volcanicity
	b.VolatileGas = bd.VolatileGas
	b.VolatileLiquid = bd.VolatileLiquid
	b.VolatileIces = bd.VolatileIces
	b.AtmosOxidizing = bd.AtmosOxidizing
	b.Life = bd.Life
	b.Population = bd.Population
	b.Agricultural = bd.Agricultural
	b.SpaceStationType = bd.SpaceStationType
	b.HeightMapPath = bd.HeightMapFilename
	b.HeightMapFractal = bd.HeightMapFractal

	if bd.Seed != nil {
		b.Seed.Set(*bd.Seed)
	}
	if bd.OrbitalOffset != nil {
		b.OrbitalOffset.Set(*bd.OrbitalOffset)
	}
	if bd.OrbitalPhase != nil {
		b.OrbitalPhaseAtStart.Set(*bd.OrbitalPhase)
	}
	if bd.RotationalPhase != nil {
		b.RotationalPhaseAtStart.Set(*bd.RotationalPhase)
	}
	if bd.ArgOfPeriapsis != nil {
		b.ArgOfPeriapsis.Set(*bd.ArgOfPeriapsis)
	}

	if bd.Rings != nil {
		if !bd.Rings.Present {
			b.SetRings(false)
		} else if bd.Rings.Inner != nil && bd.Rings.Outer != nil {
			color := body.RingColor{A: body.DefaultRingAlpha}
			if c := bd.Rings.Color; len(c) >= 3 {
				color.R, color.G, color.B = c[0], c[1], c[2]
				if len(c) >= 4 {
					color.A = c[3]
				}
			}
			b.SetCustomRings(*bd.Rings.Inner, *bd.Rings.Outer, color)
		} else {
			b.SetRings(true)
		}
	}

	return b, nil
}
