package jsondef

import "github.com/louisbranch/stellarforge/internal/galaxy/fixed"

// systemDoc is the wire shape of one custom system document. Optional
// pointer fields carry the explicit-vs-randomize distinction: an absent key
// reloads as randomizable.
type systemDoc struct {
	Name       string   `json:"name"`
	OtherNames []string `json:"otherNames,omitempty"`
	Stars      []string `json:"stars"`
	NumStars   int      `json:"numStars,omitempty"`

	SectorX *int        `json:"sectorX,omitempty"`
	SectorY *int        `json:"sectorY,omitempty"`
	SectorZ *int        `json:"sectorZ,omitempty"`
	Pos     *[3]float64 `json:"pos,omitempty"`

	Seed        *uint32      `json:"seed,omitempty"`
	Explored    *bool        `json:"explored,omitempty"`
	Lawlessness *fixed.Value `json:"lawlessness,omitempty"`

	GovType   string `json:"govType,omitempty"`
	Faction   string `json:"faction,omitempty"`
	ShortDesc string `json:"shortDesc"`
	LongDesc  string `json:"longDesc"`

	Bodies []bodyDoc `json:"bodies"`
}

// bodyDoc is the wire shape of one body in the flat list. Children holds
// indices into the list; inclination carries the latitude field.
type bodyDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`

	Seed *uint32 `json:"seed,omitempty"`

	Radius      fixed.Value `json:"radius"`
	AspectRatio fixed.Value `json:"aspectRatio"`
	Mass        fixed.Value `json:"mass"`
	AverageTemp int         `json:"averageTemp"`

	RotationPeriod  fixed.Value  `json:"rotationPeriod"`
	SemiMajorAxis   fixed.Value  `json:"semiMajorAxis"`
	Eccentricity    fixed.Value  `json:"eccentricity"`
	OrbitalOffset   *fixed.Value `json:"orbitalOffset,omitempty"`
	OrbitalPhase    *fixed.Value `json:"orbitalPhase,omitempty"`
	RotationalPhase *fixed.Value `json:"rotationalPhase,omitempty"`
	ArgOfPeriapsis  *fixed.Value `json:"argOfPeriapsis,omitempty"`
	AxialTilt       fixed.Value  `json:"axialTilt"`
	Inclination     fixed.Value  `json:"inclination"`
	Longitude       fixed.Value  `json:"longitude"`

	Metallicity    fixed.Value `json:"metallicity"`
	Volcanicity    fixed.Value `json:"volcanicity"`
	VolatileGas    fixed.Value `json:"volatileGas"`
	VolatileLiquid fixed.Value `json:"volatileLiquid"`
	VolatileIces   fixed.Value `json:"volatileIces"`
	AtmosOxidizing fixed.Value `json:"atmosOxidizing"`
	Life           fixed.Value `json:"life"`
	Population     fixed.Value `json:"population"`
	Agricultural   fixed.Value `json:"agricultural"`

	SpaceStationType  string `json:"spaceStationType,omitempty"`
	HeightMapFilename string `json:"heightMapFilename,omitempty"`
	HeightMapFractal  int    `json:"heightMapFractal,omitempty"`

	Rings *ringsDoc `json:"rings,omitempty"`

	Children []int `json:"children,omitempty"`
}

// ringsDoc encodes the explicit ring states. An absent rings key means the
// generator decides. Color holds RGB or RGBA components; a missing alpha
// falls back to the default.
type ringsDoc struct {
	Present bool         `json:"present"`
	Inner   *fixed.Value `json:"inner,omitempty"`
	Outer   *fixed.Value `json:"outer,omitempty"`
	Color   []float64    `json:"color,omitempty"`
}
