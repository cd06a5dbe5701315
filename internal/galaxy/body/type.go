package body

import "fmt"

// Type enumerates the astronomical body types a custom system may declare.
type Type int

const (
	// TypeGravpoint is a massless barycenter placeholder. It doubles as the
	// terminator value in a system's star signature.
	TypeGravpoint Type = iota
	TypeBrownDwarf
	TypeWhiteDwarf
	TypeStarM
	TypeStarK
	TypeStarG
	TypeStarF
	TypeStarA
	TypeStarB
	TypeStarO
	TypeStarMGiant
	TypeStarKGiant
	TypeStarGGiant
	TypeStarFGiant
	TypeStarAGiant
	TypeStarBGiant
	TypeStarOGiant
	TypeStarMSuperGiant
	TypeStarKSuperGiant
	TypeStarGSuperGiant
	TypeStarFSuperGiant
	TypeStarASuperGiant
	TypeStarBSuperGiant
	TypeStarOSuperGiant
	TypeStarMHyperGiant
	TypeStarKHyperGiant
	TypeStarGHyperGiant
	TypeStarFHyperGiant
	TypeStarAHyperGiant
	TypeStarBHyperGiant
	TypeStarOHyperGiant
	TypeStarMWF
	TypeStarBWF
	TypeStarOWF
	TypeStarStellarBlackHole
	TypeStarIMBlackHole
	TypeStarSMBlackHole
	TypePlanetGasGiant
	TypePlanetAsteroid
	TypePlanetTerrestrial
	TypeStarportOrbital
	TypeStarportSurface

	typeMax = TypeStarportSurface

	// TypeStarMin and TypeStarMax bound the stellar range of the enum.
	TypeStarMin = TypeBrownDwarf
	TypeStarMax = TypeStarSMBlackHole
)

var typeNames = map[Type]string{
	TypeGravpoint:            "GRAVPOINT",
	TypeBrownDwarf:           "BROWN_DWARF",
	TypeWhiteDwarf:           "WHITE_DWARF",
	TypeStarM:                "STAR_M",
	TypeStarK:                "STAR_K",
	TypeStarG:                "STAR_G",
	TypeStarF:                "STAR_F",
	TypeStarA:                "STAR_A",
	TypeStarB:                "STAR_B",
	TypeStarO:                "STAR_O",
	TypeStarMGiant:           "STAR_M_GIANT",
	TypeStarKGiant:           "STAR_K_GIANT",
	TypeStarGGiant:           "STAR_G_GIANT",
	TypeStarFGiant:           "STAR_F_GIANT",
	TypeStarAGiant:           "STAR_A_GIANT",
	TypeStarBGiant:           "STAR_B_GIANT",
	TypeStarOGiant:           "STAR_O_GIANT",
	TypeStarMSuperGiant:      "STAR_M_SUPER_GIANT",
	TypeStarKSuperGiant:      "STAR_K_SUPER_GIANT",
	TypeStarGSuperGiant:      "STAR_G_SUPER_GIANT",
	TypeStarFSuperGiant:      "STAR_F_SUPER_GIANT",
	TypeStarASuperGiant:      "STAR_A_SUPER_GIANT",
	TypeStarBSuperGiant:      "STAR_B_SUPER_GIANT",
	TypeStarOSuperGiant:      "STAR_O_SUPER_GIANT",
	TypeStarMHyperGiant:      "STAR_M_HYPER_GIANT",
	TypeStarKHyperGiant:      "STAR_K_HYPER_GIANT",
	TypeStarGHyperGiant:      "STAR_G_HYPER_GIANT",
	TypeStarFHyperGiant:      "STAR_F_HYPER_GIANT",
	TypeStarAHyperGiant:      "STAR_A_HYPER_GIANT",
	TypeStarBHyperGiant:      "STAR_B_HYPER_GIANT",
	TypeStarOHyperGiant:      "STAR_O_HYPER_GIANT",
	TypeStarMWF:              "STAR_M_WF",
	TypeStarBWF:              "STAR_B_WF",
	TypeStarOWF:              "STAR_O_WF",
	TypeStarStellarBlackHole: "STAR_S_BH",
	TypeStarIMBlackHole:      "STAR_IM_BH",
	TypeStarSMBlackHole:      "STAR_SM_BH",
	TypePlanetGasGiant:       "PLANET_GAS_GIANT",
	TypePlanetAsteroid:       "PLANET_ASTEROID",
	TypePlanetTerrestrial:    "PLANET_TERRESTRIAL",
	TypeStarportOrbital:      "STARPORT_ORBITAL",
	TypeStarportSurface:      "STARPORT_SURFACE",
}

var typeValues = func() map[string]Type {
	values := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		values[name] = t
	}
	return values
}()

// String returns the symbolic name used in scripts and documents.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BODY_TYPE(%d)", int(t))
}

// TypeFromName resolves a symbolic body type name.
func TypeFromName(name string) (Type, bool) {
	t, ok := typeValues[name]
	return t, ok
}

// IsValid reports whether t lies in the enumerated range.
func (t Type) IsValid() bool {
	return t >= TypeGravpoint && t <= typeMax
}

// IsStar reports whether t is a stellar type, black holes included.
func (t Type) IsStar() bool {
	return t >= TypeStarMin && t <= TypeStarMax
}

// IsBlackHole reports whether t is one of the black-hole subtypes.
func (t Type) IsBlackHole() bool {
	return t == TypeStarStellarBlackHole || t == TypeStarIMBlackHole || t == TypeStarSMBlackHole
}

// IsStarport reports whether t is an orbital or surface starport.
func (t Type) IsStarport() bool {
	return t == TypeStarportOrbital || t == TypeStarportSurface
}
