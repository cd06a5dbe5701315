package system

import "fmt"

// GovType enumerates the government types a custom system may declare.
type GovType int

const (
	// GovInvalid is the unset government value.
	GovInvalid GovType = iota - 1
	// GovNone declares an explicitly ungoverned system.
	GovNone
	GovEarthColonial
	GovEarthDemocracy
	GovEmpireRule
	GovCISLibDem
	GovCISSocDem
	GovLibDem
	GovCorporate
	GovSocDem
	GovEarthMilDict
	GovMilDict1
	GovMilDict2
	GovEmpireMilDict
	GovCommunist
	GovPlutocratic
	GovDisorder

	govMax = GovDisorder
)

var govTypeNames = map[GovType]string{
	GovNone:           "NONE",
	GovEarthColonial:  "EARTH_COLONIAL",
	GovEarthDemocracy: "EARTH_DEMOC",
	GovEmpireRule:     "EMPIRE_RULE",
	GovCISLibDem:      "CIS_LIB_DEM",
	GovCISSocDem:      "CIS_SOC_DEM",
	GovLibDem:         "LIB_DEM",
	GovCorporate:      "CORPORATE",
	GovSocDem:         "SOC_DEM",
	GovEarthMilDict:   "EARTH_MIL_DICT",
	GovMilDict1:       "MIL_DICT1",
	GovMilDict2:       "MIL_DICT2",
	GovEmpireMilDict:  "EMPIRE_MIL_DICT",
	GovCommunist:      "COMMUNIST",
	GovPlutocratic:    "PLUTOCRATIC",
	GovDisorder:       "DISORDER",
}

var govTypeValues = func() map[string]GovType {
	values := make(map[string]GovType, len(govTypeNames))
	for t, name := range govTypeNames {
		values[name] = t
	}
	return values
}()

// String returns the symbolic name used in scripts and documents.
func (t GovType) String() string {
	if name, ok := govTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("GOV_TYPE(%d)", int(t))
}

// GovTypeFromName resolves a symbolic government type name.
func GovTypeFromName(name string) (GovType, bool) {
	t, ok := govTypeValues[name]
	return t, ok
}

// IsValid reports whether t lies in the enumerated range; GovInvalid is not
// a valid declared value.
func (t GovType) IsValid() bool {
	return t >= GovNone && t <= govMax
}
