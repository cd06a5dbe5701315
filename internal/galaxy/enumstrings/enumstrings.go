// Package enumstrings translates between symbolic enum names used in system
// definitions and their in-memory values, keyed by enum space.
package enumstrings

import (
	"fmt"

	"github.com/louisbranch/stellarforge/internal/galaxy/body"
	"github.com/louisbranch/stellarforge/internal/galaxy/system"
)

// Enum spaces understood by the translator.
const (
	SpaceBodyType = "BodyType"
	SpaceGovType  = "PolitGovType"
)

// GetValue resolves a symbolic name within an enum space.
func GetValue(space, name string) (int, error) {
	switch space {
	case SpaceBodyType:
		if t, ok := body.TypeFromName(name); ok {
			return int(t), nil
		}
	case SpaceGovType:
		if t, ok := system.GovTypeFromName(name); ok {
			return int(t), nil
		}
	default:
		return 0, fmt.Errorf("unknown enum space %q", space)
	}
	return 0, fmt.Errorf("unknown %s constant %q", space, name)
}

// GetString returns the symbolic name of a value within an enum space.
func GetString(space string, value int) (string, error) {
	switch space {
	case SpaceBodyType:
		t := body.Type(value)
		if t.IsValid() {
			return t.String(), nil
		}
	case SpaceGovType:
		t := system.GovType(value)
		if t.IsValid() {
			return t.String(), nil
		}
	default:
		return "", fmt.Errorf("unknown enum space %q", space)
	}
	return "", fmt.Errorf("no %s constant with value %d", space, value)
}
