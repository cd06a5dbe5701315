package luadef

import (
	lua "github.com/Shopify/go-lua"

	"github.com/louisbranch/stellarforge/internal/galaxy/body"
	"github.com/louisbranch/stellarforge/internal/galaxy/enumstrings"
	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
)

// earthRadiusKm converts the radius_km convenience setter to earth radii.
const earthRadiusKm = 6371.0

// bodyHandle is the userdata wrapper around a body under construction. The
// pointer is nilled when ownership transfers; later use is refused.
type bodyHandle struct {
	body *body.Body
}

func bodyMethods() []lua.RegistryFunction {
	methods := []lua.RegistryFunction{
		{Name: "new", Function: bodyNew},
		{Name: "seed", Function: bodySeed},
		{Name: "radius_km", Function: bodyRadiusKm},
		{Name: "equatorial_to_polar_radius", Function: bodyAspectRatio},
		{Name: "temp", Function: bodyTemp},
		{Name: "orbital_offset", Function: bodyOrbitalOffset},
		{Name: "orbital_phase_at_start", Function: bodyOrbitalPhaseAtStart},
		{Name: "rotational_phase_at_start", Function: bodyRotationalPhaseAtStart},
		{Name: "latitude", Function: bodyLatitude},
		// latitude is for surface bodies, inclination for orbiting bodies;
		// they share a field.
		{Name: "inclination", Function: bodyLatitude},
		{Name: "longitude", Function: bodyLongitude},
		{Name: "height_map", Function: bodyHeightMap},
		{Name: "space_station_type", Function: bodySpaceStationType},
		{Name: "rings", Function: bodyRings},
	}
	// Setters for fields that must not be negative but may be zero. A
	// negative value is logged and stored anyway.
	for _, field := range []string{
		"radius", "mass", "semi_major_axis", "eccentricity",
		"rotation_period", "axial_tilt", "metallicity", "volcanicity",
		"atmos_density", "atmos_oxidizing", "ocean_cover", "ice_cover",
		"life",
	} {
		methods = append(methods, lua.RegistryFunction{
			Name:     field,
			Function: nonNegativeSetter(field),
		})
	}
	return methods
}

func checkBodyHandle(state *lua.State, index int) *bodyHandle {
	ud := lua.CheckUserData(state, index, bodyTypeName)
	handle, ok := ud.(*bodyHandle)
	if !ok || handle == nil {
		lua.ArgumentError(state, index, "custom system body expected")
		return nil
	}
	return handle
}

func checkBody(state *lua.State, index int) *body.Body {
	handle := checkBodyHandle(state, index)
	if handle.body == nil {
		lua.ArgumentError(state, index, "invalid body (this body has already been used)")
		return nil
	}
	return handle.body
}

func bodyNew(state *lua.State) int {
	name := lua.CheckString(state, 2)
	typeName := lua.CheckString(state, 3)
	value, err := enumstrings.GetValue(enumstrings.SpaceBodyType, typeName)
	if err != nil {
		lua.Errorf(state, "body %q does not have a valid type", name)
		return 0
	}
	b, err := body.New(name, body.Type(value))
	if err != nil {
		lua.Errorf(state, "body %q does not have a valid type", name)
		return 0
	}
	state.PushUserData(&bodyHandle{body: b})
	lua.SetMetaTableNamed(state, bodyTypeName)
	return 1
}

func nonNegativeSetter(field string) lua.Function {
	return func(state *lua.State) int {
		b := checkBody(state, 1)
		b.SetNonNegative(field, checkFixedOrNumber(state, 2))
		state.SetTop(1)
		return 1
	}
}

func bodySeed(state *lua.State) int {
	b := checkBody(state, 1)
	b.SetSeed(uint32(lua.CheckInteger(state, 2)))
	state.SetTop(1)
	return 1
}

func bodyRadiusKm(state *lua.State) int {
	b := checkBody(state, 1)
	value := lua.CheckNumber(state, 2)
	b.Radius = fixed.FromFloat(value / earthRadiusKm)
	state.SetTop(1)
	return 1
}

func bodyAspectRatio(state *lua.State) int {
	b := checkBody(state, 1)
	if err := b.SetAspectRatio(checkFixedOrNumber(state, 2)); err != nil {
		lua.Errorf(state, "custom system definition: %s", err)
		return 0
	}
	state.SetTop(1)
	return 1
}

func bodyTemp(state *lua.State) int {
	b := checkBody(state, 1)
	b.AverageTemp = lua.CheckInteger(state, 2)
	state.SetTop(1)
	return 1
}

func bodyOrbitalOffset(state *lua.State) int {
	b := checkBody(state, 1)
	b.SetOrbitalOffset(checkFixedOrNumber(state, 2))
	state.SetTop(1)
	return 1
}

func bodyOrbitalPhaseAtStart(state *lua.State) int {
	b := checkBody(state, 1)
	if err := b.SetOrbitalPhaseAtStart(checkFixedOrNumber(state, 2)); err != nil {
		lua.Errorf(state, "custom system definition: %s", err)
		return 0
	}
	state.SetTop(1)
	return 1
}

func bodyRotationalPhaseAtStart(state *lua.State) int {
	b := checkBody(state, 1)
	if err := b.SetRotationalPhaseAtStart(checkFixedOrNumber(state, 2)); err != nil {
		lua.Errorf(state, "custom system definition: %s", err)
		return 0
	}
	state.SetTop(1)
	return 1
}

func bodyLatitude(state *lua.State) int {
	b := checkBody(state, 1)
	b.Latitude = fixed.FromFloat(lua.CheckNumber(state, 2))
	state.SetTop(1)
	return 1
}

func bodyLongitude(state *lua.State) int {
	b := checkBody(state, 1)
	b.Longitude = fixed.FromFloat(lua.CheckNumber(state, 2))
	state.SetTop(1)
	return 1
}

func bodyHeightMap(state *lua.State) int {
	b := checkBody(state, 1)
	filename := lua.CheckString(state, 2)
	fractal := lua.CheckInteger(state, 3)
	if err := b.SetHeightMap(filename, fractal); err != nil {
		lua.Errorf(state, "%s", err)
		return 0
	}
	state.SetTop(1)
	return 1
}

func bodySpaceStationType(state *lua.State) int {
	b := checkBody(state, 1)
	b.SpaceStationType = lua.CheckString(state, 2)
	state.SetTop(1)
	return 1
}

// bodyRings is the tri-state ring setter: a boolean selects explicit
// presence or absence, two radii plus an RGBA table select custom rings.
func bodyRings(state *lua.State) int {
	b := checkBody(state, 1)
	if state.IsBoolean(2) {
		b.SetRings(state.ToBoolean(2))
		state.SetTop(1)
		return 1
	}
	inner := checkFixedOrNumber(state, 2)
	outer := checkFixedOrNumber(state, 3)
	lua.CheckType(state, 4, lua.TypeTable)
	var color body.RingColor
	state.RawGetInt(4, 1)
	color.R = lua.CheckNumber(state, -1)
	state.RawGetInt(4, 2)
	color.G = lua.CheckNumber(state, -1)
	state.RawGetInt(4, 3)
	color.B = lua.CheckNumber(state, -1)
	state.RawGetInt(4, 4)
	color.A = lua.OptNumber(state, -1, body.DefaultRingAlpha)
	state.Pop(4)
	b.SetCustomRings(inner, outer, color)
	state.SetTop(1)
	return 1
}
