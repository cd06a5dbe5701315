package luadef

import (
	lua "github.com/Shopify/go-lua"

	"github.com/louisbranch/stellarforge/internal/galaxy/body"
	"github.com/louisbranch/stellarforge/internal/galaxy/enumstrings"
	"github.com/louisbranch/stellarforge/internal/galaxy/faction"
	"github.com/louisbranch/stellarforge/internal/galaxy/sector"
	"github.com/louisbranch/stellarforge/internal/galaxy/system"
)

// systemHandle is the userdata wrapper around a system under construction.
// The pointer is nilled when ownership transfers to the registry.
type systemHandle struct {
	sys *system.System
}

func (l *Loader) systemMethods() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "new", Function: systemNew},
		{Name: "seed", Function: systemSeed},
		{Name: "explored", Function: systemExplored},
		{Name: "short_desc", Function: systemShortDesc},
		{Name: "long_desc", Function: systemLongDesc},
		{Name: "faction", Function: l.systemFaction},
		{Name: "govtype", Function: systemGovType},
		{Name: "lawlessness", Function: systemLawlessness},
		{Name: "other_names", Function: systemOtherNames},
		{Name: "bodies", Function: systemBodies},
		{Name: "add_to_sector", Function: l.systemAddToSector},
	}
}

func checkSystemHandle(state *lua.State, index int) *systemHandle {
	ud := lua.CheckUserData(state, index, systemTypeName)
	handle, ok := ud.(*systemHandle)
	if !ok || handle == nil {
		lua.ArgumentError(state, index, "custom system expected")
		return nil
	}
	return handle
}

func checkSystem(state *lua.State, index int) *system.System {
	handle := checkSystemHandle(state, index)
	if handle.sys == nil {
		lua.ArgumentError(state, index, "invalid system (this system has already been used)")
		return nil
	}
	return handle.sys
}

// interpretStarTypes reads up to MaxStars star-type tokens from the table at
// index. A gravpoint entry terminates the sequence early.
func interpretStarTypes(state *lua.State, index int) []body.Type {
	lua.CheckType(state, index, lua.TypeTable)
	types := make([]body.Type, 0, system.MaxStars)
	for i := 1; i <= system.MaxStars; i++ {
		state.RawGetInt(index, i)
		entryType := state.TypeOf(-1)
		if entryType == lua.TypeNil {
			state.Pop(1)
			break
		}
		if entryType != lua.TypeString {
			state.Pop(1)
			lua.Errorf(state, "system star %d is not a string constant", i)
			return nil
		}
		name, _ := state.ToString(-1)
		state.Pop(1)
		value, err := enumstrings.GetValue(enumstrings.SpaceBodyType, name)
		if err != nil {
			lua.Errorf(state, "system star %d does not have a valid star type", i)
			return nil
		}
		t := body.Type(value)
		if !t.IsStar() && t != body.TypeGravpoint {
			lua.Errorf(state, "system star %d does not have a valid star type", i)
			return nil
		}
		if t == body.TypeGravpoint {
			break
		}
		types = append(types, t)
	}
	return types
}

func systemNew(state *lua.State) int {
	name := lua.CheckString(state, 2)
	types := interpretStarTypes(state, 3)
	sys, err := system.New(name, types)
	if err != nil {
		lua.Errorf(state, "%s", err)
		return 0
	}
	state.PushUserData(&systemHandle{sys: sys})
	lua.SetMetaTableNamed(state, systemTypeName)
	return 1
}

func systemSeed(state *lua.State) int {
	sys := checkSystem(state, 1)
	seed := uint32(lua.CheckInteger(state, 2))
	// A zero seed stays randomizable; scripts use 0 to mean "pick one".
	if seed != 0 {
		sys.Seed.Set(seed)
	}
	state.SetTop(1)
	return 1
}

func systemExplored(state *lua.State) int {
	sys := checkSystem(state, 1)
	sys.Explored.Set(state.ToBoolean(2))
	state.SetTop(1)
	return 1
}

func systemShortDesc(state *lua.State) int {
	sys := checkSystem(state, 1)
	sys.ShortDesc = lua.CheckString(state, 2)
	state.SetTop(1)
	return 1
}

func systemLongDesc(state *lua.State) int {
	sys := checkSystem(state, 1)
	sys.LongDesc = lua.CheckString(state, 2)
	state.SetTop(1)
	return 1
}

func (l *Loader) systemFaction(state *lua.State) int {
	sys := checkSystem(state, 1)
	name := lua.CheckString(state, 2)
	if !l.factions.IsInitialized() {
		l.factions.RegisterCustomSystem(sys, name)
		state.SetTop(1)
		return 1
	}
	f := l.factions.GetFaction(name)
	if f.Idx == faction.BadFactionIdx {
		lua.ArgumentError(state, 2, "faction not found")
		return 0
	}
	sys.Faction = f
	state.SetTop(1)
	return 1
}

func systemGovType(state *lua.State) int {
	sys := checkSystem(state, 1)
	name := lua.CheckString(state, 2)
	value, err := enumstrings.GetValue(enumstrings.SpaceGovType, name)
	if err != nil {
		lua.ArgumentError(state, 2, "invalid government type")
		return 0
	}
	sys.GovType = system.GovType(value)
	state.SetTop(1)
	return 1
}

func systemLawlessness(state *lua.State) int {
	sys := checkSystem(state, 1)
	sys.Lawlessness.Set(checkFixedOrNumber(state, 2))
	state.SetTop(1)
	return 1
}

func systemOtherNames(state *lua.State) int {
	sys := checkSystem(state, 1)
	var names []string
	if state.TypeOf(2) == lua.TypeTable {
		state.PushNil()
		for state.Next(2) {
			if state.TypeOf(-1) == lua.TypeString {
				name, _ := state.ToString(-1)
				names = append(names, name)
			}
			state.Pop(1)
		}
	}
	sys.OtherNames = names
	state.SetTop(1)
	return 1
}

// systemBodies attaches the primary body and its nested child table to the
// system, consuming every body handle it encounters, then verifies the
// tree's star count against the declared signature.
func systemBodies(state *lua.State) int {
	sys := checkSystem(state, 1)
	primaryHandle := checkBodyHandle(state, 2)
	if primaryHandle.body == nil {
		lua.ArgumentError(state, 2, "invalid body (this body has already been used)")
		return 0
	}
	primaryType := primaryHandle.body.Type
	lua.CheckType(state, 3, lua.TypeTable)

	if !primaryType.IsStar() && primaryType != body.TypeGravpoint {
		lua.Errorf(state, "%s", system.ErrRootNotStar)
		return 0
	}
	if primaryType != body.TypeGravpoint && primaryType != sys.PrimaryType() {
		lua.Errorf(state, "%s", system.ErrRootTypeMismatch)
		return 0
	}

	primary := primaryHandle.body
	primaryHandle.body = nil

	state.PushValue(3)
	addChildren(state, primary)
	state.Pop(1)

	if err := sys.AttachBodies(primary); err != nil {
		lua.Errorf(state, "%s", err)
		return 0
	}

	state.SetTop(1)
	return 1
}

// addChildren walks the nested child table at the top of the stack: each
// entry is a body handle, optionally followed by bracketed tables holding
// that body's own children.
func addChildren(state *lua.State, parent *body.Body) {
	i := 0
	for {
		i++
		state.RawGetInt(-1, i)
		if state.TypeOf(-1) == lua.TypeNil {
			state.Pop(1)
			return
		}
		handle := checkBodyHandle(state, -1)
		if handle.body == nil {
			lua.ArgumentError(state, -1, "invalid body (this body has already been used)")
			return
		}
		kid := handle.body
		handle.body = nil
		state.Pop(1)

		for {
			state.RawGetInt(-1, i+1)
			if state.TypeOf(-1) != lua.TypeTable {
				state.Pop(1)
				break
			}
			addChildren(state, kid)
			state.Pop(1)
			i++
		}

		parent.AddChild(kid)
	}
}

func (l *Loader) systemAddToSector(state *lua.State) int {
	handle := checkSystemHandle(state, 1)
	if handle.sys == nil {
		lua.ArgumentError(state, 1, "invalid system (this system has already been used)")
		return 0
	}
	sys := handle.sys

	if err := sys.SanityChecks(); err != nil {
		lua.Errorf(state, "%s", err)
		return 0
	}

	x := lua.CheckInteger(state, 2)
	y := lua.CheckInteger(state, 3)
	z := lua.CheckInteger(state, 4)
	pos := checkVector(state, 5)

	sys.SectorX, sys.SectorY, sys.SectorZ = x, y, z
	sys.Pos = system.Position{X: pos.X, Y: pos.Y, Z: pos.Z}

	l.registry.Admit(sector.Coord{X: x, Y: y, Z: z}, sys)
	handle.sys = nil
	return 0
}
