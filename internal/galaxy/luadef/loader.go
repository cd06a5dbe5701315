// Package luadef is the script ingestion path for custom star systems.
//
// It binds CustomSystem and CustomSystemBody builder classes into an
// embedded Lua runtime. Scripts accumulate fields through chainable setter
// calls; a builder handle is consumed exactly once when its tree or record
// is handed on, and refuses reuse afterwards. Every script file runs in its
// own interpreter state, so one file's failure never poisons another's.
package luadef

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	lua "github.com/Shopify/go-lua"

	"github.com/louisbranch/stellarforge/internal/galaxy/faction"
	"github.com/louisbranch/stellarforge/internal/galaxy/sector"
	"github.com/louisbranch/stellarforge/internal/galaxy/system"
)

const (
	systemTypeName = "CustomSystem"
	bodyTypeName   = "CustomSystemBody"
)

// Loader runs custom system scripts and admits the systems they declare
// into an explicit sector registry. Not safe for concurrent use; only one
// load pass runs at a time.
type Loader struct {
	dir      string
	registry *sector.Registry
	factions *faction.Registry
}

// NewLoader wires a script loader to its source directory, registry, and
// faction collaborator.
func NewLoader(dir string, registry *sector.Registry, factions *faction.Registry) *Loader {
	return &Loader{dir: dir, registry: registry, factions: factions}
}

// Load ingests every .lua script below the configured directory. A failing
// file is logged and skipped; systems admitted by other files stand.
func (l *Loader) Load() {
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".lua") {
			return nil
		}
		if runErr := l.runFile(path); runErr != nil {
			log.Printf("warning: could not load system definition %s: %v", path, runErr)
		}
		return nil
	})
	if err != nil {
		log.Printf("warning: could not scan system definitions under %s: %v", l.dir, err)
	}
}

// LoadSystem runs one script file and returns the last system it admitted,
// or nil when the script admitted nothing.
func (l *Loader) LoadSystem(path string) (*system.System, error) {
	l.registry.ResetLastAdmitted()
	if err := l.runFile(path); err != nil {
		return nil, err
	}
	return l.registry.LastAdmitted(), nil
}

func (l *Loader) runFile(path string) error {
	state := l.newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return err
	}
	return state.ProtectedCall(0, 0, 0)
}

// newState builds a fresh interpreter with the builder classes and the
// f/v value constructors registered.
func (l *Loader) newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerValueConstructors(state)
	registerClass(state, systemTypeName, l.systemMethods())
	registerClass(state, bodyTypeName, bodyMethods())

	return state
}

// registerClass publishes a metatable as a global whose __index is itself,
// so scripts can both construct (Class:new) and call methods on handles.
func registerClass(state *lua.State, name string, methods []lua.RegistryFunction) {
	lua.NewMetaTable(state, name)
	lua.SetFunctions(state, methods, 0)
	state.PushValue(-1)
	state.SetField(-2, "__index")
	state.SetGlobal(name)
}
