// Package galaxy groups the custom star-system definition subsystem.
//
// A custom system is an author-supplied star system: metadata, a star-type
// signature, and a recursive tree of astronomical bodies. Two independent
// ingestion paths build the same in-memory model and hand finished records
// to a shared per-sector registry.
//
// # Model
//
// Subpackages:
//   - galaxy/fixed: deterministic fixed-precision values
//   - galaxy/param: explicit-or-randomize field variant
//   - galaxy/body: body nodes, field validation, recursive sanity checks
//   - galaxy/system: system records, star signatures, tree attachment
//   - galaxy/sector: per-sector admission registry
//
// # Ingestion
//
// Subpackages:
//   - galaxy/luadef: embedded Lua script path (builder handles, consumed once)
//   - galaxy/jsondef: structured JSON document path (flat body list, child
//     indices resolved into links), plus the round-trippable serializer
//
// # Collaborators
//
//   - galaxy/faction: lookup-by-name with two-phase deferred resolution for
//     systems loaded before the faction set is known
//   - galaxy/enumstrings: symbolic-name translation for body and government
//     types
//   - galaxy/catalog/sqlite: SQLite catalog of admitted systems
//
// Loads are single-threaded and synchronous: one load pass at a time, all
// mutation on the initiating goroutine.
package galaxy
