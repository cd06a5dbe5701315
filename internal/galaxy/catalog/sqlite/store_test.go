package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/louisbranch/stellarforge/internal/galaxy/body"
	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
	"github.com/louisbranch/stellarforge/internal/galaxy/sector"
	"github.com/louisbranch/stellarforge/internal/galaxy/system"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func admittedSystem(t *testing.T, registry *sector.Registry, name string, coord sector.Coord) *system.System {
	t.Helper()
	sys, err := system.New(name, []body.Type{body.TypeStarG})
	if err != nil {
		t.Fatalf("new system %s: %v", name, err)
	}
	root, err := body.New(name, body.TypeStarG)
	if err != nil {
		t.Fatalf("new root %s: %v", name, err)
	}
	root.Radius = fixed.One
	root.Mass = fixed.One
	root.AverageTemp = 5700
	if err := sys.AttachBodies(root); err != nil {
		t.Fatalf("attach bodies: %v", err)
	}
	registry.Admit(coord, sys)
	return sys
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected an error for a blank catalog path")
	}
}

func TestPutSystemRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	registry := sector.New()
	coord := sector.Coord{X: 3, Y: -1, Z: 2}
	sys := admittedSystem(t, registry, "Depot", coord)
	sys.SectorX, sys.SectorY, sys.SectorZ = coord.X, coord.Y, coord.Z

	if err := store.PutSystem(ctx, sys); err != nil {
		t.Fatalf("put system: %v", err)
	}

	docs, err := store.SystemDocsForSector(ctx, coord)
	if err != nil {
		t.Fatalf("query sector: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 stored document, got %d", len(docs))
	}

	var decoded struct {
		Name  string   `json:"name"`
		Stars []string `json:"stars"`
	}
	if err := json.Unmarshal(docs[0], &decoded); err != nil {
		t.Fatalf("decode stored document: %v", err)
	}
	if decoded.Name != "Depot" {
		t.Fatalf("expected stored name Depot, got %q", decoded.Name)
	}
	if len(decoded.Stars) != 1 || decoded.Stars[0] != "STAR_G" {
		t.Fatalf("expected star signature preserved, got %v", decoded.Stars)
	}
}

func TestPutSystemUpsert(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	registry := sector.New()
	coord := sector.Coord{}
	sys := admittedSystem(t, registry, "First Name", coord)

	if err := store.PutSystem(ctx, sys); err != nil {
		t.Fatalf("put system: %v", err)
	}
	sys.Name = "Second Name"
	if err := store.PutSystem(ctx, sys); err != nil {
		t.Fatalf("re-put system: %v", err)
	}

	docs, err := store.SystemDocsForSector(ctx, coord)
	if err != nil {
		t.Fatalf("query sector: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected upsert to keep one row, got %d", len(docs))
	}
	var decoded struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(docs[0], &decoded); err != nil {
		t.Fatalf("decode stored document: %v", err)
	}
	if decoded.Name != "Second Name" {
		t.Fatalf("expected updated name, got %q", decoded.Name)
	}
}

func TestPutRegistryPreservesAdmissionOrder(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	registry := sector.New()
	coord := sector.Coord{X: 1}

	names := []string{"Alpha", "Beta", "Gamma"}
	for _, name := range names {
		admittedSystem(t, registry, name, coord).SectorX = coord.X
	}
	admittedSystem(t, registry, "Elsewhere", sector.Coord{X: 9}).SectorX = 9

	if err := store.PutRegistry(ctx, registry); err != nil {
		t.Fatalf("put registry: %v", err)
	}

	docs, err := store.SystemDocsForSector(ctx, coord)
	if err != nil {
		t.Fatalf("query sector: %v", err)
	}
	if len(docs) != len(names) {
		t.Fatalf("expected %d documents, got %d", len(names), len(docs))
	}
	for i, doc := range docs {
		var decoded struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(doc, &decoded); err != nil {
			t.Fatalf("decode stored document %d: %v", i, err)
		}
		if decoded.Name != names[i] {
			t.Fatalf("expected %q at position %d, got %q", names[i], i, decoded.Name)
		}
	}
}

func TestSystemDocsForEmptySector(t *testing.T) {
	store := openStore(t)
	docs, err := store.SystemDocsForSector(context.Background(), sector.Coord{X: 42})
	if err != nil {
		t.Fatalf("query sector: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

func TestPutSystemHonorsContextCancellation(t *testing.T) {
	store := openStore(t)
	registry := sector.New()
	sys := admittedSystem(t, registry, "Cancelled", sector.Coord{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.PutSystem(ctx, sys); err == nil {
		t.Fatal("expected cancelled context to abort the write")
	}
}
