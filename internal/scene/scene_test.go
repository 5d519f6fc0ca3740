package scene

import (
	"testing"

	"github.com/rltvty/miniature-potato/internal/config"
)

func TestBuildDefaultScene(t *testing.T) {
	cfg := config.Default()
	s, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	wantTerrain := 2 * (cfg.Terrain.Size - 1) * (cfg.Terrain.Size - 1)
	if got := s.Terrain.Mesh.TriangleCount(); got != wantTerrain {
		t.Errorf("expected %d terrain triangles, got %d", wantTerrain, got)
	}

	wantPotato := 2 * cfg.Potato.LonSegments * cfg.Potato.LatSegments
	if got := s.Potato.Mesh.TriangleCount(); got != wantPotato {
		t.Errorf("expected %d potato triangles, got %d", wantPotato, got)
	}

	if len(s.Turbines) != len(cfg.Turbines) {
		t.Fatalf("expected %d turbines, got %d", len(cfg.Turbines), len(s.Turbines))
	}

	// Terrain is centered: a 100-sample grid starts at -50.
	if s.Terrain.Transform.Translation.X() != -50 || s.Terrain.Transform.Translation.Z() != -50 {
		t.Errorf("expected terrain at (-50, 0, -50), got %v", s.Terrain.Transform.Translation)
	}

	// Every node a host would upload: terrain, platform, potato, and five
	// parts per turbine.
	wantNodes := 3 + len(cfg.Turbines)*(2+BladeCount)
	if got := len(s.Nodes()); got != wantNodes {
		t.Errorf("expected %d nodes, got %d", wantNodes, got)
	}
}

func TestBuildRejectsBadTerrain(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Size = 1
	if _, err := Build(cfg); err == nil {
		t.Error("expected error for degenerate terrain size, got nil")
	}
}

func TestAdvanceMovesBlades(t *testing.T) {
	cfg := config.Default()
	s, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	before := s.Turbines[0].Blades[0].Transform.Translation
	s.Advance(0.25)
	after := s.Turbines[0].Blades[0].Transform.Translation

	if before == after {
		t.Error("expected Advance to move turbine blades")
	}

	// Static nodes stay put.
	if s.Potato.Transform.Translation != (NewTransform().Translation) {
		t.Errorf("potato moved during Advance: %v", s.Potato.Transform.Translation)
	}
}
