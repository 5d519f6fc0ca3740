package scene

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/rltvty/miniature-potato/internal/config"
	"github.com/rltvty/miniature-potato/internal/logger"
	"github.com/rltvty/miniature-potato/internal/mesh"
	"github.com/rltvty/miniature-potato/internal/profiling"
)

// Node is a named mesh instance placed in the world. The host uploads the
// mesh and consumes the transform; the scene only owns the data.
type Node struct {
	Name      string
	Mesh      *mesh.Buffer
	Transform Transform
}

// Ticker is per-tick mutable state driven by the scene's update loop.
type Ticker interface {
	Tick(dt float64)
}

// Scene holds the assembled demo world. Build it once at startup, then call
// Advance once per simulated frame from a single owner; tickers are stepped
// sequentially and must not be advanced concurrently.
type Scene struct {
	Terrain  Node
	Platform Node
	Potato   Node
	Turbines []*Turbine

	tickers []Ticker
}

// Build generates all meshes and assembles the scene from config. The
// standalone meshes are independent, so they generate in parallel on a
// worker pool.
func Build(cfg *config.Config) (*Scene, error) {
	s := &Scene{}

	pool := mesh.NewWorkerPool(3, 3)
	defer pool.Shutdown()
	results := make(chan mesh.Result, 3)

	pool.SubmitBlocking(mesh.Job{
		Name: "terrain",
		Generate: func() (*mesh.Buffer, error) {
			return mesh.GenerateHeightfield(
				cfg.Terrain.Size,
				cfg.Terrain.Scale,
				mesh.NewTerrainNoise(cfg.Terrain.Seed),
			)
		},
		ResultChan: results,
	})
	pool.SubmitBlocking(mesh.Job{
		Name: "platform",
		Generate: func() (*mesh.Buffer, error) {
			return mesh.GenerateCuboid(mgl32.Vec3{2, 0.5, 2})
		},
		ResultChan: results,
	})
	pool.SubmitBlocking(mesh.Job{
		Name: "potato",
		Generate: func() (*mesh.Buffer, error) {
			var rng *rand.Rand
			if cfg.Potato.Seed != 0 {
				rng = rand.New(rand.NewSource(cfg.Potato.Seed))
			}
			return mesh.GenerateEllipsoid(mesh.EllipsoidParams{
				LonSegments: cfg.Potato.LonSegments,
				LatSegments: cfg.Potato.LatSegments,
				NoiseFactor: cfg.Potato.NoiseFactor,
				Elongation:  cfg.Potato.Elongation,
			}, rng)
		},
		ResultChan: results,
	})

	buffers := make(map[string]*mesh.Buffer, 3)
	for i := 0; i < 3; i++ {
		res := <-results
		if res.Err != nil {
			return nil, fmt.Errorf("building %s: %w", res.Name, res.Err)
		}
		buffers[res.Name] = res.Buffer
	}

	// Center the grid on the origin.
	half := float32(cfg.Terrain.Size) / 2
	s.Terrain = Node{
		Name:      "terrain",
		Mesh:      buffers["terrain"],
		Transform: NewTransformAt(mgl32.Vec3{-half, 0, -half}),
	}
	s.Platform = Node{
		Name:      "platform",
		Mesh:      buffers["platform"],
		Transform: NewTransformAt(mgl32.Vec3{-6, 2, 0}),
	}
	potatoTransform := NewTransform()
	potatoTransform.Scale = mgl32.Vec3{cfg.Potato.Scale, cfg.Potato.Scale, cfg.Potato.Scale}
	s.Potato = Node{Name: "potato", Mesh: buffers["potato"], Transform: potatoTransform}

	for i, tc := range cfg.Turbines {
		turbine, err := NewTurbine(mgl32.Vec3{tc.Position[0], tc.Position[1], tc.Position[2]}, tc.RotationSpeed)
		if err != nil {
			return nil, fmt.Errorf("building turbine %d: %w", i, err)
		}
		s.Turbines = append(s.Turbines, turbine)
		for _, blade := range turbine.Blades {
			s.AddTicker(blade)
		}
	}

	logger.Log.Info("scene built",
		zap.Int("terrain_triangles", s.Terrain.Mesh.TriangleCount()),
		zap.Int("potato_triangles", s.Potato.Mesh.TriangleCount()),
		zap.Int("turbines", len(s.Turbines)),
	)
	return s, nil
}

// AddTicker registers per-tick state with the scene's update loop.
func (s *Scene) AddTicker(t Ticker) {
	s.tickers = append(s.tickers, t)
}

// Advance steps all tickers by dt seconds.
func (s *Scene) Advance(dt float64) {
	defer profiling.Track("scene.Advance")()
	for _, t := range s.tickers {
		t.Tick(dt)
	}
}

// Nodes returns every mesh instance in the scene, for hosts that want to
// upload or inspect them in one pass.
func (s *Scene) Nodes() []*Node {
	nodes := []*Node{&s.Terrain, &s.Platform, &s.Potato}
	for _, t := range s.Turbines {
		nodes = append(nodes, &t.Tower, &t.Nacelle)
		for _, b := range t.Blades {
			nodes = append(nodes, &b.Node)
		}
	}
	return nodes
}
