package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/rltvty/miniature-potato/internal/config"
	"github.com/rltvty/miniature-potato/internal/logger"
	"github.com/rltvty/miniature-potato/internal/player"
	"github.com/rltvty/miniature-potato/internal/profiling"
	"github.com/rltvty/miniature-potato/internal/scene"
)

// slowTickBudget is how long a tick may take before it gets logged.
const slowTickBudget = 16 * time.Millisecond

// InputSource produces one input sample per tick. Headless runs use
// IdleInput; an interactive host would poll devices here.
type InputSource interface {
	Sample() player.InputSample
}

// IdleInput is an InputSource that never presses anything.
type IdleInput struct{}

// Sample returns an empty input sample.
func (IdleInput) Sample() player.InputSample { return player.InputSample{} }

// Runner owns the tick loop: it advances the scene, updates the player and
// recomputes gravity every simulated frame.
type Runner struct {
	scene   *scene.Scene
	player  *player.Player
	inputs  InputSource
	limiter *TickLimiter

	statsEvery time.Duration
	lastStats  time.Time
	lastTime   time.Time
	ticks      uint64
}

// NewRunner wires a runner from config.
func NewRunner(cfg *config.Config, s *scene.Scene, p *player.Player, inputs InputSource) *Runner {
	if inputs == nil {
		inputs = IdleInput{}
	}
	return &Runner{
		scene:      s,
		player:     p,
		inputs:     inputs,
		limiter:    NewTickLimiter(cfg.Simulation.TickRate),
		statsEvery: time.Duration(cfg.Simulation.StatsEverySec * float64(time.Second)),
	}
}

// Run ticks until stop is closed.
func (r *Runner) Run(stop <-chan struct{}) {
	r.lastTime = time.Now()
	r.lastStats = r.lastTime
	for {
		select {
		case <-stop:
			logger.Log.Info("simulation stopped", zap.Uint64("ticks", r.ticks))
			return
		default:
		}
		r.tick()
		r.limiter.Wait()
	}
}

func (r *Runner) tick() {
	profiling.ResetTick()
	start := time.Now()
	dt := start.Sub(r.lastTime).Seconds()
	r.lastTime = start

	r.scene.Advance(dt)

	func() {
		defer profiling.Track("player.Update")()
		r.player.Update(dt, r.inputs.Sample())
	}()
	gravity := r.player.Gravity()

	r.ticks++

	if elapsed := time.Since(start); elapsed > slowTickBudget {
		logger.Sugar.Warnf("slow tick: %v, top tasks: %s", elapsed, profiling.TopN(5))
	}

	if r.statsEvery > 0 && time.Since(r.lastStats) >= r.statsEvery {
		r.lastStats = time.Now()
		r.logStats(gravity)
	}
}

func (r *Runner) logStats(gravity mgl32.Vec3) {
	fields := []zap.Field{
		zap.Uint64("ticks", r.ticks),
		zap.Float32s("gravity", gravity[:]),
	}
	if len(r.scene.Turbines) > 0 {
		blade := r.scene.Turbines[0].Blades[0]
		fields = append(fields,
			zap.Float32s("blade0_pos", blade.Transform.Translation[:]),
		)
	}
	logger.Log.Info("simulation stats", fields...)
}
