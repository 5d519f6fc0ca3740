// Command potato-sim builds the demo scene (procedural terrain, a potato,
// three wind turbines) and runs its tick loop headlessly.
package main

import (
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"github.com/rltvty/miniature-potato/internal/config"
	"github.com/rltvty/miniature-potato/internal/logger"
	"github.com/rltvty/miniature-potato/internal/player"
	"github.com/rltvty/miniature-potato/internal/scene"
	"github.com/rltvty/miniature-potato/internal/sim"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		closer.Fatalln("config:", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		closer.Fatalln("logger:", err)
	}
	defer logger.Sync()

	world, err := scene.Build(cfg)
	if err != nil {
		logger.Log.Fatal("building scene", zap.Error(err))
	}

	p := player.New(cfg.Player)
	runner := sim.NewRunner(cfg, world, p, nil)

	stop := make(chan struct{})
	done := make(chan struct{})
	closer.Bind(func() {
		close(stop)
		<-done
	})

	go func() {
		runner.Run(stop)
		close(done)
		closer.Close()
	}()

	logger.Log.Info("simulation running",
		zap.Int("tick_rate", cfg.Simulation.TickRate),
		zap.Int("turbines", len(world.Turbines)),
	)
	closer.Hold()
}
