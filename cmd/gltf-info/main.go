// Command gltf-info prints debug information about glTF model files:
// scenes, meshes, materials and per-primitive vertex counts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rltvty/miniature-potato/internal/asset"
	"github.com/rltvty/miniature-potato/internal/logger"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <model.gltf|model.glb> ...\n", os.Args[0])
		os.Exit(2)
	}

	if err := logger.Init(*logLevel, ""); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	inspector := asset.NewInspector()
	exitCode := 0
	for _, path := range flag.Args() {
		if _, err := inspector.Describe(path); err != nil {
			logger.Sugar.Errorf("inspecting %s: %v", path, err)
			exitCode = 1
		}
	}
	logger.Sync()
	os.Exit(exitCode)
}
