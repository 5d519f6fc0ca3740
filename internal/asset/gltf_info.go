// Package asset provides debug inspection of glTF model files, the Go
// counterpart of the demo's model-info printer.
package asset

import (
	"fmt"
	"sync"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/rltvty/miniature-potato/internal/logger"
)

// PrimitiveInfo describes one mesh primitive of a document.
type PrimitiveInfo struct {
	Mesh        string
	VertexCount int
	HasIndices  bool
}

// ModelInfo summarizes a glTF document.
type ModelInfo struct {
	Path       string
	Scenes     []string
	Meshes     []string
	Materials  []string
	Primitives []PrimitiveInfo
}

// Inspector reads glTF documents and reports their contents, remembering
// which paths were already reported so repeated lookups stay quiet.
type Inspector struct {
	mu       sync.Mutex
	reported map[string]*ModelInfo
}

// NewInspector creates an empty inspector.
func NewInspector() *Inspector {
	return &Inspector{reported: make(map[string]*ModelInfo)}
}

// Describe parses the document at path and returns its summary. The first
// call for a path logs the summary; later calls return the cached one.
func (in *Inspector) Describe(path string) (*ModelInfo, error) {
	in.mu.Lock()
	if info, ok := in.reported[path]; ok {
		in.mu.Unlock()
		return info, nil
	}
	in.mu.Unlock()

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gltf %s: %w", path, err)
	}
	info := summarize(path, doc)

	in.mu.Lock()
	// A concurrent Describe may have won the race; keep the first summary.
	if prior, ok := in.reported[path]; ok {
		in.mu.Unlock()
		return prior, nil
	}
	in.reported[path] = info
	in.mu.Unlock()

	logInfo(info)
	return info, nil
}

func summarize(path string, doc *gltf.Document) *ModelInfo {
	info := &ModelInfo{Path: path}

	for _, s := range doc.Scenes {
		info.Scenes = append(info.Scenes, s.Name)
	}
	for _, m := range doc.Materials {
		info.Materials = append(info.Materials, m.Name)
	}
	for _, m := range doc.Meshes {
		info.Meshes = append(info.Meshes, m.Name)
		for _, prim := range m.Primitives {
			pi := PrimitiveInfo{Mesh: m.Name, HasIndices: prim.Indices != nil}
			if posIdx, ok := prim.Attributes[gltf.POSITION]; ok {
				pi.VertexCount = int(doc.Accessors[posIdx].Count)
			}
			info.Primitives = append(info.Primitives, pi)
		}
	}
	return info
}

func logInfo(info *ModelInfo) {
	logger.Log.Info("gltf document loaded",
		zap.String("path", info.Path),
		zap.Strings("scenes", info.Scenes),
		zap.Strings("meshes", info.Meshes),
		zap.Strings("materials", info.Materials),
	)
	for _, p := range info.Primitives {
		logger.Log.Info("primitive mesh",
			zap.String("mesh", p.Mesh),
			zap.Int("vertex_count", p.VertexCount),
			zap.Bool("indexed", p.HasIndices),
		)
	}
}
