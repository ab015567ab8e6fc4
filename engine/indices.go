package engine

import (
	"sync"

	"github.com/orthonet/nettrace/geom"
	"github.com/orthonet/nettrace/spatialindex"
)

// buildLayerIndices constructs one spatialindex.Index per loaded layer of
// db. When workers > 1 the per-layer builds run concurrently — they are
// independent per spec.md §5 ("Per-layer SpatialIndex instances are
// independent and MAY be built in parallel").
func buildLayerIndices(db *geom.LayoutDB, workers int) map[string]*spatialindex.Index {
	indices := make(map[string]*spatialindex.Index, len(db.Layers))

	if workers <= 1 || len(db.Layers) <= 1 {
		for name, ld := range db.Layers {
			indices[name] = buildOne(ld)
		}
		return indices
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for name, ld := range db.Layers {
		name, ld := name, ld
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			idx := buildOne(ld)
			mu.Lock()
			indices[name] = idx
			mu.Unlock()
		}()
	}
	wg.Wait()
	return indices
}

func buildOne(ld *geom.LayerData) *spatialindex.Index {
	cell := spatialindex.AutoCellSize(ld.Polys)
	return spatialindex.New(ld.Polys, cell)
}
