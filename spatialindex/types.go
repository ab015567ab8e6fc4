package spatialindex

// minCellSize is the floor applied to AutoCellSize's output (spec.md:
// "max(64, med*4)"). New does not apply it to an explicit cell size.
const minCellSize = 64

// defaultCellSize is returned by AutoCellSize for an empty polygon set.
const defaultCellSize = 1024

// sampleCap bounds how many polygons AutoCellSize inspects, so sizing a
// huge layer stays O(1) in the layer's own polygon count.
const sampleCap = 2000

// cellKey identifies one grid cell by its integer grid coordinates.
type cellKey struct {
	gx, gy int32
}
