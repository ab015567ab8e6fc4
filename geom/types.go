package geom

import "errors"

// ErrTooFewVertices indicates a polygon was constructed with fewer than 4
// points; spec.md requires at least 4 vertices for a closed orthogonal
// simple polygon.
var ErrTooFewVertices = errors.New("geom: polygon requires at least 4 vertices")

// minVertices is the minimum vertex count accepted by NewPolygon.
const minVertices = 4

// Point is an ordered pair of 32-bit signed coordinates. Intermediate
// arithmetic on Points is promoted to int64 by callers to avoid overflow.
type Point struct {
	X, Y int32
}

// Rect is a half-open axis-aligned rectangle [X1,X2) x [Y1,Y2). Callers
// must maintain X1<X2 and Y1<Y2; a Rect failing that is degenerate and is
// treated as empty by rectops.
type Rect struct {
	X1, Y1, X2, Y2 int32
}

// Empty reports whether r is degenerate (zero width or height).
func (r Rect) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Polygon is a closed orthogonal simple polygon: an ordered sequence of at
// least 4 Points, implicitly closed (the last vertex connects to the
// first). Edges alternate axis-aligned horizontal and vertical. The
// bounding box is computed once at construction and is not recomputed
// afterwards; Pts is an exported field, and writing to it leaves the
// cached bounding box stale.
type Polygon struct {
	Pts                    []Point
	MinX, MinY, MaxX, MaxY int32
}

// NewPolygon builds a Polygon from pts, computing and caching its bounding
// box. Returns ErrTooFewVertices if len(pts) < 4. pts is copied, so the
// caller's slice may be reused or mutated afterward.
func NewPolygon(pts []Point) (*Polygon, error) {
	if len(pts) < minVertices {
		return nil, ErrTooFewVertices
	}
	own := make([]Point, len(pts))
	copy(own, pts)

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return &Polygon{Pts: own, MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// BBoxOverlap reports whether the bounding boxes of a and b touch or
// overlap (inclusive of shared boundary).
func BBoxOverlap(a, b *Polygon) bool {
	return !(a.MaxX < b.MinX || b.MaxX < a.MinX || a.MaxY < b.MinY || b.MaxY < a.MinY)
}

// LayerData is an ordered sequence of Polygons belonging to one named
// layer. A polygon's index within Polys is its identity for the lifetime
// of a run; SpatialIndex and traversal refer to polygons only by this
// index, never by pointer.
type LayerData struct {
	Polys []*Polygon
}

// LayoutDB maps layer name to LayerData. Only layers referenced by a
// RuleFile's needed-layer set are populated; layers never read by the
// rule are absent entirely, not present-but-empty.
type LayoutDB struct {
	Layers map[string]*LayerData
}

// NewLayoutDB returns an empty, ready-to-populate LayoutDB.
func NewLayoutDB() *LayoutDB {
	return &LayoutDB{Layers: make(map[string]*LayerData)}
}

// Layer returns the LayerData for name and true, or (nil, false) if name
// was never loaded — the LookupMiss case from spec.md §7, which callers
// must treat as an empty layer rather than an error.
func (db *LayoutDB) Layer(name string) (*LayerData, bool) {
	ld, ok := db.Layers[name]
	return ld, ok
}
