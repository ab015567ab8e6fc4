package ruleio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/orthonet/nettrace/geom"
)

// LoadLayoutNeededLayers streams a layout file from path, retaining only
// polygons whose layer name is in needed. Other layers' polygon lines are
// skipped without being parsed. Returns ErrOpenLayout if the file cannot
// be opened. Malformed polygon lines are skipped silently; a polygon that
// would have fewer than 4 vertices is dropped the same way.
func LoadLayoutNeededLayers(path string, needed map[string]struct{}) (*geom.LayoutDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenLayout, path, err)
	}
	defer f.Close()

	db := geom.NewLayoutDB()
	curLayer := ""
	keep := false

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if isLayerLine(line) {
			curLayer = line
			_, keep = needed[curLayer]
			if keep {
				if _, ok := db.Layers[curLayer]; !ok {
					db.Layers[curLayer] = &geom.LayerData{}
				}
			}
			continue
		}

		if !keep || curLayer == "" {
			continue
		}
		if p, ok := parsePolyLine(line); ok {
			db.Layers[curLayer].Polys = append(db.Layers[curLayer].Polys, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenLayout, path, err)
	}

	return db, nil
}

// isLayerLine reports whether every character of s is in [A-Za-z0-9_], the
// layout grammar's rule for classifying a header line.
func isLayerLine(s string) bool {
	for _, c := range s {
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
		if !ok {
			return false
		}
	}
	return true
}

// parsePolyLine parses a sequence of "(x,y)" tuples into a Polygon.
// Returns ok=false if fewer than 4 well-formed tuples are found.
func parsePolyLine(line string) (*geom.Polygon, bool) {
	var pts []geom.Point
	i, n := 0, len(line)
	for i < n {
		for i < n && line[i] != '(' {
			i++
		}
		if i >= n {
			break
		}
		i++

		cm := strings.IndexByte(line[i:], ',')
		if cm < 0 {
			return nil, false
		}
		cm += i

		rp := strings.IndexByte(line[cm:], ')')
		if rp < 0 {
			return nil, false
		}
		rp += cm

		x, err := strconv.ParseInt(strings.TrimSpace(line[i:cm]), 10, 32)
		if err != nil {
			return nil, false
		}
		y, err := strconv.ParseInt(strings.TrimSpace(line[cm+1:rp]), 10, 32)
		if err != nil {
			return nil, false
		}
		pts = append(pts, geom.Point{X: int32(x), Y: int32(y)})
		i = rp + 1
	}

	if len(pts) < 4 {
		return nil, false
	}
	poly, err := geom.NewPolygon(pts)
	if err != nil {
		return nil, false
	}
	return poly, true
}
