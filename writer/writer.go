package writer

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/orthonet/nettrace/geom"
)

// Write serializes res to path in binary mode, one layer per name in
// ascending lexicographic order, one polygon per line.
func Write(path string, res *geom.TraceResult) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("writer: cannot open %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	layers := make([]string, 0, len(res.ByLayer))
	for name := range res.ByLayer {
		layers = append(layers, name)
	}
	sort.Strings(layers)

	for _, name := range layers {
		if _, err := fmt.Fprintln(bw, name); err != nil {
			return fmt.Errorf("writer: write layer header %s: %w", name, err)
		}
		for _, poly := range res.ByLayer[name] {
			if err := writePolyLine(bw, poly); err != nil {
				return fmt.Errorf("writer: write polygon in %s: %w", name, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writer: flush %s: %w", path, err)
	}
	return nil
}

// writePolyLine writes "(x1,y1),(x2,y2),...,(xn,yn)\n" with no trailing
// comma.
func writePolyLine(bw *bufio.Writer, pts []geom.Point) error {
	for i, p := range pts {
		if i > 0 {
			if _, err := bw.WriteString(","); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "(%d,%d)", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.WriteByte('\n')
}
