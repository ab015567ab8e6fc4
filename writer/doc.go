// Package writer serializes a geom.TraceResult to the output file format
// spec.md §6 defines: UTF-8/ASCII text, binary-mode write, layers in
// ascending lexicographic order, one polygon per line as
// "(x1,y1),(x2,y2),...,(xn,yn)" with no trailing comma and no coordinate
// normalization.
package writer
