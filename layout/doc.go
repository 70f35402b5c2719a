// Package layout describes one compiled record type: an ordered set of
// identified fields packed into a fixed-size line.
//
// Field order, identifier order and bit order are the same: field i has
// ID i and starts where field i-1 ends (unless built by hand with gaps).
// Callers size lines with TotalBytes and address fields by ID or position.
//
// A Layout is immutable after construction and safe for concurrent use.
package layout
