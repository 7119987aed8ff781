// Package column implements a binary block codec for homogeneous vectors of
// fixed-point values.
//
// Every value in a column shares one scale, so a block stores the scale once
// and packs the raw representations back to back:
//
//	offset  size  field
//	0       1     representation width in bytes (4 or 8)
//	1       1     radix base (2 or 10)
//	2       4     scale, little endian int32
//	6       8     value count, little endian uint64
//	14      w*n   values, little endian
//
// The width and radix bytes pin a block to a concrete column type. A decoder
// for a different instantiation refuses the block instead of reinterpreting
// the payload.
package column
