// Package codec implements the CUB binary airspace file format: the
// header/item/point layout, byte-order-aware primitive I/O, bit-packed
// field decoders, and the stateful point stream used by package cub.
package codec

import "encoding/binary"

// ByteOrder selects how multi-byte integer fields in a CUB file are decoded.
// Floating point fields are always little-endian regardless of this setting.
type ByteOrder int

const (
	// LittleEndian decodes integers least-significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian decodes integers most-significant byte first.
	BigEndian
)

// byteOrderFromFlag maps the header's pc_byte_order byte (offset 132) to a
// ByteOrder. Zero selects big-endian; any other value selects little-endian.
func byteOrderFromFlag(flag byte) ByteOrder {
	if flag == 0 {
		return BigEndian
	}
	return LittleEndian
}

// order returns the stdlib binary.ByteOrder matching this selection.
func (o ByteOrder) order() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}
