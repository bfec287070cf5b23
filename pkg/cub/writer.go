package cub

import (
	"fmt"
	"io"
	"math"

	"github.com/Turbo87/seeyou-cub/internal/codec"
)

// Airspace is the in-memory shape a caller assembles before calling Write.
// It is the mirror image of Item + its point stream: what Open/Items/
// Points yield on read, Write consumes on the way back out.
type Airspace struct {
	Title          string
	Style          Style
	Class          Class
	MinAlt, MaxAlt int16
	MinAltStyle    AltStyle
	MaxAltStyle    AltStyle
	TimeOut        int32
	ExtraDataRaw   uint32
	ActiveTimeRaw  uint64
	ExtendedType   ExtendedType
	Points         []Point
}

// Write encodes header, item table, and point streams for airspaces to w:
// size_of_item is 43, the full field layout including extended_type_byte
// (one byte above the 42-byte minimum accepted on read), size_of_point is
// its minimum of 5, and coord_scale is derived from the supplied geometry.
func Write(w io.Writer, title string, order ByteOrder, airspaces []Airspace) error {
	if len(airspaces) == 0 {
		return writeEmpty(w, title, order)
	}

	minX, maxX, minY, maxY := boundingBoxOf(airspaces)
	coordScale := codec.ComputeCoordScale(minX, maxX, minY, maxY)

	items := make([]*codec.Item, len(airspaces))
	for i, a := range airspaces {
		ix0, ix1, iy0, iy1 := itemBounds(a)
		item := &codec.Item{
			Left: float32(ix0), Top: float32(iy1), Right: float32(ix1), Bottom: float32(iy0),
			MinAlt: a.MinAlt, MaxAlt: a.MaxAlt,
			TimeOut:       a.TimeOut,
			ExtraDataRaw:  a.ExtraDataRaw,
			ActiveTimeRaw: a.ActiveTimeRaw,
		}
		item.SetStyleClass(a.Style, a.Class)
		item.SetAltStyles(a.MinAltStyle, a.MaxAltStyle)
		item.SetExtendedType(a.ExtendedType)
		items[i] = item
	}

	const itemStride = int32(43)
	const pointStride = int32(5)

	itemTableOffset := int32(210)
	pointDataOffset := itemTableOffset + itemStride*int32(len(items))

	header := &codec.Header{
		Title:           title,
		ByteOrder:       order,
		SizeOfItem:      itemStride,
		SizeOfPoint:     pointStride,
		ItemCount:       int32(len(items)),
		MaxPoints:       maxPointCount(airspaces),
		Left:            float32(minX),
		Top:             float32(maxY),
		Right:           float32(maxX),
		Bottom:          float32(minY),
		CoordScale:      coordScale,
		ItemTableOffset: itemTableOffset,
		PointDataOffset: pointDataOffset,
	}

	pointsOffset := int32(0)
	streams := make([][]byte, len(airspaces))
	for i, a := range airspaces {
		buf := &countingWriter{}
		pw := codec.NewPointWriter(buf, order, coordScale, float64(items[i].Left), float64(items[i].Bottom))
		for _, p := range a.Points {
			if err := pw.WritePoint(p); err != nil {
				return fmt.Errorf("cub: airspace %q: %w", a.Title, err)
			}
		}
		if err := pw.Finish(); err != nil {
			return fmt.Errorf("cub: airspace %q: %w", a.Title, err)
		}
		streams[i] = buf.buf
		items[i].PointsOffset = pointsOffset
		pointsOffset += int32(len(buf.buf))
	}

	if err := codec.WriteHeader(w, header); err != nil {
		return err
	}
	for _, item := range items {
		if err := codec.WriteItem(w, order, itemStride, item); err != nil {
			return err
		}
	}
	for _, stream := range streams {
		if _, err := w.Write(stream); err != nil {
			return err
		}
	}
	return nil
}

// ByteOrder selects the wire byte order used by Write.
type ByteOrder = codec.ByteOrder

const (
	LittleEndian = codec.LittleEndian
	BigEndian    = codec.BigEndian
)

func writeEmpty(w io.Writer, title string, order ByteOrder) error {
	header := &codec.Header{
		Title:           title,
		ByteOrder:       order,
		SizeOfItem:      43,
		SizeOfPoint:     5,
		ItemTableOffset: 210,
		PointDataOffset: 210,
		CoordScale:      1,
	}
	return codec.WriteHeader(w, header)
}

func boundingBoxOf(airspaces []Airspace) (minX, maxX, minY, maxY float64) {
	first := true
	for _, a := range airspaces {
		for _, p := range a.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}

func itemBounds(a Airspace) (minX, maxX, minY, maxY float64) {
	return boundingBoxOf([]Airspace{a})
}

func maxPointCount(airspaces []Airspace) int32 {
	var max int32
	for _, a := range airspaces {
		if n := int32(len(a.Points)); n > max {
			max = n
		}
	}
	return max
}

// countingWriter is an in-memory byte sink satisfying io.Writer, used to
// size each item's point stream before the item table (which records each
// stream's offset) is emitted.
type countingWriter struct {
	buf []byte
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.buf = append(c.buf, p...)
	return len(p), nil
}
