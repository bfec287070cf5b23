package codec

import (
	"io"
	"math"
)

// PointWriter emits one item's point stream, mirroring PointIterator's
// decode contract: it tracks an origin and emits 0x81 origin-shift records
// whenever a geometry delta would overflow a signed 16-bit field.
type PointWriter struct {
	w       io.Writer
	order   ByteOrder
	scale   float64
	originX float64
	originY float64
}

// NewPointWriter constructs a writer whose origin starts at (originX,
// originY), matching the reader's convention of anchoring to the item's
// (left, bottom).
func NewPointWriter(w io.Writer, order ByteOrder, coordScale float32, originX, originY float64) *PointWriter {
	return &PointWriter{w: w, order: order, scale: float64(coordScale), originX: originX, originY: originY}
}

// WritePoint emits p's attribute records (if any are set), origin-shift
// records as needed, and the geometry record itself.
func (pw *PointWriter) WritePoint(p Point) error {
	if p.HasName {
		if err := pw.writeAttribute(p.Name); err != nil {
			return err
		}
	}
	if p.Frequency != nil {
		if err := pw.writeFrequency(*p.Frequency); err != nil {
			return err
		}
	}
	for _, od := range p.OptionalData {
		if err := pw.writeOptionalData(od); err != nil {
			return err
		}
	}

	if err := pw.shiftToward(p.X, p.Y); err != nil {
		return err
	}
	dx := deltaOf(p.X, pw.originX, pw.scale)
	dy := deltaOf(p.Y, pw.originY, pw.scale)
	if err := writeU8(pw.w, 0x01); err != nil {
		return err
	}
	if err := writeI16(pw.w, dx, pw.order); err != nil {
		return err
	}
	return writeI16(pw.w, dy, pw.order)
}

// Finish writes the stream terminator.
func (pw *PointWriter) Finish() error {
	return writeU8(pw.w, 0x00)
}

// shiftToward emits as many 0x81 origin-shift records as needed so that
// the remaining delta to (targetX, targetY) fits in a signed 16-bit field.
func (pw *PointWriter) shiftToward(targetX, targetY float64) error {
	for {
		rawX := rawDelta(targetX, pw.originX, pw.scale)
		rawY := rawDelta(targetY, pw.originY, pw.scale)
		if fitsInt16(rawX) && fitsInt16(rawY) {
			return nil
		}
		dx := deltaOf(targetX, pw.originX, pw.scale)
		dy := deltaOf(targetY, pw.originY, pw.scale)
		if err := writeU8(pw.w, 0x81); err != nil {
			return err
		}
		if err := writeI16(pw.w, dx, pw.order); err != nil {
			return err
		}
		if err := writeI16(pw.w, dy, pw.order); err != nil {
			return err
		}
		pw.originX += float64(dx) * pw.scale
		pw.originY += float64(dy) * pw.scale
	}
}

func rawDelta(target, origin, scale float64) int64 {
	return int64(math.Round((target - origin) / scale))
}

func fitsInt16(v int64) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}

// deltaOf clamps the raw delta from origin to target into a signed 16-bit
// field, clamping to the extremes when it overflows — callers are expected
// to have already called shiftToward so clamping never actually triggers
// on the geometry record itself.
func deltaOf(target, origin, scale float64) int16 {
	raw := rawDelta(target, origin, scale)
	if raw > math.MaxInt16 {
		raw = math.MaxInt16
	}
	if raw < math.MinInt16 {
		raw = math.MinInt16
	}
	return int16(raw)
}

func (pw *PointWriter) writeAttribute(name string) error {
	n := len(name)
	if n > 0x3F {
		n = 0x3F
		name = name[:n]
	}
	if err := writeU8(pw.w, 0x40|byte(n)); err != nil {
		return err
	}
	return writeFixedText(pw.w, name, n)
}

func (pw *PointWriter) writeFrequency(f Frequency) error {
	label := f.Label
	l := len(label)
	if l > 0x3F {
		l = 0x3F
		label = label[:l]
	}
	if err := writeU8(pw.w, 0xC0|byte(l)); err != nil {
		return err
	}
	if err := writeU32(pw.w, f.Value, pw.order); err != nil {
		return err
	}
	return writeFixedText(pw.w, label, l)
}

func (pw *PointWriter) writeOptionalData(od OptionalData) error {
	switch v := od.(type) {
	case ICAOCode:
		return pw.writeOptionalString(0, 0, 0, string(v))
	case SecondaryFrequency:
		raw := uint32(v)
		return pw.writeOptionalPrefix(1, byte(raw>>16), byte(raw>>8), byte(raw))
	case ExceptionRules:
		return pw.writeOptionalLongString(2, string(v))
	case NotamRemarks:
		return pw.writeOptionalLongString(3, string(v))
	case NotamIdentifier:
		return pw.writeOptionalString(4, 0, 0, string(v))
	case NotamInsertTime:
		raw := uint32(v)
		if err := pw.writeOptionalPrefix(5, byte(raw>>24), byte(raw>>16), byte(raw>>8)); err != nil {
			return err
		}
		return writeU8(pw.w, byte(raw))
	}
	return nil
}

func (pw *PointWriter) writeOptionalPrefix(id, b1, b2, b3 byte) error {
	if err := writeU8(pw.w, 0xA0); err != nil {
		return err
	}
	if err := writeU8(pw.w, id); err != nil {
		return err
	}
	if err := writeU8(pw.w, b1); err != nil {
		return err
	}
	if err := writeU8(pw.w, b2); err != nil {
		return err
	}
	return writeU8(pw.w, b3)
}

func (pw *PointWriter) writeOptionalString(id, b1, b2 byte, s string) error {
	n := len(s)
	if n > 0xFF {
		n = 0xFF
		s = s[:n]
	}
	if err := pw.writeOptionalPrefix(id, b1, b2, byte(n)); err != nil {
		return err
	}
	return writeFixedText(pw.w, s, n)
}

func (pw *PointWriter) writeOptionalLongString(id byte, s string) error {
	n := len(s)
	if n > 0xFFFF {
		n = 0xFFFF
		s = s[:n]
	}
	if err := pw.writeOptionalPrefix(id, 0, byte(n>>8), byte(n)); err != nil {
		return err
	}
	return writeFixedText(pw.w, s, n)
}

// ComputeCoordScale derives the smallest coord_scale for which every delta
// between adjacent points in the worst-case span (minX..maxX, minY..maxY)
// still fits a signed 16-bit field, matching the writer-symmetry rule in
// §4.4 ("derives coord_scale so that deltas fit in signed 16 bits across
// the worst-case pair").
func ComputeCoordScale(minX, maxX, minY, maxY float64) float32 {
	spanX := maxX - minX
	spanY := maxY - minY
	span := spanX
	if spanY > span {
		span = spanY
	}
	if span <= 0 {
		return 1
	}
	return float32(span / float64(math.MaxInt16))
}
