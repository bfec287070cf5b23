package codec

import "io"

// Frequency is a parsed radio frequency attribute: a raw integer value
// (Hz, per the wire format) and its accompanying text label.
type Frequency struct {
	Value uint32
	Label string
}

// OptionalData is the tagged-union family of optional-data records that can
// follow a point's name/frequency attributes. Each concrete type
// corresponds to one data_id value documented in §4.4.
type OptionalData interface {
	isOptionalData()
}

// ICAOCode is optional-data id 0.
type ICAOCode string

// SecondaryFrequency is optional-data id 1: a 24-bit integer packed from
// three bytes.
type SecondaryFrequency uint32

// ExceptionRules is optional-data id 2.
type ExceptionRules string

// NotamRemarks is optional-data id 3.
type NotamRemarks string

// NotamIdentifier is optional-data id 4.
type NotamIdentifier string

// NotamInsertTime is optional-data id 5: an encoded-minute timestamp.
type NotamInsertTime EncodedMinute

func (ICAOCode) isOptionalData()           {}
func (SecondaryFrequency) isOptionalData() {}
func (ExceptionRules) isOptionalData()     {}
func (NotamRemarks) isOptionalData()       {}
func (NotamIdentifier) isOptionalData()    {}
func (NotamInsertTime) isOptionalData()    {}

// Point is one geometry record of an item's point stream, carrying
// whichever attributes were pending at the time it was emitted.
type Point struct {
	X, Y         float64
	Name         string
	HasName      bool
	Frequency    *Frequency
	OptionalData []OptionalData
}

// pendingAttrs accumulates the name/frequency/optional-data slots that
// attach to the next emitted geometry record, per §4.4.
type pendingAttrs struct {
	name     string
	hasName  bool
	freq     *Frequency
	optional []OptionalData
}

func (p pendingAttrs) isEmpty() bool {
	return !p.hasName && p.freq == nil && len(p.optional) == 0
}

// PointIterator decodes one item's point stream lazily, one record at a
// time, following the bufio.Scanner idiom: call Next until it returns
// false, then check Err.
//
// A PointIterator holds no buffered state beyond its position, origin, and
// pending-attribute slots, and exclusively occupies src's seek cursor for
// its lifetime — see pkg/cub for the runtime borrow enforcement this
// requires.
type PointIterator struct {
	src         Source
	order       ByteOrder
	scale       float64
	sizeOfPoint int32
	originX     float64
	originY     float64

	pending  pendingAttrs
	current  Point
	warnings []Warning
	err      error
	done     bool
}

// NewPointIterator constructs an iterator positioned at startOffset in src,
// with origin initialized to (originX, originY) per §3 ("initialized to
// the item's (left, bottom)").
func NewPointIterator(src Source, order ByteOrder, sizeOfPoint int32, coordScale float32, startOffset int64, originX, originY float64) (*PointIterator, error) {
	if _, err := src.Seek(startOffset, io.SeekStart); err != nil {
		return nil, &UnexpectedEOFError{Context: "point stream"}
	}
	return &PointIterator{
		src:         src,
		order:       order,
		scale:       float64(coordScale),
		sizeOfPoint: sizeOfPoint,
		originX:     originX,
		originY:     originY,
	}, nil
}

// Next advances to the next geometry point, returning false at the stream
// terminator or on error. Origin-shift, attribute, frequency, and
// optional-data records are consumed transparently in between.
func (p *PointIterator) Next() bool {
	if p.done {
		return false
	}
	for {
		flag, err := readU8(p.src)
		if err != nil {
			p.fail(&UnexpectedEOFError{Context: "point record flag"})
			return false
		}

		switch {
		case flag == 0x00:
			p.done = true
			return false

		case flag == 0x01:
			dx, dy, err := p.readDelta()
			if err != nil {
				p.fail(err)
				return false
			}
			p.current = Point{
				X:            p.originX + float64(dx)*p.scale,
				Y:            p.originY + float64(dy)*p.scale,
				Name:         p.pending.name,
				HasName:      p.pending.hasName,
				Frequency:    p.pending.freq,
				OptionalData: p.pending.optional,
			}
			p.pending = pendingAttrs{}
			return true

		case flag == 0x81:
			dx, dy, err := p.readDelta()
			if err != nil {
				p.fail(err)
				return false
			}
			p.originX += float64(dx) * p.scale
			p.originY += float64(dy) * p.scale

		case flag >= 0x40 && flag <= 0x7F:
			if !p.pending.isEmpty() {
				p.warnings = append(p.warnings, &RepeatedAttributesWarning{})
			}
			n := int(flag & 0x3F)
			name, err := readString(p.src, n)
			if err != nil {
				p.warnings = append(p.warnings, &TruncatedDataWarning{Context: "attribute name"})
				continue
			}
			p.pending.name = name
			p.pending.hasName = true

		case flag >= 0xC0:
			l := int(flag & 0x3F)
			freqVal, err := readU32(p.src, p.order)
			if err != nil {
				p.warnings = append(p.warnings, &TruncatedDataWarning{Context: "frequency"})
				continue
			}
			label, err := readString(p.src, l)
			if err != nil {
				p.warnings = append(p.warnings, &TruncatedDataWarning{Context: "frequency label"})
				continue
			}
			p.pending.freq = &Frequency{Value: freqVal, Label: label}

		case flag == 0xA0:
			od, unknown, err := p.readOptionalData()
			if err != nil {
				p.warnings = append(p.warnings, &TruncatedDataWarning{Context: "optional data"})
				continue
			}
			if !unknown {
				p.pending.optional = append(p.pending.optional, od)
			}

		default:
			p.warnings = append(p.warnings, &UnknownRecordWarning{Flag: flag})
			if err := skipBytes(p.src, int64(p.sizeOfPoint-1)); err != nil {
				p.warnings = append(p.warnings, &TruncatedDataWarning{Context: "unknown record"})
				continue
			}
		}
	}
}

func (p *PointIterator) readDelta() (int16, int16, error) {
	dx, err := readI16(p.src, p.order)
	if err != nil {
		return 0, 0, err
	}
	dy, err := readI16(p.src, p.order)
	if err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}

// readOptionalData decodes one 0xA0 record. unknown is true when data_id
// did not match a documented variant; the caller discards od in that case
// and the optional-data run is abandoned (no further bytes are assumed to
// belong to this record).
func (p *PointIterator) readOptionalData() (od OptionalData, unknown bool, err error) {
	dataID, err := readU8(p.src)
	if err != nil {
		return nil, false, err
	}
	b1, err := readU8(p.src)
	if err != nil {
		return nil, false, err
	}
	b2, err := readU8(p.src)
	if err != nil {
		return nil, false, err
	}
	b3, err := readU8(p.src)
	if err != nil {
		return nil, false, err
	}

	switch dataID {
	case 0:
		s, err := readString(p.src, int(b3))
		return ICAOCode(s), false, err
	case 1:
		v := uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
		return SecondaryFrequency(v), false, nil
	case 2:
		n := int(b2)<<8 | int(b3)
		s, err := readString(p.src, n)
		return ExceptionRules(s), false, err
	case 3:
		n := int(b2)<<8 | int(b3)
		s, err := readString(p.src, n)
		return NotamRemarks(s), false, err
	case 4:
		s, err := readString(p.src, int(b3))
		return NotamIdentifier(s), false, err
	case 5:
		b4, err := readU8(p.src)
		if err != nil {
			return nil, false, err
		}
		v := (uint32(b1)<<16|uint32(b2)<<8|uint32(b3))<<8 | uint32(b4)
		return NotamInsertTime(v), false, nil
	default:
		p.warnings = append(p.warnings, &UnknownOptionalDataWarning{ID: dataID})
		return nil, true, nil
	}
}

func (p *PointIterator) fail(err error) {
	p.err = err
	p.done = true
}

// Point returns the most recently decoded point. Valid only after a call
// to Next that returned true.
func (p *PointIterator) Point() Point { return p.current }

// Err returns the error that stopped iteration, or nil if iteration ended
// at the stream terminator.
func (p *PointIterator) Err() error { return p.err }

// Warnings returns every warning accumulated so far.
func (p *PointIterator) Warnings() []Warning { return p.warnings }
