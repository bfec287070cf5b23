package codec

import (
	"io"
	"math"
)

func mathFloat32(bits uint32) float32  { return math.Float32frombits(bits) }
func mathFloat32Bits(f float32) uint32 { return math.Float32bits(f) }

// itemPayloadSize is the number of documented fields actually decoded from
// each item record, regardless of the header's declared size_of_item.
//
// §3 states the minimum stride as 42 bytes but documents fields summing to
// 43 (16 bbox + 1 type_byte + 1 alt_style_byte + 2 min_alt + 2 max_alt + 4
// points_offset + 4 time_out + 4 extra_data + 8 active_time + 1
// extended_type_byte). This mirrors an analogous inconsistency in the
// original implementation (a MIN_SIZE_OF_ITEM constant of 26 next to an
// actual 43-byte read), and is resolved the same way here: the documented
// 42-byte figure is kept only as the OversizedRecord warning threshold,
// while decoding always targets the full 43-byte payload, zero-padding any
// shortfall between a too-small declared stride and 43.
const itemPayloadSize = 43

// Item is the decoded fixed-prefix portion of one item-table record.
type Item struct {
	Left, Top, Right, Bottom float32
	TypeByte                 byte
	AltStyleByte             byte
	MinAlt                   int16
	MaxAlt                   int16
	PointsOffset             int32
	TimeOut                  int32
	ExtraDataRaw             uint32
	ActiveTimeRaw            uint64
	ExtendedTypeByte         byte
}

// ReadItem decodes one item-table record of stride. r must be positioned
// at the record's first byte; on return it is positioned at the start of
// the next record (stride bytes later), regardless of how many payload
// bytes were actually consumed.
func ReadItem(r io.ReadSeeker, order ByteOrder, stride int32) (*Item, []Warning, error) {
	var warnings []Warning
	recordStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "item"}
	}

	payloadLen := stride
	if payloadLen > itemPayloadSize {
		payloadLen = itemPayloadSize
	}
	buf := make([]byte, itemPayloadSize)
	if payloadLen > 0 {
		n, err := io.ReadFull(r, buf[:payloadLen])
		if err != nil {
			if n == 0 && err == io.EOF {
				return nil, nil, io.EOF
			}
			return nil, nil, &UnexpectedEOFError{Context: "item"}
		}
	}

	item := decodeItemPayload(buf, order)

	if _, err := r.Seek(recordStart+int64(stride), io.SeekStart); err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "item"}
	}
	return item, warnings, nil
}

// decodeItemPayload reads the 43-byte documented field layout from buf at
// fixed offsets, following the wire order in §3. buf must be exactly
// itemPayloadSize bytes; ReadItem guarantees this by zero-padding short
// reads.
func decodeItemPayload(buf []byte, order ByteOrder) *Item {
	le := LittleEndian.order()
	bo := order.order()

	return &Item{
		Left:             mathFloat32(le.Uint32(buf[0:4])),
		Top:              mathFloat32(le.Uint32(buf[4:8])),
		Right:            mathFloat32(le.Uint32(buf[8:12])),
		Bottom:           mathFloat32(le.Uint32(buf[12:16])),
		TypeByte:         buf[16],
		AltStyleByte:     buf[17],
		MinAlt:           int16(bo.Uint16(buf[18:20])),
		MaxAlt:           int16(bo.Uint16(buf[20:22])),
		PointsOffset:     int32(bo.Uint32(buf[22:26])),
		TimeOut:          int32(bo.Uint32(buf[26:30])),
		ExtraDataRaw:     bo.Uint32(buf[30:34]),
		ActiveTimeRaw:    bo.Uint64(buf[34:42]),
		ExtendedTypeByte: buf[42],
	}
}

// WriteItem encodes item's documented payload, truncated to min(stride, 43)
// bytes to match the reader's symmetric clamp in ReadItem, followed by
// stride-43 zero padding bytes when stride exceeds the payload.
func WriteItem(w io.Writer, order ByteOrder, stride int32, item *Item) error {
	buf := make([]byte, itemPayloadSize)
	le := LittleEndian.order()
	bo := order.order()

	le.PutUint32(buf[0:4], mathFloat32Bits(item.Left))
	le.PutUint32(buf[4:8], mathFloat32Bits(item.Top))
	le.PutUint32(buf[8:12], mathFloat32Bits(item.Right))
	le.PutUint32(buf[12:16], mathFloat32Bits(item.Bottom))
	buf[16] = item.TypeByte
	buf[17] = item.AltStyleByte
	bo.PutUint16(buf[18:20], uint16(item.MinAlt))
	bo.PutUint16(buf[20:22], uint16(item.MaxAlt))
	bo.PutUint32(buf[22:26], uint32(item.PointsOffset))
	bo.PutUint32(buf[26:30], uint32(item.TimeOut))
	bo.PutUint32(buf[30:34], item.ExtraDataRaw)
	bo.PutUint64(buf[34:42], item.ActiveTimeRaw)
	buf[42] = item.ExtendedTypeByte

	payloadLen := int(stride)
	if payloadLen > itemPayloadSize {
		payloadLen = itemPayloadSize
	}
	if payloadLen < 0 {
		payloadLen = 0
	}
	if _, err := w.Write(buf[:payloadLen]); err != nil {
		return err
	}
	if pad := int(stride) - payloadLen; pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return err
		}
	}
	return nil
}

// Style returns the decoded regulatory style.
func (it *Item) Style() Style { return decodeStyle(it.TypeByte) }

// Class returns the decoded ICAO airspace class.
func (it *Item) Class() Class { return decodeClass(it.TypeByte) }

// MinAltStyle returns the altitude reference for MinAlt (low nibble of
// alt_style_byte).
func (it *Item) MinAltStyle(warnings *[]Warning) AltStyle {
	return decodeAltStyle(it.AltStyleByte&0x0F, "alt_style_byte.min", warnings)
}

// MaxAltStyle returns the altitude reference for MaxAlt (high nibble of
// alt_style_byte).
func (it *Item) MaxAltStyle(warnings *[]Warning) AltStyle {
	return decodeAltStyle((it.AltStyleByte>>4)&0x0F, "alt_style_byte.max", warnings)
}

// ExtendedType returns the decoded extended classification.
func (it *Item) ExtendedType() ExtendedType { return decodeExtendedType(it.ExtendedTypeByte) }

// ExtraData returns the tagged view of ExtraDataRaw.
func (it *Item) ExtraData() ExtraData { return decodeExtraData(it.ExtraDataRaw) }

// ActiveTime returns the decoded view of ActiveTimeRaw.
func (it *Item) ActiveTime() ActiveTime { return decodeActiveTime(it.ActiveTimeRaw) }

// SetStyleClass packs style and class back into TypeByte.
func (it *Item) SetStyleClass(s Style, c Class) {
	it.TypeByte = encodeStyle(s) | encodeClass(c)
}

// SetAltStyles packs the min/max altitude references back into
// AltStyleByte.
func (it *Item) SetAltStyles(min, max AltStyle) {
	it.AltStyleByte = encodeAltStyle(min) | (encodeAltStyle(max) << 4)
}

// SetExtendedType packs t back into ExtendedTypeByte.
func (it *Item) SetExtendedType(t ExtendedType) {
	it.ExtendedTypeByte = encodeExtendedType(t)
}
