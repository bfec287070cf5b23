package codec

import (
	"io"
)

// headerSize is the fixed on-disk size of the header record.
const headerSize = 210

// magicValue is the only accepted value of the header's magic field,
// always stored little-endian regardless of pc_byte_order.
const magicValue uint32 = 0x425543C2

const (
	minSizeOfItemDefined  = 42
	minSizeOfPointDefined = 5
)

// Header is the decoded 210-byte file prefix. Fields keep their wire names;
// ByteOrder is derived, not stored on disk.
type Header struct {
	Title           string
	AllowedSerials  [8]uint16
	ByteOrder       ByteOrder
	IsSecured       byte
	CRC32           uint32
	Key             [16]byte
	SizeOfItem      int32
	SizeOfPoint     int32
	ItemCount       int32
	MaxPoints       int32
	Left            float32
	Top             float32
	Right           float32
	Bottom          float32
	MaxWidth        float32
	MaxHeight       float32
	CoordScale      float32
	ItemTableOffset int32
	PointDataOffset int32
	Alignment       int32
}

// ReadHeader decodes the fixed 210-byte header prefix from r, which must be
// positioned at offset 0. The allowed_serials field (offsets 116-131)
// precedes the byte-order flag (offset 132) on the wire, so it is read
// provisionally as little-endian; if the flag then selects big-endian, r is
// rewound and the field is re-decoded in the correct order. Every field
// read afterward uses the determined order; floats are always
// little-endian.
func ReadHeader(r io.ReadSeeker) (*Header, []Warning, error) {
	var warnings []Warning

	magic, err := readU32(r, LittleEndian)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "magic"}
	}
	if magic != magicValue {
		return nil, nil, ErrInvalidMagic
	}

	title, err := readString(r, 112)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "title"}
	}
	title = trimNull(title)

	serialsOffset, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "allowed_serials"}
	}
	provisional, err := readSerials(r, LittleEndian)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "allowed_serials"}
	}

	flag, err := readU8(r)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "pc_byte_order"}
	}
	order := byteOrderFromFlag(flag)

	serials := provisional
	if order == BigEndian {
		if _, err := r.Seek(serialsOffset, io.SeekStart); err != nil {
			return nil, nil, &UnexpectedEOFError{Context: "allowed_serials"}
		}
		serials, err = readSerials(r, BigEndian)
		if err != nil {
			return nil, nil, &UnexpectedEOFError{Context: "allowed_serials"}
		}
		if _, err := r.Seek(1, io.SeekCurrent); err != nil { // re-skip pc_byte_order
			return nil, nil, &UnexpectedEOFError{Context: "pc_byte_order"}
		}
	}

	isSecured, err := readU8(r)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "is_secured"}
	}
	if isSecured != 0 {
		return nil, nil, ErrEncrypted
	}

	crc32, err := readU32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "crc32"}
	}

	key, err := readBytes(r, 16)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "key"}
	}
	var keyArr [16]byte
	copy(keyArr[:], key)

	sizeOfItem, err := readI32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "size_of_item"}
	}
	if sizeOfItem < minSizeOfItemDefined {
		warnings = append(warnings, &OversizedRecordWarning{Declared: sizeOfItem, Minimum: minSizeOfItemDefined})
		sizeOfItem = minSizeOfItemDefined
	}

	sizeOfPoint, err := readI32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "size_of_point"}
	}
	if sizeOfPoint < minSizeOfPointDefined {
		warnings = append(warnings, &OversizedRecordWarning{Declared: sizeOfPoint, Minimum: minSizeOfPointDefined})
		sizeOfPoint = minSizeOfPointDefined
	}

	itemCount, err := readI32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "item_count"}
	}
	maxPoints, err := readI32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "max_points"}
	}

	floats := make([]float32, 7)
	for i := range floats {
		floats[i], err = readF32LE(r)
		if err != nil {
			return nil, nil, &UnexpectedEOFError{Context: "bbox/scale"}
		}
	}

	itemTableOffset, err := readI32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "item_table_offset"}
	}
	pointDataOffset, err := readI32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "point_data_offset"}
	}
	alignment, err := readI32(r, order)
	if err != nil {
		return nil, nil, &UnexpectedEOFError{Context: "alignment"}
	}

	h := &Header{
		Title:           title,
		AllowedSerials:  serials,
		ByteOrder:       order,
		IsSecured:       isSecured,
		CRC32:           crc32,
		Key:             keyArr,
		SizeOfItem:      sizeOfItem,
		SizeOfPoint:     sizeOfPoint,
		ItemCount:       itemCount,
		MaxPoints:       maxPoints,
		Left:            floats[0],
		Top:             floats[1],
		Right:           floats[2],
		Bottom:          floats[3],
		MaxWidth:        floats[4],
		MaxHeight:       floats[5],
		CoordScale:      floats[6],
		ItemTableOffset: itemTableOffset,
		PointDataOffset: pointDataOffset,
		Alignment:       alignment,
	}
	return h, warnings, nil
}

func readSerials(r io.Reader, order ByteOrder) ([8]uint16, error) {
	var out [8]uint16
	for i := range out {
		v, err := readU16(r, order)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func trimNull(s string) string {
	if i := indexNull(s); i >= 0 {
		return s[:i]
	}
	return s
}

func indexNull(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return -1
}

// WriteHeader encodes h as the canonical 210-byte prefix, using h.ByteOrder
// for every selected-order field and little-endian for floats.
func WriteHeader(w io.Writer, h *Header) error {
	if err := writeU32(w, magicValue, LittleEndian); err != nil {
		return err
	}
	if err := writeFixedText(w, h.Title, 112); err != nil {
		return err
	}
	for _, v := range h.AllowedSerials {
		if err := writeU16(w, v, h.ByteOrder); err != nil {
			return err
		}
	}
	orderFlag := byte(1)
	if h.ByteOrder == BigEndian {
		orderFlag = 0
	}
	if err := writeU8(w, orderFlag); err != nil {
		return err
	}
	if err := writeU8(w, h.IsSecured); err != nil {
		return err
	}
	if err := writeU32(w, h.CRC32, h.ByteOrder); err != nil {
		return err
	}
	if _, err := w.Write(h.Key[:]); err != nil {
		return err
	}
	if err := writeI32(w, h.SizeOfItem, h.ByteOrder); err != nil {
		return err
	}
	if err := writeI32(w, h.SizeOfPoint, h.ByteOrder); err != nil {
		return err
	}
	if err := writeI32(w, h.ItemCount, h.ByteOrder); err != nil {
		return err
	}
	if err := writeI32(w, h.MaxPoints, h.ByteOrder); err != nil {
		return err
	}
	floats := []float32{h.Left, h.Top, h.Right, h.Bottom, h.MaxWidth, h.MaxHeight, h.CoordScale}
	for _, f := range floats {
		if err := writeF32LE(w, f); err != nil {
			return err
		}
	}
	if err := writeI32(w, h.ItemTableOffset, h.ByteOrder); err != nil {
		return err
	}
	if err := writeI32(w, h.PointDataOffset, h.ByteOrder); err != nil {
		return err
	}
	return writeI32(w, h.Alignment, h.ByteOrder)
}
