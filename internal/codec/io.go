package codec

import (
	"io"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Source is the minimal positioned-read contract the point stream needs:
// sequential reads plus the ability to seek to an item's point data.
type Source interface {
	io.Reader
	io.Seeker
}

func readU8(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readI16(r io.Reader, order ByteOrder) (int16, error) {
	v, err := readU16(r, order)
	return int16(v), err
}

func readU16(r io.Reader, order ByteOrder) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return order.order().Uint16(buf[:]), nil
}

func readI32(r io.Reader, order ByteOrder) (int32, error) {
	v, err := readU32(r, order)
	return int32(v), err
}

func readU32(r io.Reader, order ByteOrder) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return order.order().Uint32(buf[:]), nil
}

func readU64(r io.Reader, order ByteOrder) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return order.order().Uint64(buf[:]), nil
}

// readF32LE reads a 32-bit float. Floating fields are always little-endian
// regardless of the header's byte-order selection.
func readF32LE(r io.Reader) (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	bits := LittleEndian.order().Uint32(buf[:])
	return math.Float32frombits(bits), nil
}

func readBytes(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// readString decodes n bytes as text, trying UTF-8 first and silently
// falling back to Windows-1252 (CP1252) on invalid UTF-8. The fallback is
// silent by contract: CUB's historical encoding is CP1252, and valid UTF-8
// is a strict superset of 7-bit ASCII, so this never masks a real error.
func readString(r io.Reader, n int) (string, error) {
	raw, err := readBytes(r, n)
	if err != nil {
		return "", err
	}
	return decodeText(raw), nil
}

func decodeText(raw []byte) string {
	if utf8Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func utf8Valid(b []byte) bool {
	return utf8.Valid(b)
}

func skipBytes(s io.Seeker, n int64) error {
	if n <= 0 {
		return nil
	}
	_, err := s.Seek(n, io.SeekCurrent)
	return err
}

func writeU8(w io.Writer, v byte) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeI16(w io.Writer, v int16, order ByteOrder) error {
	return writeU16(w, uint16(v), order)
}

func writeU16(w io.Writer, v uint16, order ByteOrder) error {
	var buf [2]byte
	order.order().PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeI32(w io.Writer, v int32, order ByteOrder) error {
	return writeU32(w, uint32(v), order)
}

func writeU32(w io.Writer, v uint32, order ByteOrder) error {
	var buf [4]byte
	order.order().PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeU64(w io.Writer, v uint64, order ByteOrder) error {
	var buf [8]byte
	order.order().PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeF32LE(w io.Writer, v float32) error {
	var buf [4]byte
	LittleEndian.order().PutUint32(buf[:], math.Float32bits(v))
	_, err := w.Write(buf[:])
	return err
}

// writeFixedText writes s as UTF-8, right-padded with nulls to exactly n
// bytes. s is truncated if its UTF-8 encoding is longer than n.
func writeFixedText(w io.Writer, s string, n int) error {
	buf := make([]byte, n)
	copy(buf, s)
	_, err := w.Write(buf)
	return err
}
