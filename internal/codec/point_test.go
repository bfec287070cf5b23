package codec

import (
	"bytes"
	"testing"
)

func TestPointIteratorGeometryOnly(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x01)
	writeI16(&buf, 10, LittleEndian)
	writeI16(&buf, 20, LittleEndian)
	buf.WriteByte(0x01)
	writeI16(&buf, -5, LittleEndian)
	writeI16(&buf, 5, LittleEndian)
	buf.WriteByte(0x00)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 0.0001, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	var pts []Point
	for it.Next() {
		pts = append(pts, it.Point())
	}
	if it.Err() != nil {
		t.Fatal(it.Err())
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
	if pts[0].X != 0.001 || pts[0].Y != 0.002 {
		t.Errorf("got point 0 = (%v, %v)", pts[0].X, pts[0].Y)
	}
}

func TestPointIteratorNameFrequencyICAOAttachToNextGeometry(t *testing.T) {
	var buf bytes.Buffer
	name := "Zurich"
	buf.WriteByte(0x40 | byte(len(name)))
	buf.WriteString(name)

	freqLabel := "118.7"
	buf.WriteByte(0xC0 | byte(len(freqLabel)))
	writeU32(&buf, 118700000, LittleEndian)
	buf.WriteString(freqLabel)

	icao := "LSZH"
	buf.WriteByte(0xA0)
	buf.WriteByte(0) // data_id = ICAOCode
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(byte(len(icao)))
	buf.WriteString(icao)

	buf.WriteByte(0x01)
	writeI16(&buf, 0, LittleEndian)
	writeI16(&buf, 0, LittleEndian)
	buf.WriteByte(0x00)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !it.Next() {
		t.Fatal(it.Err())
	}
	p := it.Point()
	if !p.HasName || p.Name != name {
		t.Errorf("got name %q hasName=%v, want %q", p.Name, p.HasName, name)
	}
	if p.Frequency == nil || p.Frequency.Label != freqLabel || p.Frequency.Value != 118700000 {
		t.Errorf("got frequency %+v", p.Frequency)
	}
	if len(p.OptionalData) != 1 || p.OptionalData[0] != ICAOCode(icao) {
		t.Errorf("got optional data %+v", p.OptionalData)
	}
	if it.Next() {
		t.Error("expected exactly one point")
	}
}

func TestPointIteratorOriginShiftChain(t *testing.T) {
	var buf bytes.Buffer
	// two successive shifts, each at the edge of int16 range, then a
	// geometry record relative to the shifted origin.
	buf.WriteByte(0x81)
	writeI16(&buf, 30000, LittleEndian)
	writeI16(&buf, 0, LittleEndian)
	buf.WriteByte(0x81)
	writeI16(&buf, 30000, LittleEndian)
	writeI16(&buf, 0, LittleEndian)
	buf.WriteByte(0x01)
	writeI16(&buf, 100, LittleEndian)
	writeI16(&buf, 0, LittleEndian)
	buf.WriteByte(0x00)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !it.Next() {
		t.Fatal(it.Err())
	}
	p := it.Point()
	if p.X != 60100 {
		t.Errorf("got X=%v, want 60100 (two shifts of 30000 plus delta of 100)", p.X)
	}
}

func TestPointIteratorUnknownOptionalDataWarns(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0xA0)
	buf.WriteByte(99) // undocumented data_id
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0x01)
	writeI16(&buf, 0, LittleEndian)
	writeI16(&buf, 0, LittleEndian)
	buf.WriteByte(0x00)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !it.Next() {
		t.Fatal(it.Err())
	}
	p := it.Point()
	if len(p.OptionalData) != 0 {
		t.Errorf("expected unknown optional data to be dropped, got %+v", p.OptionalData)
	}
	warnings := it.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if _, ok := warnings[0].(*UnknownOptionalDataWarning); !ok {
		t.Errorf("expected *UnknownOptionalDataWarning, got %T", warnings[0])
	}
}

func TestPointIteratorRepeatedAttributesWarns(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x40 | 3)
	buf.WriteString("ABC")
	buf.WriteByte(0x40 | 3)
	buf.WriteString("XYZ")
	buf.WriteByte(0x01)
	writeI16(&buf, 0, LittleEndian)
	writeI16(&buf, 0, LittleEndian)
	buf.WriteByte(0x00)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !it.Next() {
		t.Fatal(it.Err())
	}
	if it.Point().Name != "XYZ" {
		t.Errorf("got name %q, want last-write-wins XYZ", it.Point().Name)
	}
	warnings := it.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if _, ok := warnings[0].(*RepeatedAttributesWarning); !ok {
		t.Errorf("expected *RepeatedAttributesWarning, got %T", warnings[0])
	}
}

func TestPointIteratorUnknownRecordFlagSkipped(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x10) // not in any documented range
	// sizeOfPoint-1 = 4 payload bytes, which the iterator skips.
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0x01)
	writeI16(&buf, 0, LittleEndian)
	writeI16(&buf, 0, LittleEndian)
	buf.WriteByte(0x00)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !it.Next() {
		t.Fatal(it.Err())
	}
	warnings := it.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if _, ok := warnings[0].(*UnknownRecordWarning); !ok {
		t.Errorf("expected *UnknownRecordWarning, got %T", warnings[0])
	}
}

func TestPointIteratorTruncatedFrequencyLabelWarnsAndContinues(t *testing.T) {
	var buf bytes.Buffer
	// Declares a 10-byte label but supplies none — the stream ends right
	// after the frequency value, so decoding continues into a real EOF
	// rather than treating the truncation itself as the terminal error.
	buf.WriteByte(0xC0 | 10)
	writeU32(&buf, 118700000, LittleEndian)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if it.Next() {
		t.Fatal("expected no point: the stream ends before any geometry record")
	}
	warnings := it.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	if _, ok := warnings[0].(*TruncatedDataWarning); !ok {
		t.Errorf("expected *TruncatedDataWarning, got %T", warnings[0])
	}
	// The loop kept going past the warning and only stopped once it hit
	// the genuine end of the stream looking for the next flag byte — Err
	// reports that real EOF distinctly from the recorded warning.
	if _, ok := it.Err().(*UnexpectedEOFError); !ok {
		t.Errorf("expected *UnexpectedEOFError, got %T (%v)", it.Err(), it.Err())
	}
}

func TestPointIteratorEmittedCountMatchesGeometryRecords(t *testing.T) {
	var buf bytes.Buffer
	const n = 5
	for i := 0; i < n; i++ {
		buf.WriteByte(0x01)
		writeI16(&buf, int16(i), LittleEndian)
		writeI16(&buf, int16(i), LittleEndian)
	}
	buf.WriteByte(0x00)

	it, err := NewPointIterator(bytes.NewReader(buf.Bytes()), LittleEndian, 5, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for it.Next() {
		count++
	}
	if count != n {
		t.Errorf("got %d points, want %d", count, n)
	}
}
