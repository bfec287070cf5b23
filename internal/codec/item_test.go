package codec

import (
	"bytes"
	"testing"
)

func sampleItem() *Item {
	it := &Item{
		Left: 0, Top: 1, Right: 1, Bottom: 0,
		MinAlt: 0, MaxAlt: 5000,
		PointsOffset: 14,
		TimeOut:      0,
	}
	it.SetStyleClass(StyleCTR, ClassD)
	it.SetAltStyles(AltStyleAGL, AltStyleFL)
	it.SetExtendedType(ExtendedTypeGliderSite)
	return it
}

func TestItemRoundTripCanonicalStride(t *testing.T) {
	item := sampleItem()
	var buf bytes.Buffer
	if err := WriteItem(&buf, LittleEndian, 43, item); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 43 {
		t.Fatalf("got %d bytes, want 43", buf.Len())
	}

	got, warnings, err := ReadItem(bytes.NewReader(buf.Bytes()), LittleEndian, 43)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if got.Style() != StyleCTR || got.Class() != ClassD {
		t.Errorf("got style=%v class=%v, want CTR/D", got.Style(), got.Class())
	}
	if got.PointsOffset != item.PointsOffset || got.MaxAlt != item.MaxAlt {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.ExtendedType() != ExtendedTypeGliderSite {
		t.Errorf("got extended type %v, want glider-site", got.ExtendedType())
	}
}

func TestItemOversizedStridePreservesPadding(t *testing.T) {
	item := sampleItem()
	const stride = int32(48) // 43 + 5 bytes of trailing padding
	var buf bytes.Buffer
	if err := WriteItem(&buf, LittleEndian, stride, item); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != int(stride) {
		t.Fatalf("got %d bytes, want %d", buf.Len(), stride)
	}

	r := bytes.NewReader(buf.Bytes())
	got, _, err := ReadItem(r, LittleEndian, stride)
	if err != nil {
		t.Fatal(err)
	}
	if got.PointsOffset != item.PointsOffset {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	pos, _ := r.Seek(0, 1)
	if pos != int64(stride) {
		t.Errorf("reader left at %d, want %d (start of next record)", pos, stride)
	}
}

func TestItemMinimumStrideTruncatesPayload(t *testing.T) {
	item := sampleItem()
	const stride = int32(42) // the documented minimum, one byte short of the 43-byte field layout
	var buf bytes.Buffer
	if err := WriteItem(&buf, LittleEndian, stride, item); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != int(stride) {
		t.Fatalf("got %d bytes, want %d (no padding beyond the declared stride)", buf.Len(), stride)
	}

	r := bytes.NewReader(buf.Bytes())
	got, _, err := ReadItem(r, LittleEndian, stride)
	if err != nil {
		t.Fatal(err)
	}
	if got.PointsOffset != item.PointsOffset || got.MaxAlt != item.MaxAlt {
		t.Errorf("round trip mismatch within the 42-byte prefix: got %+v", got)
	}
	// extended_type_byte is the 43rd byte; it does not fit in a 42-byte
	// stride and is lost on the wire (the reader zero-pads the missing
	// byte, decoding it as ExtendedTypeNone), not merely on this side's
	// decode.
	if got.ExtendedType() != ExtendedTypeNone {
		t.Errorf("got extended type %v, want none (byte truncated away)", got.ExtendedType())
	}
	pos, _ := r.Seek(0, 1)
	if pos != int64(stride) {
		t.Errorf("reader left at %d, want %d (start of next record)", pos, stride)
	}
}

func TestItemTableTwoRecordsInSequence(t *testing.T) {
	item1 := sampleItem()
	item2 := sampleItem()
	item2.PointsOffset = 28

	var buf bytes.Buffer
	if err := WriteItem(&buf, LittleEndian, 43, item1); err != nil {
		t.Fatal(err)
	}
	if err := WriteItem(&buf, LittleEndian, 43, item2); err != nil {
		t.Fatal(err)
	}

	r := bytes.NewReader(buf.Bytes())
	got1, _, err := ReadItem(r, LittleEndian, 43)
	if err != nil {
		t.Fatal(err)
	}
	got2, _, err := ReadItem(r, LittleEndian, 43)
	if err != nil {
		t.Fatal(err)
	}
	if got1.PointsOffset != 14 || got2.PointsOffset != 28 {
		t.Errorf("got offsets %d, %d, want 14, 28", got1.PointsOffset, got2.PointsOffset)
	}
}

func TestItemMinAltMaxAltStyles(t *testing.T) {
	item := sampleItem()
	var warnings []Warning
	if got := item.MinAltStyle(&warnings); got != AltStyleAGL {
		t.Errorf("got min alt style %v, want AGL", got)
	}
	if got := item.MaxAltStyle(&warnings); got != AltStyleFL {
		t.Errorf("got max alt style %v, want FL", got)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}
