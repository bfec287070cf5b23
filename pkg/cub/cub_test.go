package cub

import (
	"bytes"
	"testing"
)

func sampleAirspaces() []Airspace {
	return []Airspace{
		{
			Title: "Zurich CTR",
			Style: StyleCTR,
			Class: ClassD,
			MinAlt: 0, MaxAlt: 5000,
			Points: []Point{
				{X: 8.50, Y: 47.40},
				{X: 8.60, Y: 47.40, HasName: true, Name: "LSZH"},
				{X: 8.60, Y: 47.50},
				{X: 8.50, Y: 47.50},
			},
		},
		{
			Title: "Alps TMA",
			Style: StyleTMA,
			Class: ClassC,
			MinAlt: 3000, MaxAlt: 10000,
			Points: []Point{
				{X: 9.0, Y: 46.0},
				{X: 9.5, Y: 46.0},
				{X: 9.5, Y: 46.5},
			},
		},
	}
}

func TestOpenRoundTripsWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "Round Trip Test", LittleEndian, sampleAirspaces()); err != nil {
		t.Fatal(err)
	}

	f, warnings, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	header := f.Header()
	if header.Title != "Round Trip Test" {
		t.Errorf("got title %q", header.Title)
	}
	if header.ItemCount != 2 {
		t.Fatalf("got %d items, want 2", header.ItemCount)
	}

	items := f.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Style() != StyleCTR || items[0].Class() != ClassD {
		t.Errorf("got style=%v class=%v, want CTR/D", items[0].Style(), items[0].Class())
	}
	if items[1].Style() != StyleTMA || items[1].Class() != ClassC {
		t.Errorf("got style=%v class=%v, want TMA/C", items[1].Style(), items[1].Class())
	}
}

func TestPointsStreamsGeometryAndAttributes(t *testing.T) {
	var buf bytes.Buffer
	airspaces := sampleAirspaces()
	if err := Write(&buf, "Points Test", LittleEndian, airspaces); err != nil {
		t.Fatal(err)
	}

	f, _, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	items := f.Items()

	r, err := f.Points(items[0])
	if err != nil {
		t.Fatal(err)
	}
	var got []Point
	for r.Next() {
		got = append(got, r.Point())
	}
	if r.Err() != nil {
		t.Fatal(r.Err())
	}
	if len(got) != len(airspaces[0].Points) {
		t.Fatalf("got %d points, want %d", len(got), len(airspaces[0].Points))
	}
	if !got[1].HasName || got[1].Name != "LSZH" {
		t.Errorf("got point 1 name %q hasName=%v, want LSZH", got[1].Name, got[1].HasName)
	}
}

func TestPointsBorrowExclusivity(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "Borrow Test", LittleEndian, sampleAirspaces()); err != nil {
		t.Fatal(err)
	}
	f, _, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	items := f.Items()

	r1, err := f.Points(items[0])
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Points(items[1]); err != ErrIteratorInUse {
		t.Errorf("got %v, want ErrIteratorInUse", err)
	}
	if err := r1.Close(); err != nil {
		t.Fatal(err)
	}

	r2, err := f.Points(items[1])
	if err != nil {
		t.Fatalf("expected Points to succeed after Close, got %v", err)
	}
	_ = r2.Close()
}

func TestPointsBorrowReleasedOnExhaustion(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "Exhaustion Test", LittleEndian, sampleAirspaces()); err != nil {
		t.Fatal(err)
	}
	f, _, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	items := f.Items()

	r, err := f.Points(items[0])
	if err != nil {
		t.Fatal(err)
	}
	for r.Next() {
	}
	if r.Err() != nil {
		t.Fatal(r.Err())
	}

	if _, err := f.Points(items[1]); err != nil {
		t.Errorf("expected borrow to be released after exhaustion, got %v", err)
	}
}

func TestOpenInvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "Bad Magic", LittleEndian, sampleAirspaces()); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	data[0] = 0xFF
	_, _, err := Open(bytes.NewReader(data))
	if err == nil {
		t.Error("expected an error for corrupted magic")
	}
}

func TestOpenEmptyAirspaceList(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "Empty", LittleEndian, nil); err != nil {
		t.Fatal(err)
	}
	f, _, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Items()) != 0 {
		t.Errorf("got %d items, want 0", len(f.Items()))
	}
}
