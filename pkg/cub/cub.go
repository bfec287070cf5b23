package cub

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/Turbo87/seeyou-cub/internal/codec"
)

// ErrIteratorInUse is returned by Points when a previously returned
// PointReader for this File has not yet been closed. The point stream
// borrows the File's shared seek cursor exclusively; see §5.
var ErrIteratorInUse = errors.New("cub: a point reader is already active on this file")

// Source is what Open needs from its caller: positioned reads. *os.File
// and bytes.Reader both satisfy it.
type Source interface {
	io.Reader
	io.Seeker
}

// File is a decoded CUB file: its header and item table in memory, plus a
// handle on the underlying source for lazy point-stream access.
//
// The point stream borrows File's source exclusively for the lifetime of
// one PointReader — see Points.
type File struct {
	src    Source
	header *codec.Header
	items  []*codec.Item

	mu     sync.Mutex
	inUse  bool
	bounds Bounds

	spatial *spatialIndex
}

// Open decodes a CUB file's header and item table from src. It returns
// accumulated non-fatal warnings alongside the handle; callers decide
// whether any warning should be treated as fatal.
func Open(src Source) (*File, []error, error) {
	var warnings []error

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("cub: seek to header: %w", err)
	}
	header, hw, err := codec.ReadHeader(src)
	if err != nil {
		return nil, nil, err
	}
	appendWarnings(&warnings, hw)

	if _, err := src.Seek(int64(header.ItemTableOffset), io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("cub: seek to item table: %w", err)
	}

	items := make([]*codec.Item, 0, header.ItemCount)
	for i := int32(0); i < header.ItemCount; i++ {
		item, iw, err := codec.ReadItem(src, header.ByteOrder, header.SizeOfItem)
		if err != nil {
			return nil, nil, fmt.Errorf("cub: item %d: %w", i, err)
		}
		appendWarnings(&warnings, iw)
		items = append(items, item)
	}

	f := &File{
		src:    src,
		header: header,
		items:  items,
		bounds: Bounds{Left: float64(header.Left), Top: float64(header.Top), Right: float64(header.Right), Bottom: float64(header.Bottom)},
	}
	f.buildSpatialIndex()
	return f, warnings, nil
}

// Header returns the decoded file-level metadata.
func (f *File) Header() Header {
	return Header{
		Title:      f.header.Title,
		CRC32:      f.header.CRC32,
		Bounds:     f.bounds,
		CoordScale: f.header.CoordScale,
		ItemCount:  f.header.ItemCount,
		MaxPoints:  f.header.MaxPoints,
	}
}

// Items returns every decoded airspace in file order.
func (f *File) Items() []*Item {
	out := make([]*Item, len(f.items))
	for i, it := range f.items {
		out[i] = wrapItem(it)
	}
	return out
}

// Query returns every item whose bounding box intersects b, using the
// R-tree spatial index built at Open time.
func (f *File) Query(b Bounds) []*Item {
	if f.spatial == nil {
		return nil
	}
	matches := f.spatial.query(b)
	out := make([]*Item, len(matches))
	for i, it := range matches {
		out[i] = wrapItem(it)
	}
	return out
}

func wrapItem(it *codec.Item) *Item {
	return &Item{
		inner:            it,
		Bounds:           Bounds{Left: float64(it.Left), Top: float64(it.Top), Right: float64(it.Right), Bottom: float64(it.Bottom)},
		MinAlt:           it.MinAlt,
		MaxAlt:           it.MaxAlt,
		TimeOut:          it.TimeOut,
		ExtendedTypeByte: it.ExtendedTypeByte,
	}
}

// PointReader streams one item's point data. It is returned by File.Points
// and must be closed (via Close, or by draining Next to exhaustion/error)
// to release its exclusive borrow on the underlying File.
type PointReader struct {
	file *codec.PointIterator
	f    *File
	done bool
}

// Points starts streaming item's point data. It borrows f's source
// exclusively until the returned PointReader is closed; calling Points
// again before that returns ErrIteratorInUse.
func (f *File) Points(item *Item) (*PointReader, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inUse {
		return nil, ErrIteratorInUse
	}

	startOffset := int64(f.header.PointDataOffset) + int64(item.inner.PointsOffset)
	originX := float64(item.inner.Left)
	originY := float64(item.inner.Bottom)

	it, err := codec.NewPointIterator(f.src, f.header.ByteOrder, f.header.SizeOfPoint, f.header.CoordScale, startOffset, originX, originY)
	if err != nil {
		return nil, err
	}
	f.inUse = true
	return &PointReader{file: it, f: f}, nil
}

// Next advances to the next point. See codec.PointIterator.Next.
func (r *PointReader) Next() bool {
	if r.done {
		return false
	}
	ok := r.file.Next()
	if !ok {
		r.Close()
	}
	return ok
}

// Point returns the most recently decoded point.
func (r *PointReader) Point() Point { return r.file.Point() }

// Err returns the error that stopped iteration, if any.
func (r *PointReader) Err() error { return r.file.Err() }

// Warnings returns every warning accumulated so far.
func (r *PointReader) Warnings() []error {
	var out []error
	appendWarnings(&out, r.file.Warnings())
	return out
}

// Close releases the reader's exclusive borrow on its File. Safe to call
// more than once.
func (r *PointReader) Close() error {
	if r.done {
		return nil
	}
	r.done = true
	r.f.mu.Lock()
	r.f.inUse = false
	r.f.mu.Unlock()
	return nil
}

func appendWarnings(dst *[]error, src []codec.Warning) {
	for _, w := range src {
		*dst = append(*dst, w)
	}
}
