package cub

import (
	"github.com/Turbo87/seeyou-cub/internal/codec"
	"github.com/dhconnelly/rtreego"
)

// spatialIndex provides O(log n) bounding-box queries over a file's items
// using an R-tree, mirroring the teacher's ChartIndex/spatialIndex
// wrapper: a rtreego.Spatial adapter plus a thin query method.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedItem wraps a decoded item for R-tree storage.
type indexedItem struct {
	item *codec.Item
}

// Bounds implements rtreego.Spatial. Degenerate (zero-area) boxes are
// nudged to a minimum size since the R-tree requires non-zero dimensions.
func (ii *indexedItem) Bounds() rtreego.Rect {
	const epsilon = 1e-9
	minX, maxX := minmax(float64(ii.item.Left), float64(ii.item.Right))
	minY, maxY := minmax(float64(ii.item.Bottom), float64(ii.item.Top))

	width := maxX - minX
	height := maxY - minY
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}

	point := rtreego.Point{minX, minY}
	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

func minmax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// buildSpatialIndex constructs an R-tree over every item's bounding box.
// Parameters (2 dimensions, min 25, max 50 children) mirror the teacher's
// chart index, a reasonable default absent any file-size-specific tuning.
func (f *File) buildSpatialIndex() {
	if len(f.items) == 0 {
		return
	}
	rtree := rtreego.NewTree(2, 25, 50)
	for _, item := range f.items {
		rtree.Insert(&indexedItem{item: item})
	}
	f.spatial = &spatialIndex{rtree: rtree}
}

// query returns every item whose bounding box intersects b.
func (si *spatialIndex) query(b Bounds) []*codec.Item {
	minX, maxX := minmax(b.Left, b.Right)
	minY, maxY := minmax(b.Bottom, b.Top)
	point := rtreego.Point{minX, minY}
	rect, err := rtreego.NewRect(point, []float64{maxX - minX, maxY - minY})
	if err != nil {
		return nil
	}

	spatials := si.rtree.SearchIntersect(rect)
	out := make([]*codec.Item, 0, len(spatials))
	for _, sp := range spatials {
		if ii, ok := sp.(*indexedItem); ok {
			out = append(out, ii.item)
		}
	}
	return out
}
