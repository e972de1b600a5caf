package exchangeset

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the side of the box used for zero-width coverage and
// point queries; rtreego rejects rectangles with a zero length.
const pointTolerance = 1e-9

// Index provides fast spatial queries over the coverage of catalogue entries.
//
// Only entries with bounds are indexed. Spatial queries are O(log N) with the
// R-tree, compared to O(N) with linear scan.
//
// Example:
//
//	cat, err := exchangeset.LoadFile("ENC_ROOT/CATALOG.031")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	idx := cat.Index()
//	cells := idx.Query(exchangeset.Bounds{
//	    MinLon: -71.5, MaxLon: -70.5,
//	    MinLat: 42.0, MaxLat: 42.6,
//	})
type Index struct {
	entries []Entry
	rtree   *rtreego.Rtree
}

// indexed adapts an entry to rtreego.Spatial. Entry cannot implement it
// directly because its Bounds field would collide with the method.
type indexed struct {
	entry Entry
	rect  rtreego.Rect
}

func (i *indexed) Bounds() rtreego.Rect {
	return i.rect
}

// NewIndex indexes every entry that has bounds.
func NewIndex(entries []Entry) *Index {
	// Create R-tree (2D, min=25 children, max=50 children)
	rtree := rtreego.NewTree(2, 25, 50)

	idx := &Index{rtree: rtree}
	for _, e := range entries {
		if !e.HasBounds {
			continue
		}
		idx.entries = append(idx.entries, e)
		rtree.Insert(&indexed{entry: e, rect: toRect(e.Bounds)})
	}
	return idx
}

// toRect converts geographic bounds to an R-tree rectangle anchored at the
// southwest corner.
func toRect(b Bounds) rtreego.Rect {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{
		max(b.MaxLon-b.MinLon, pointTolerance),
		max(b.MaxLat-b.MinLat, pointTolerance),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// Query returns the entries whose coverage intersects bounds, sorted by file.
// Coverage that only touches an edge of bounds is included.
func (idx *Index) Query(bounds Bounds) []Entry {
	padded := Bounds{
		MinLon: bounds.MinLon - pointTolerance,
		MaxLon: bounds.MaxLon + pointTolerance,
		MinLat: bounds.MinLat - pointTolerance,
		MaxLat: bounds.MaxLat + pointTolerance,
	}
	return idx.search(toRect(padded), func(e Entry) bool {
		return e.Bounds.Intersects(bounds)
	})
}

// Contains returns the entries whose coverage includes the point, sorted by
// file.
func (idx *Index) Contains(lon, lat float64) []Entry {
	rect := rtreego.Point{lon, lat}.ToRect(pointTolerance)
	return idx.search(rect, func(e Entry) bool {
		return e.Bounds.Contains(lon, lat)
	})
}

// search queries the R-tree and then applies the exact test, since the tree
// rectangles are padded by pointTolerance.
func (idx *Index) search(rect rtreego.Rect, keep func(Entry) bool) []Entry {
	var result []Entry
	for _, spatial := range idx.rtree.SearchIntersect(rect) {
		e := spatial.(*indexed).entry
		if keep(e) {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].File != result[j].File {
			return result[i].File < result[j].File
		}
		return result[i].RecordID < result[j].RecordID
	})
	return result
}

// Count returns the number of indexed entries.
func (idx *Index) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all indexed coverage.
func (idx *Index) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}

	bounds := idx.entries[0].Bounds
	for i := 1; i < len(idx.entries); i++ {
		bounds = bounds.Union(idx.entries[i].Bounds)
	}
	return bounds
}

// All returns the indexed entries in catalogue order.
func (idx *Index) All() []Entry {
	return idx.entries
}
