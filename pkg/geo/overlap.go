package geo

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"vitisense/entities"
)

// minExtent pads degenerate boxes; rtreego rejects zero-length sides.
const minExtent = 1e-9

type farmEntry struct {
	name string
	bbox rtreego.Rect
}

func (e *farmEntry) Bounds() rtreego.Rect { return e.bbox }

// OverlapIndex answers which saved farms have a bounding box intersecting a
// given boundary. Farms without a boundary are not indexed.
type OverlapIndex struct {
	tree *rtreego.Rtree
}

func NewOverlapIndex(farms entities.SavedFarms) *OverlapIndex {
	tree := rtreego.NewTree(2, 2, 8)
	for _, f := range farms {
		if len(f.Boundary) == 0 {
			continue
		}
		bbox, err := rect(f.Boundary)
		if err != nil {
			continue
		}
		tree.Insert(&farmEntry{name: f.Name, bbox: bbox})
	}
	return &OverlapIndex{tree: tree}
}

// Overlapping lists the indexed farms, other than exclude, whose box meets
// the box of b.
func (ix *OverlapIndex) Overlapping(b entities.Boundary, exclude string) []string {
	if len(b) == 0 || ix.tree.Size() == 0 {
		return nil
	}
	bbox, err := rect(b)
	if err != nil {
		return nil
	}
	var names []string
	for _, item := range ix.tree.SearchIntersect(bbox) {
		e := item.(*farmEntry)
		if e.name != exclude {
			names = append(names, e.name)
		}
	}
	sort.Strings(names)
	return names
}

func rect(b entities.Boundary) (rtreego.Rect, error) {
	bound := Bounds(b)
	w := bound.Max.X() - bound.Min.X()
	h := bound.Max.Y() - bound.Min.Y()
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	return rtreego.NewRect(rtreego.Point{bound.Min.X(), bound.Min.Y()}, []float64{w, h})
}
