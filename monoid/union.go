package monoid

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Union merges roaring bitmaps. Zero is an empty bitmap; Add returns a new
// bitmap and never modifies its arguments. A nil bitmap counts as empty.
//
// A segment tree over Union answers "which ids occur anywhere in items i…j".
type Union struct{}

func (Union) Zero() *roaring.Bitmap { return roaring.New() }

func (Union) Add(left, right *roaring.Bitmap) *roaring.Bitmap {
	switch {
	case left == nil && right == nil:
		return roaring.New()
	case left == nil:
		return right.Clone()
	case right == nil:
		return left.Clone()
	}
	return roaring.Or(left, right)
}

// BitmapEqual compares two bitmaps by content, treating nil as empty. It is
// suitable for segtree.Config.Equal.
func BitmapEqual(a, b *roaring.Bitmap) bool {
	switch {
	case a == nil:
		return b == nil || b.IsEmpty()
	case b == nil:
		return a.IsEmpty()
	}
	return a.Equals(b)
}
