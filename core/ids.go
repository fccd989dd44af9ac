package core

// ElementID is a dense, internal identifier for one identifier of the
// universe. It is strictly 32-bit to index roaring bitmaps directly.
type ElementID uint32

// MaxElementID is the maximum possible value for an ElementID.
const MaxElementID = ^ElementID(0)
