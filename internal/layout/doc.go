// Package layout holds the geometry and sizing model shared by every element
// in the panels tree.
//
// It has no notion of a tree. [Size], [Point], [Rect] and [Thickness] are
// immutable value types; [GridLength] and [Definition] describe Grid tracks and
// [ResolveTracks] turns a track list plus an available extent into final track
// sizes. Types are re-exported through the root panels package for public
// consumption.
package layout
