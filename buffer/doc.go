// Package buffer implements the grapheme-accurate document model for quill.
//
// A Buffer is an ordered list of Lines; a Line is an ordered list of
// Fragments, one per grapheme cluster. Locations are 0-based
// (LineIndex, GraphemeIndex) pairs counted in clusters, never bytes or runes.
//
// Out-of-range locations are not errors: every edit clamps or ignores them.
package buffer
