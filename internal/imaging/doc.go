// Package imaging provides the boundary collaborators around the
// composition engine: decoding object files, removing their backgrounds,
// trimming transparent margins, resizing individual outputs, and saving
// rasters to disk.
//
// The composition engine itself (package compose) is indifferent to how
// objects are produced; everything here exists to turn files on disk into
// the alpha-masked in-memory images it consumes, and to persist what it
// emits.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Error Handling
//
// Functions return wrapped errors for unreadable or undecodable files.
// Callers that process batches are expected to log and skip failed inputs
// so the composition engine only ever sees valid images.
package imaging
