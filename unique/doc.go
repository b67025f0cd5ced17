// Package unique
// Author: momentics <momentics@gmail.com>
//
// Exclusive-ownership handles. A Unique owns one value, an Array owns a run
// of values; each destroys what it owns exactly once, on Reset, Close or
// MoveFrom. Handles embed a noCopy marker, so `go vet` rejects accidental
// copies; ownership is transferred with Move.
//
// Handles are not safe for concurrent use.
package unique
