// Package shared
// Author: momentics <momentics@gmail.com>
//
// Reference-counted shared ownership.
//
// Every Shared handle that refers to one value shares a single control
// block holding an atomic reference count. Two block layouts exist:
//
//   - separate: created by New from a pointer the caller allocated; the
//     block only records the pointer.
//   - inline: created by Make/MakeWith; the value lives inside the block,
//     so one allocation serves both.
//
// When the count drops from one to zero the block first destroys the value
// (api.Disposable hook, slot zeroed) and then releases its own storage.
// Exactly one goroutine observes that transition, so handles to the same
// value may be cloned and reset concurrently. The value itself is not
// synchronised.
package shared
