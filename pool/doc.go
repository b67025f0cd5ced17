// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size chunk reuse for the segmented deque and any other owner of
// equally sized blocks.
//
// # Tiers
//
// An Arena serves Get from three places, in order:
//
//  1. a bounded spare list on a lock-free MPMC queue,
//  2. an overflow SyncPool that the garbage collector may empty at any time,
//  3. a fresh new(B).
//
// Put zeroes the chunk and parks it in the spare list, spilling to the
// overflow pool when the list is full. Every chunk handed out is therefore
// zeroed, whichever tier it came from.
//
// # Concurrency
//
// Arena methods are safe for concurrent use, so several deques may share one
// arena. A chunk itself is owned by exactly one caller between Get and Put.
package pool
