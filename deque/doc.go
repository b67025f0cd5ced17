// Package deque
// Author: momentics <momentics@gmail.com>
//
// A double-ended queue stored in fixed-size blocks.
//
// # Layout
//
// Elements live in blocks of BlockSize slots. A growable map of block
// pointers addresses the blocks; the live range is [frontBlock, backBlock]
// and the cursors frontPos/backPos mark the first live slot of the front
// block and one past the last live slot of the back block. Element i sits at
//
//	block  frontBlock + (frontPos+i)/BlockSize
//	offset (frontPos+i)%BlockSize
//
// An empty deque parks both cursors at the middle slot of the map's middle
// block, so growth costs the same in either direction.
//
// # Growth
//
// Pushing past the edge of a block takes the adjacent block, reusing one
// left from earlier pops when present. Pushing past the edge of the map
// doubles the map and recentres the live range. Only block pointers move;
// elements are never relocated, so pointers returned by At, Front, Back and
// the Emplace functions stay valid until the element is popped. Iterators
// hold the map itself and are invalidated when it grows.
//
// # Blocks
//
// Blocks come from an api.BlockAllocator, typically a shared pool.Arena.
// Blocks emptied by pops are kept in the map and reused by later pushes;
// Close destroys the elements and gives every block back.
//
// A Deque is not safe for concurrent use.
package deque
