// Package puzzle holds the pieces of one puzzle instance and the drag/snap
// state machine that moves them.
//
// A [Board] is created from a [layout.Layout]; every piece starts unplaced at
// a random scatter position. The board is either idle or dragging exactly one
// piece:
//
//	Idle --Grab/Press--> Dragging --Move--> Dragging --Release--> Idle
//
// On release a piece whose top-left corner lies closer than the snap
// threshold to its correct position is moved there exactly and becomes
// placed. Placement is terminal: grabbing a placed piece does nothing.
//
// When the last piece is placed the release reports a victory. The victory
// latch guarantees it is reported once per board, however many times the
// complete state is observed afterwards.
//
// Boards are not safe for concurrent use; they are driven from a single
// event loop.
package puzzle
