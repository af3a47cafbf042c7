// Package support stands in for the external collaborators §1 and §6 name
// as out of scope: the user-level support structure Pass-Up-or-Die hands
// control to, and a scripted rig that plays the role of the BIOS, the
// device emulator, and the first process well enough to drive and test the
// nucleus end to end.
package support

import "github.com/harisiqbal10/pandos-phase2/cpuctx"

// Exception classes a Pass-Up-or-Die delivers to, indexing Block's
// ExceptState/ExceptContext arrays.
const (
	ClassPageFault = 0
	ClassGeneral   = 1
	NumClasses     = 2
)

// Context is the handler entry point and stack a support structure
// registers per exception class: the state Pass-Up-or-Die loads in place
// of resuming the faulting instruction.
type Context struct {
	StackPtr uint32
	Status   uint32
	PC       uint32
}

// Block is the user-level support structure referenced by a PCB's Support
// field (§3, §6). A process with a nil Support pointer has none, and any
// exception it cannot handle itself is fatal (Pass-Up-or-Die terminates
// it).
type Block struct {
	// ExceptState receives a copy of the faulting process's saved state
	// on Pass-Up-or-Die, indexed by exception class.
	ExceptState [NumClasses]cpuctx.State

	// ExceptContext is the handler context Pass-Up-or-Die loads after
	// copying ExceptState, indexed by exception class.
	ExceptContext [NumClasses]Context
}
