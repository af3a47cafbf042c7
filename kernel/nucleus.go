// Package kernel holds the nucleus's single piece of global mutable
// state — process count, soft-block count, the ready queue, the current
// process, and the device-semaphore array — encapsulated in one Nucleus
// aggregate, plus the two operations that are defined in terms of that
// whole aggregate rather than any one data structure: Init and Schedule.
package kernel

import (
	"errors"

	"github.com/harisiqbal10/pandos-phase2/asl"
	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// Quantum is the process-local timer's reload value: a 5ms time slice.
const Quantum = 5000

// ClockInterval is the interval timer's reload value: a 100ms pseudo-clock
// tick.
const ClockInterval = devices.IntervalTimerPeriod

// ErrHalt is returned by Schedule when the ready queue is empty and no
// processes remain: normal shutdown.
var ErrHalt = errors.New("kernel: halt")

// ErrWait is returned by Schedule when the ready queue is empty, processes
// are alive, and at least one is soft-blocked: the nucleus should enable
// interrupts and wait.
var ErrWait = errors.New("kernel: wait for interrupt")

// PanicError is raised for conditions the nucleus treats as fatal
// programmer/operator errors rather than process-level faults: deadlock,
// or a resource-pool invariant violated by a caller. It is returned, not
// thrown via Go panic, so driving code (the CLI, tests) can report it
// without a recover().
type PanicError struct {
	Reason string
}

func (e *PanicError) Error() string { return "kernel panic: " + e.Reason }

// Panic constructs a PanicError. Exported so syscalls/except/interrupt can
// raise the same class of fatal condition without importing "errors"
// directly for it.
func Panic(reason string) error { return &PanicError{Reason: reason} }

// Nucleus is the process-wide aggregate holding the ready queue, the
// process/soft-block counters, the current-process slot, and the
// device-semaphore array (Design Notes §9). Its fields are exported: the
// syscalls, interrupt, and except packages mutate them directly, not only
// through Nucleus's own methods.
type Nucleus struct {
	Pool *pcb.Pool
	ASL  *asl.List

	ProcCount      int
	SoftBlockCount int

	Ready   pcb.Queue
	Current pcb.Index

	// DeviceSems holds the 49 device/pseudo-clock semaphore cells (§6).
	// Each cell's address is what the ASL and syscalls key blocking on.
	DeviceSems [devices.NumSemaphores]int32

	Bus   devices.Bus
	Clock devices.Clock

	BIOS cpuctx.BIOSDataPage

	// OnDispatch, if set, is invoked with the PCB index the scheduler is
	// about to load, immediately before the simulated LDST. Used by the
	// "run --trace" CLI flag and by tests that want to observe scheduling
	// order without polling.
	OnDispatch func(pcb.Index)
}
