// Package interrupt implements the nucleus's interrupt handler (§4.6,
// C8): decoding the pending-interrupt bitmask, servicing the process-local
// timer, the interval timer/pseudo-clock, and the five device lines.
package interrupt

import (
	"github.com/harisiqbal10/pandos-phase2/asl"
	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// pcbNone is a local, shorter alias for pcb.None, used throughout this
// file's dispatch logic.
const pcbNone = pcb.None

// Timers is the pair of hardware timer reloads the interrupt handler
// drives: the process-local timer (re-armed on every PLT interrupt and by
// the scheduler) and the interval timer (re-armed on every tick). A real
// BIOS owns the actual registers; the nucleus only ever writes reload
// values through this interface.
type Timers interface {
	SetPLT(microseconds int)
	SetIntervalTimer(microseconds int)
}

// Handle implements §4.6: find the highest-priority (lowest-numbered)
// pending interrupt line and service it. state is the BIOS-data-page saved
// state the caller will LDST on return; Handle overwrites it whenever
// servicing ends in the scheduler: always on the PLT path (where the
// interrupted process's state is first folded back into its PCB), and on
// the interval-timer and device paths when there is no current process.
// The saved state the caller then holds belongs to whatever process
// Schedule loaded, not the one that was interrupted.
//
// Returns kernel.ErrHalt/ErrWait/PanicError exactly as Schedule would, if
// servicing the interrupt ends in invoking the scheduler with nothing
// runnable; nil if a current process remains and should simply resume via
// the caller's ordinary LDST path.
func Handle(n *kernel.Nucleus, state *cpuctx.State, timers Timers) error {
	line := devices.HighestPriorityLine(state.PendingInterrupts())

	switch line {
	case 0:
		return nil // software interrupt, ignored

	case devices.LinePLT:
		return handlePLT(n, state, timers)

	case devices.LineInterval:
		return handleIntervalTimer(n, state, timers)

	case devices.LineDisk, devices.LineFlash, devices.LineNetwork,
		devices.LinePrinter, devices.LineTerminal:
		return handleDevice(n, state, line, timers)

	default:
		return nil // no interrupt pending; nothing to do
	}
}

// handlePLT implements §4.6 line 1: reload the quantum timer, fold the
// interrupted process's state and accumulated CPU time back into its PCB,
// append it to the ready queue, and invoke the scheduler.
func handlePLT(n *kernel.Nucleus, state *cpuctx.State, timers Timers) error {
	timers.SetPLT(kernel.Quantum)

	if n.Current != pcbNone {
		p := n.Pool.Get(n.Current)
		p.State = *state
		now := n.Clock.Now()
		p.CPUTime += now - p.StartTOD
		n.Ready.Insert(n.Pool, n.Current)
		n.Current = pcbNone
	}

	return n.Schedule(state, timers.SetPLT)
}

// handleIntervalTimer implements §4.6 line 2: reload the 100ms interval
// timer, wake every pseudo-clock waiter (repeated V), reset the pseudo-
// clock semaphore to 0, and either resume the current process or invoke
// the scheduler.
func handleIntervalTimer(n *kernel.Nucleus, state *cpuctx.State, timers Timers) error {
	timers.SetIntervalTimer(kernel.ClockInterval)

	clockSem := &n.DeviceSems[devices.ClockSemIndex]
	for {
		woken := asl.HeadBlocked(n.ASL, n.Pool, clockSem)
		if woken == pcbNone {
			break
		}
		asl.RemoveBlocked(n.ASL, n.Pool, clockSem)
		n.Ready.Insert(n.Pool, woken)
		n.SoftBlockCount--
	}
	*clockSem = 0

	if n.Current != pcbNone {
		return nil
	}
	return n.Schedule(state, timers.SetPLT)
}

// handleDevice implements §4.6 step 3: find the highest-priority device on
// line, ack it, increment its semaphore, wake its waiter (if any) with the
// saved status in v0, and resume or reschedule.
func handleDevice(n *kernel.Nucleus, state *cpuctx.State, line int, timers Timers) error {
	bitmap := n.Bus.Pending(line)
	dev := devices.HighestPriorityDevice(bitmap)
	if dev < 0 {
		if n.Current != pcbNone {
			return nil
		}
		return n.Schedule(state, timers.SetPLT)
	}

	status, idx := ackDevice(n, line, dev)

	sem := &n.DeviceSems[idx]
	*sem++
	woken := asl.RemoveBlocked(n.ASL, n.Pool, sem)
	if woken != pcbNone {
		p := n.Pool.Get(woken)
		p.State.SetV0(status)
		n.SoftBlockCount--
		n.Ready.Insert(n.Pool, woken)
	}

	if n.Current != pcbNone {
		return nil
	}
	return n.Schedule(state, timers.SetPLT)
}

// ackDevice saves the device's status register, acks it (transmitter
// first for terminals, per §4.6 step 3b), and returns the status plus the
// device-semaphore index it maps to.
func ackDevice(n *kernel.Nucleus, line, dev int) (status uint32, idx int) {
	if line != devices.LineTerminal {
		reg := n.Bus.Device(line, dev)
		status = reg.Status
		reg.Command = devices.CommandAck
		return status, devices.SemIndex(line, dev)
	}

	term := n.Bus.Terminal(dev)
	if term.TransStatus != devices.StatusReady {
		status = term.TransStatus
		term.TransCommand = devices.CommandAck
		return status, devices.TerminalSemIndex(dev, devices.SubTransmitter)
	}
	status = term.RecvStatus
	term.RecvCommand = devices.CommandAck
	return status, devices.TerminalSemIndex(dev, devices.SubReceiver)
}
