// Package syscalls implements the eight nucleus system calls (§4.5): the
// process-control, synchronization, and I/O-wait primitives user-level
// code reaches the nucleus through.
package syscalls

import (
	"errors"

	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
	"github.com/harisiqbal10/pandos-phase2/support"
)

// Syscall numbers (§4.5, h/const.h).
const (
	CreateProcess = 1
	Terminate     = 2
	Passeren      = 3
	Verhogen      = 4
	WaitIO        = 5
	GetCPUTime    = 6
	WaitClock     = 7
	GetSupportPtr = 8
)

// MaxPrivileged is the highest syscall number the nucleus defines. Numbers
// above it, like numbers 1-8 invoked from user mode, are passed up rather
// than dispatched here (§4.5, §7) — except.Dispatch enforces that before
// ever calling Dispatch.
const MaxPrivileged = GetSupportPtr

// ErrReschedule is returned by Dispatch when the calling process is no
// longer runnable (it blocked, terminated, or otherwise yielded) and the
// scheduler must be invoked. A nil error means the syscall completed and
// the caller resumes via the ordinary LDST path.
var ErrReschedule = errors.New("syscalls: scheduler must run")

// Args carries the syscall arguments that, in the original, are addresses
// (of a state_t, a support_t, or a semaphore's int). This module has no
// address space to resolve pointers against (§1 Non-goals), so the
// harness that owns the trapping process's "memory" resolves them into
// concrete Go values ahead of calling Dispatch — the out-of-scope
// collaborator §1 names, made concrete for CreateProcess/P/V.
type Args struct {
	// NewState and NewSupport are CreateProcess's a1/a2.
	NewState   cpuctx.State
	NewSupport *support.Block

	// SemAddr is Passeren/Verhogen's a1, resolved to the semaphore cell
	// it names (one of Nucleus.DeviceSems, or a harness-owned int32).
	SemAddr *int32

	// IntLine, DevNum, WaitForTermRead are WaitIO's a1/a2/a3.
	IntLine         int
	DevNum          int
	WaitForTermRead bool
}

// Result carries syscall outputs that don't fit in a register: currently
// only GetSupportPtr's opaque pointer (§3's support field is an
// interface{}-like opaque reference, not a register-sized integer).
type Result struct {
	Support *support.Block
}

// Dispatch routes one syscall to its handler, given the trapping state
// (already PC-advanced, per §4.5) and the syscall number read from a0.
func Dispatch(n *kernel.Nucleus, state *cpuctx.State, num uint32, args Args) (Result, error) {
	// A syscall that may block leaves the caller's state in its PCB, so the
	// scheduler later resumes it after the trap.
	switch num {
	case Passeren, WaitIO, WaitClock:
		if n.Current != pcb.None {
			n.Pool.Get(n.Current).State = *state
		}
	}

	switch num {
	case CreateProcess:
		ret := SysCreateProcess(n, args.NewState, args.NewSupport)
		state.SetV0(encodeReturn(ret))
		return Result{}, nil

	case Terminate:
		SysTerminate(n, n.Current)
		return Result{}, ErrReschedule

	case Passeren:
		blocked, err := P(n, args.SemAddr)
		if err != nil {
			return Result{}, err
		}
		if blocked {
			return Result{}, ErrReschedule
		}
		return Result{}, nil

	case Verhogen:
		V(n, args.SemAddr)
		return Result{}, nil

	case WaitIO:
		if err := SysWaitIO(n, args.IntLine, args.DevNum, args.WaitForTermRead); err != nil {
			return Result{}, err
		}
		return Result{}, ErrReschedule

	case GetCPUTime:
		SysGetCPUTime(n, state)
		return Result{}, nil

	case WaitClock:
		if err := SysWaitClock(n); err != nil {
			return Result{}, err
		}
		return Result{}, ErrReschedule

	case GetSupportPtr:
		return Result{Support: SysGetSupportPtr(n)}, nil

	default:
		// Reached through except.Dispatch only for number 0 (it passes
		// 9 and above up instead of forwarding them); kept for parity with
		// the original's syscallHandler default case.
		SysTerminate(n, n.Current)
		return Result{}, ErrReschedule
	}
}

// encodeReturn maps CreateProcess's {0, -1} result onto v0 the way the
// original's signed int return does when stored into an unsigned
// register: -1 becomes all-ones.
func encodeReturn(ret int) uint32 {
	if ret < 0 {
		return 0xFFFFFFFF
	}
	return uint32(ret)
}

// accountCPUTime folds the elapsed time since the current process was
// last dispatched into its accumulated cpu_time (updateCPUTime in the
// original). Called by P, and so by every syscall that can block.
func accountCPUTime(n *kernel.Nucleus) {
	if n.Current == pcb.None {
		return
	}
	p := n.Pool.Get(n.Current)
	now := n.Clock.Now()
	p.CPUTime += now - p.StartTOD
}
