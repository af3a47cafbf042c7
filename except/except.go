// Package except implements the nucleus's exception dispatcher (§4.4, C6):
// decoding the ExcCode field of the cause register and routing to the
// interrupt handler, the syscall handler, or the Pass-Up-or-Die policy.
package except

import (
	"errors"

	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/interrupt"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/support"
	"github.com/harisiqbal10/pandos-phase2/syscalls"
)

// ExcCode classes (§4.4's table).
const (
	excInterrupt  = 0
	excTLBLow     = 1
	excTLBHigh    = 3
	excTrapLow    = 4
	excTrapHigh   = 7
	excSyscall    = 8
	excTrap2Low   = 9
	excTrap2High  = 12
)

// Dispatch reads state's ExcCode and routes to the interrupt handler, the
// syscall handler, or Pass-Up-or-Die, exactly as §4.4's table specifies.
// timers is threaded through to whichever path ends up invoking the
// scheduler or reloading a hardware timer. syscallArgs carries the
// already-resolved syscall arguments a real syscall number might need
// (this module has no address space to chase raw register values through,
// so the caller resolves them before calling Dispatch).
//
// Returns nil if execution should simply resume via the caller's LDST path;
// kernel.ErrHalt/ErrWait/PanicError if a path ended by invoking the
// scheduler with nothing runnable (same contract as kernel.Nucleus.Schedule
// and interrupt.Handle).
func Dispatch(n *kernel.Nucleus, state *cpuctx.State, timers interrupt.Timers, syscallArgs syscalls.Args) (syscalls.Result, error) {
	code := state.ExcCode()

	switch {
	case code == excInterrupt:
		return syscalls.Result{}, interrupt.Handle(n, state, timers)

	case code >= excTLBLow && code <= excTLBHigh:
		return syscalls.Result{}, PassUpOrDie(n, state, support.ClassPageFault, timers)

	case code == excSyscall:
		return dispatchSyscall(n, state, timers, syscallArgs)

	case (code >= excTrapLow && code <= excTrapHigh) || (code >= excTrap2Low && code <= excTrap2High):
		return syscalls.Result{}, PassUpOrDie(n, state, support.ClassGeneral, timers)

	default:
		syscalls.SysTerminate(n, n.Current)
		return syscalls.Result{}, n.Schedule(state, timers.SetPLT)
	}
}

// dispatchSyscall implements §4.5's entry sequence: advance the saved PC
// once, re-route privileged-number-from-user-mode and number-9-or-above
// calls to Pass-Up-or-Die, and otherwise hand off to the syscall table.
func dispatchSyscall(n *kernel.Nucleus, state *cpuctx.State, timers interrupt.Timers, args syscalls.Args) (syscalls.Result, error) {
	state.AdvancePC()

	num := state.A0()
	privileged := num >= 1 && num <= syscalls.MaxPrivileged
	if num >= 9 || (privileged && state.IsUserMode()) {
		return syscalls.Result{}, PassUpOrDie(n, state, support.ClassGeneral, timers)
	}

	result, err := syscalls.Dispatch(n, state, num, args)
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, syscalls.ErrReschedule):
		return result, n.Schedule(state, timers.SetPLT)
	default:
		return result, err
	}
}

// PassUpOrDie implements §4.4's policy: terminate the current process (and
// its progeny) and invoke the scheduler if it has no support structure,
// otherwise copy its saved state into the support block's except_state slot
// and load the registered handler context — a hard switch out of the
// nucleus that never returns to the faulting instruction.
func PassUpOrDie(n *kernel.Nucleus, state *cpuctx.State, class int, timers interrupt.Timers) error {
	p := n.Pool.Get(n.Current)
	sup, _ := p.Support.(*support.Block)
	if sup == nil {
		syscalls.SysTerminate(n, n.Current)
		return n.Schedule(state, timers.SetPLT)
	}

	sup.ExceptState[class] = *state

	ctx := sup.ExceptContext[class]
	state.Regs[cpuctx.RegSP] = ctx.StackPtr
	state.Status = ctx.Status
	state.PC = ctx.PC
	return nil
}
