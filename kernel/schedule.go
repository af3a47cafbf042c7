package kernel

import (
	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// Schedule implements §4.3. A real scheduler never returns: it ends with a
// hardware LDST. Here it returns once a process has been loaded into
// state, or one of ErrHalt/ErrWait/PanicError when there is nothing to
// load — the driving harness treats a non-nil error as "stop calling
// Schedule and handle this condition" rather than a retryable failure.
//
// On success it writes the loaded process's saved state into state (the
// caller's stand-in for the LDST-restored BIOS data page), arms the
// process-local timer for one quantum, and records start_tod.
func (n *Nucleus) Schedule(state *cpuctx.State, armQuantum func(microseconds int)) error {
	idx := n.Ready.Remove(n.Pool)
	if idx == pcb.None {
		n.Current = pcb.None
		switch {
		case n.ProcCount == 0:
			return ErrHalt
		case n.SoftBlockCount > 0:
			return ErrWait
		default:
			return Panic("deadlock: ready queue empty, processes alive, none soft-blocked")
		}
	}

	n.Current = idx
	p := n.Pool.Get(idx)
	p.StartTOD = n.Clock.Now()

	if armQuantum != nil {
		armQuantum(Quantum)
	}
	if n.OnDispatch != nil {
		n.OnDispatch(idx)
	}

	*state = p.State
	return nil
}
