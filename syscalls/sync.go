package syscalls

import (
	"github.com/harisiqbal10/pandos-phase2/asl"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// P implements syscall 3 (Passeren, §4.5 point 3): accounts CPU time,
// decrements *sem, and if it goes negative, blocks the caller on sem and
// reports that the scheduler must run. The caller's state is already in
// its PCB at that point: Dispatch stores it there before calling P. soft_block_
// count is the caller's responsibility (WaitIO, WaitClock), not P's — see
// DESIGN.md's resolution of spec.md §9's second open question.
//
// Returns (true, nil) if the caller blocked (the scheduler must be invoked
// next), (false, nil) if it should simply resume. A non-nil error means
// the SEMD pool is exhausted — per §7, "a blocking P that cannot record a
// waiter is ... proof of pool mis-sizing", a fatal condition the harness
// must stop on rather than retry.
func P(n *kernel.Nucleus, sem *int32) (bool, error) {
	accountCPUTime(n)

	*sem--
	if *sem >= 0 {
		return false, nil
	}

	cur := n.Current
	p := n.Pool.Get(cur)
	p.SemAddr = sem
	if full := asl.InsertBlocked(n.ASL, n.Pool, sem, cur); full {
		return false, kernel.Panic("P: semaphore descriptor pool exhausted")
	}
	n.Current = pcb.None
	return true, nil
}

// V implements syscall 4 (Verhogen, §4.5 point 4): increments *sem, and if
// a process is waiting, wakes its head and places it on the ready queue
// with sem_addr cleared.
func V(n *kernel.Nucleus, sem *int32) {
	*sem++
	if *sem > 0 {
		return
	}

	woken := asl.RemoveBlocked(n.ASL, n.Pool, sem)
	if woken == pcb.None {
		return
	}
	n.Ready.Insert(n.Pool, woken)
}
