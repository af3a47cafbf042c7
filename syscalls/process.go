package syscalls

import (
	"github.com/harisiqbal10/pandos-phase2/asl"
	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
	"github.com/harisiqbal10/pandos-phase2/support"
)

// SysCreateProcess implements syscall 1 (§4.5 point 1). newState is copied
// bit-for-bit into the new PCB; the nucleus does not inspect it (§6). The
// new process is a child of the caller, starts with zero CPU time, is not
// blocked, and is placed at the tail of the ready queue. Returns 0 on
// success, -1 if the PCB pool is exhausted.
func SysCreateProcess(n *kernel.Nucleus, newState cpuctx.State, newSupport *support.Block) int {
	idx, ok := n.Pool.Alloc()
	if !ok {
		return -1
	}

	p := n.Pool.Get(idx)
	p.State = newState
	p.Support = newSupport

	if n.Current != pcb.None {
		pcb.InsertChild(n.Pool, n.Current, idx)
	}

	n.Ready.Insert(n.Pool, idx)
	n.ProcCount++
	return 0
}

// SysTerminate implements syscall 2 (§4.5 point 2): recursively terminate
// p's entire subtree in post-order, then detach and free p itself. Prefers
// an explicit work stack over host recursion (Design Notes §9) since
// tree depth is caller-controlled up to PoolSize.
func SysTerminate(n *kernel.Nucleus, p pcb.Index) {
	if p == pcb.None {
		return
	}

	// Post-order: each node's children are fully torn down before the
	// node itself, by repeatedly taking the node on top of the stack's
	// first remaining child, or popping it once childless.
	stack := []pcb.Index{p}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !pcb.EmptyChild(n.Pool, top) {
			stack = append(stack, pcb.RemoveChild(n.Pool, top))
			continue
		}
		stack = stack[:len(stack)-1]
		terminateOne(n, top)
	}
}

// terminateOne frees a single already-childless PCB, reconciling whatever
// queue it was a member of.
func terminateOne(n *kernel.Nucleus, idx pcb.Index) {
	p := n.Pool.Get(idx)

	if p.SemAddr != nil {
		semAddr := p.SemAddr
		isDevice := isDeviceSemaphore(n, semAddr)
		if !isDevice {
			// Counter rebalancing: no waiter is unblocked, but the
			// forced removal must not leave the semaphore's invariant
			// (count reflects exactly the live waiters) broken.
			*semAddr++
		}
		asl.OutBlocked(n.ASL, n.Pool, idx)
		p.SemAddr = nil
		if isDevice {
			n.SoftBlockCount--
		}
	}

	n.Ready.Out(n.Pool, idx)

	if p.Parent() != pcb.None {
		pcb.OutChild(n.Pool, idx)
	}

	if n.Current == idx {
		n.Current = pcb.None
	}

	n.Pool.FreePCB(idx)

	if n.ProcCount > 0 {
		n.ProcCount--
	}
}

// isDeviceSemaphore reports whether addr is one of the 49 device/pseudo-
// clock semaphore cells, mirroring the original's pointer-range check
// against deviceSemaphores[0..NUM_DEVICES-1] (§4.5 point 2's "non-device"
// carve-out covers every index up to and including the pseudo-clock: only
// a harness-owned, non-device semaphore is rebalanced).
func isDeviceSemaphore(n *kernel.Nucleus, addr *int32) bool {
	for i := range n.DeviceSems {
		if addr == &n.DeviceSems[i] {
			return true
		}
	}
	return false
}
