// Package pcb manages the process control block (PCB) data structure: a
// fixed-size arena of process records, a free-list allocator, circular
// doubly linked ready/blocked-queue primitives, and process-tree
// primitives.
//
// PCBs are stored in a static array and addressed by stable index (an
// arena, per the design notes) rather than by pointer. A PCB is a member of
// at most one queue (ready, or blocked on a single semaphore) and at most
// one position in the process tree at any time.
package pcb

import "github.com/harisiqbal10/pandos-phase2/cpuctx"

// PoolSize is the fixed number of PCB slots the nucleus supports (MAXPROC).
const PoolSize = 20

// Index addresses a PCB within a Pool. None denotes the absence of a PCB,
// playing the role the C original's NULL pcb_t* does.
type Index int

// None is the zero-value-safe sentinel meaning "no PCB".
const None Index = -1

// PCB is a single process control block.
type PCB struct {
	// State is the saved processor state (§3): sufficient to resume
	// execution bitwise-identically.
	State cpuctx.State

	// Support is an opaque pointer to the process's user-level support
	// structure. Nil means "no support" (§3).
	Support interface{}

	// CPUTime is accumulated CPU time in microseconds.
	CPUTime uint64

	// StartTOD is the TOD clock reading when this process last became
	// current. Valid iff this process is the current process.
	StartTOD uint64

	// SemAddr is the address of the semaphore this PCB is blocked on, or
	// nil if it is runnable or running.
	SemAddr *int32

	// queue linkage (ready queue or a semaphore's blocked queue)
	next, prev Index

	// process-tree linkage
	parent, child, sibLeft, sibRight Index

	inUse bool
	// freeNext links free slots together; only meaningful while the slot
	// is on the free list.
	freeNext Index
}

// Pool is a fixed-size PCB arena with a free-list allocator.
type Pool struct {
	slots    [PoolSize]PCB
	freeHead Index
	live     int
}

// NewPool returns a Pool with every slot on the free list.
func NewPool() *Pool {
	p := &Pool{}
	for i := 0; i < PoolSize-1; i++ {
		p.slots[i].freeNext = Index(i + 1)
	}
	p.slots[PoolSize-1].freeNext = None
	p.freeHead = 0
	return p
}

// Get returns a pointer to the PCB at idx. idx must be a currently
// allocated index; callers that hold an Index across an Alloc/Free cycle of
// a different PCB are holding a stale reference, which is a caller bug.
func (p *Pool) Get(idx Index) *PCB {
	if idx == None {
		return nil
	}
	return &p.slots[idx]
}

// Live returns the number of allocated PCBs.
func (p *Pool) Live() int { return p.live }

// InUse reports whether idx currently holds an allocated PCB, for callers
// that enumerate the whole arena (e.g. the CLI's "ps"/"sem" dumps) rather
// than following a queue or tree from a known-live index.
func (p *Pool) InUse(idx Index) bool {
	return idx >= 0 && int(idx) < PoolSize && p.slots[idx].inUse
}

// Free returns the number of unallocated PCBs.
func (p *Pool) Free() int { return PoolSize - p.live }

// Alloc draws a zero-initialized PCB from the free pool. It returns
// (None, false) when the pool is exhausted.
func (p *Pool) Alloc() (Index, bool) {
	if p.freeHead == None {
		return None, false
	}
	idx := p.freeHead
	slot := &p.slots[idx]
	p.freeHead = slot.freeNext

	*slot = PCB{
		next: None, prev: None,
		parent: None, child: None, sibLeft: None, sibRight: None,
		freeNext: None,
	}
	slot.inUse = true
	p.live++
	return idx, true
}

// FreePCB returns idx to the free pool. The caller asserts idx is not
// linked into any queue or tree.
func (p *Pool) FreePCB(idx Index) {
	if idx == None || !p.slots[idx].inUse {
		return
	}
	slot := &p.slots[idx]
	slot.inUse = false
	slot.freeNext = p.freeHead
	p.freeHead = idx
	p.live--
}
