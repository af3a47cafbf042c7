// Package asl manages the Active Semaphore List: the sorted list of
// semaphore descriptors the nucleus consults on every P and V, each owning
// the queue of PCBs blocked on that semaphore.
//
// A semaphore is identified by the address of its integer cell (the same
// *int32 the nucleus's device-semaphore array and the test harness's
// ordinary semaphores are drawn from), matching the original's use of
// int* identity. Descriptors are drawn from a fixed-size arena sized to
// match the PCB pool, since at most one semd is active per blocked PCB.
package asl

import (
	"unsafe"

	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// descIndex addresses a semaphore descriptor within a List's arena.
type descIndex int

const none descIndex = -1

// semd is a single semaphore descriptor: the semaphore it describes, the
// PCBs blocked on it, and its link to the next descriptor in sorted order.
type semd struct {
	addr  *int32
	procQ pcb.Queue
	next  descIndex
}

// List is the Active Semaphore List: a sorted singly linked list of active
// semaphore descriptors, backed by a fixed-size free-list arena.
//
// List holds no reference to the PCB pool it was built against; every
// method that touches blocked-process queues takes the pool explicitly, the
// same convention pcb.Queue uses.
type List struct {
	table    [pcb.PoolSize + 2]semd
	head     descIndex // dummy head sentinel, s_semAdd == nil (sorts lowest)
	freeHead descIndex
}

// sentinel ordering: the head dummy sorts before every real address (nil
// compares low under less), the tail dummy sorts after every real address
// (its addr is never compared against, only used as a next-less-than-all
// traversal stop).
var tailSentinel int32

// tailIdx is the arena slot of the tail sentinel.
const tailIdx = descIndex(pcb.PoolSize + 1)

// NewList returns an empty ASL with every descriptor slot on the free list.
func NewList() *List {
	l := &List{}
	const maxSemd = pcb.PoolSize
	headIdx := descIndex(0)

	l.table[headIdx] = semd{addr: nil, next: tailIdx}
	l.table[tailIdx] = semd{addr: &tailSentinel, next: none}
	l.head = headIdx

	for i := 1; i < maxSemd; i++ {
		l.table[i].next = descIndex(i + 1)
	}
	l.table[maxSemd].next = none
	l.freeHead = 1

	return l
}

func less(a, b *int32) bool {
	return uintptr(unsafe.Pointer(a)) < uintptr(unsafe.Pointer(b))
}

// find walks the sorted list looking for semAddr, returning its
// descriptor index and the index of its predecessor (for unlinking or
// inserting at). found is none if semAddr is not active, but prev is
// always the real predecessor — the insertion point a caller needs to
// link a new descriptor in after — never none itself, since the head
// sentinel is always a valid predecessor.
func (l *List) find(semAddr *int32) (found, prev descIndex) {
	prev = l.head
	cur := l.table[prev].next
	for cur != none && cur != tailIdx && less(l.table[cur].addr, semAddr) {
		prev = cur
		cur = l.table[cur].next
	}
	if cur != none && cur != tailIdx && l.table[cur].addr == semAddr {
		return cur, prev
	}
	return none, prev
}

func (l *List) alloc() (descIndex, bool) {
	if l.freeHead == none {
		return none, false
	}
	idx := l.freeHead
	l.freeHead = l.table[idx].next
	return idx, true
}

func (l *List) release(idx descIndex) {
	l.table[idx] = semd{next: l.freeHead}
	l.freeHead = idx
}

// unlink removes the descriptor at idx (whose predecessor is prev) from the
// sorted list and returns it to the free list.
func (l *List) unlink(idx, prevOfIdx descIndex) {
	l.table[prevOfIdx].next = l.table[idx].next
	l.release(idx)
}

// InsertBlocked enqueues p on the process queue of the semaphore at
// semAddr, allocating a descriptor from the free list in sorted-insert
// order if the semaphore is not already active. Reports true if a new
// descriptor was needed but none was free (the arena is exhausted); in
// that case p is not enqueued.
func InsertBlocked(l *List, pool *pcb.Pool, semAddr *int32, p pcb.Index) bool {
	if p == pcb.None {
		return true
	}

	idx, prev := l.find(semAddr)
	if idx == none {
		var ok bool
		idx, ok = l.alloc()
		if !ok {
			return true
		}
		l.table[idx] = semd{addr: semAddr, procQ: pcb.NewQueue(), next: l.table[prev].next}
		l.table[prev].next = idx
	}

	d := &l.table[idx]
	d.procQ.Insert(pool, p)
	pool.Get(p).SemAddr = semAddr
	return false
}

// RemoveBlocked dequeues and returns the head of semAddr's blocked queue
// (pcb.None if semAddr is inactive or its queue is empty), reclaiming the
// descriptor if the queue becomes empty.
func RemoveBlocked(l *List, pool *pcb.Pool, semAddr *int32) pcb.Index {
	idx, prev := l.find(semAddr)
	if idx == none {
		return pcb.None
	}
	d := &l.table[idx]
	removed := d.procQ.Remove(pool)
	if removed == pcb.None {
		return pcb.None
	}
	pool.Get(removed).SemAddr = nil
	if d.procQ.Empty() {
		l.unlink(idx, prev)
	}
	return removed
}

// OutBlocked detaches p from the blocked queue of whatever semaphore it is
// waiting on (p.SemAddr), wherever in the queue it sits. Returns pcb.None
// if p is not currently blocked, or is not actually present in its
// semaphore's queue. Unlike RemoveBlocked, it leaves p.SemAddr untouched
// so a caller inspecting it afterward (e.g. Terminate's bookkeeping of
// which semaphore class it was pulled from) still sees it.
func OutBlocked(l *List, pool *pcb.Pool, p pcb.Index) pcb.Index {
	if p == pcb.None {
		return pcb.None
	}
	semAddr := pool.Get(p).SemAddr
	if semAddr == nil {
		return pcb.None
	}
	idx, prev := l.find(semAddr)
	if idx == none {
		return pcb.None
	}
	d := &l.table[idx]
	removed := d.procQ.Out(pool, p)
	if removed == pcb.None {
		return pcb.None
	}
	if d.procQ.Empty() {
		l.unlink(idx, prev)
	}
	return removed
}

// HeadBlocked returns the head of semAddr's blocked queue without removing
// it, or pcb.None if semAddr is inactive or its queue is empty.
func HeadBlocked(l *List, pool *pcb.Pool, semAddr *int32) pcb.Index {
	idx, _ := l.find(semAddr)
	if idx == none {
		return pcb.None
	}
	d := &l.table[idx]
	if d.procQ.Empty() {
		return pcb.None
	}
	return d.procQ.Head(pool)
}

// Active reports whether semAddr currently has a descriptor in the list
// (equivalently, whether any PCB is blocked on it).
func (l *List) Active(semAddr *int32) bool {
	idx, _ := l.find(semAddr)
	return idx != none
}
