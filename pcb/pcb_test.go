package pcb

import "testing"

func TestAllocFreeRoundTrip(t *testing.T) {
	p := NewPool()
	if p.Free() != PoolSize {
		t.Fatalf("expected %d free slots, got %d", PoolSize, p.Free())
	}

	idx, ok := p.Alloc()
	if !ok {
		t.Fatalf("expected allocation to succeed on a fresh pool")
	}
	if p.Live() != 1 {
		t.Fatalf("expected 1 live pcb, got %d", p.Live())
	}

	p.FreePCB(idx)
	if p.Live() != 0 || p.Free() != PoolSize {
		t.Fatalf("expected pool to return to its prior state after free, live=%d free=%d", p.Live(), p.Free())
	}
}

func TestInUseTracksAllocationState(t *testing.T) {
	p := NewPool()
	idx, _ := p.Alloc()
	if !p.InUse(idx) {
		t.Fatalf("expected a freshly allocated index to report in use")
	}
	p.FreePCB(idx)
	if p.InUse(idx) {
		t.Fatalf("expected a freed index to no longer report in use")
	}
	if p.InUse(None) {
		t.Fatalf("expected None to never report in use")
	}
}

func TestPoolExhaustion(t *testing.T) {
	p := NewPool()
	var allocated []Index
	for i := 0; i < PoolSize; i++ {
		idx, ok := p.Alloc()
		if !ok {
			t.Fatalf("allocation %d unexpectedly failed", i)
		}
		allocated = append(allocated, idx)
	}

	if _, ok := p.Alloc(); ok {
		t.Fatalf("expected allocation to fail once the pool is exhausted")
	}

	for _, idx := range allocated {
		p.FreePCB(idx)
	}
	if p.Live() != 0 {
		t.Fatalf("expected 0 live pcbs after freeing everything, got %d", p.Live())
	}
}

func TestAllocZeroesState(t *testing.T) {
	p := NewPool()
	idx, _ := p.Alloc()
	pcb := p.Get(idx)
	pcb.State.Regs[5] = 0xdeadbeef
	pcb.CPUTime = 123
	p.FreePCB(idx)

	idx2, _ := p.Alloc()
	pcb2 := p.Get(idx2)
	if pcb2.State.Regs[5] != 0 || pcb2.CPUTime != 0 {
		t.Fatalf("expected reallocated pcb to be zeroed, got %+v", pcb2)
	}
}

func TestQueueInsertOutRoundTrip(t *testing.T) {
	p := NewPool()
	q := NewQueue()
	if !q.Empty() {
		t.Fatalf("expected a fresh queue to be empty")
	}

	idx, _ := p.Alloc()
	q.Insert(p, idx)
	if q.Empty() {
		t.Fatalf("expected queue to be non-empty after insert")
	}
	if out := q.Out(p, idx); out != idx {
		t.Fatalf("expected Out to return the inserted element, got %v", out)
	}
	if !q.Empty() {
		t.Fatalf("expected queue to be empty after removing its only element, restoring prior state")
	}
}

func TestQueueFIFOOrder(t *testing.T) {
	p := NewPool()
	q := NewQueue()

	var idxs []Index
	for i := 0; i < 5; i++ {
		idx, _ := p.Alloc()
		idxs = append(idxs, idx)
		q.Insert(p, idx)
	}

	for _, want := range idxs {
		got := q.Remove(p)
		if got != want {
			t.Fatalf("expected FIFO order, wanted %v, got %v", want, got)
		}
	}
	if !q.Empty() {
		t.Fatalf("expected queue to be empty after draining all elements")
	}
}

func TestQueueRemoveSingleElementSetsTailNil(t *testing.T) {
	p := NewPool()
	q := NewQueue()
	idx, _ := p.Alloc()
	q.Insert(p, idx)

	got := q.Remove(p)
	if got != idx {
		t.Fatalf("expected removed element to match inserted one")
	}
	if q.Tail() != None {
		t.Fatalf("expected tail to be None after removing the sole element")
	}
}

func TestQueueOutOfTailShiftsTail(t *testing.T) {
	p := NewPool()
	q := NewQueue()
	a, _ := p.Alloc()
	b, _ := p.Alloc()
	q.Insert(p, a)
	q.Insert(p, b)

	if q.Tail() != b {
		t.Fatalf("expected tail to be the most recently inserted element")
	}
	q.Out(p, b)
	if q.Tail() != a {
		t.Fatalf("expected tail to shift to predecessor when the tail element is removed, got %v", q.Tail())
	}
}

func TestOutOfMissingElementReturnsNone(t *testing.T) {
	p := NewPool()
	q := NewQueue()
	a, _ := p.Alloc()
	b, _ := p.Alloc()
	q.Insert(p, a)

	if out := q.Out(p, b); out != None {
		t.Fatalf("expected Out on an absent element to return None, got %v", out)
	}
}

func TestTreeInsertRemoveChild(t *testing.T) {
	p := NewPool()
	parent, _ := p.Alloc()
	child1, _ := p.Alloc()
	child2, _ := p.Alloc()

	InsertChild(p, parent, child1)
	InsertChild(p, parent, child2)

	// child2 was inserted last, so it is the first child.
	if p.Get(parent).Child() != child2 {
		t.Fatalf("expected most recently inserted child to be first, got %v", p.Get(parent).Child())
	}

	removed := RemoveChild(p, parent)
	if removed != child2 {
		t.Fatalf("expected RemoveChild to return the first child")
	}
	if p.Get(parent).Child() != child1 {
		t.Fatalf("expected remaining child to become the new first child")
	}

	out := OutChild(p, child1)
	if out != child1 {
		t.Fatalf("expected OutChild to return the detached child")
	}
	if !EmptyChild(p, parent) {
		t.Fatalf("expected parent to have no children left")
	}
}

func TestOutChildNoParentReturnsNone(t *testing.T) {
	p := NewPool()
	idx, _ := p.Alloc()
	if out := OutChild(p, idx); out != None {
		t.Fatalf("expected OutChild on a rootless pcb to return None, got %v", out)
	}
}
