package pcb

// Queue is a circular doubly linked list of PCBs, represented by the tail
// index so head insertion and tail insertion are both O(1). The
// head-of-queue is always tail.next. The zero Queue is not empty (its tail
// reads as index 0); build queues with NewQueue.
type Queue struct {
	tail Index
}

// NewQueue returns an empty queue.
func NewQueue() Queue { return Queue{tail: None} }

// Empty reports whether the queue holds no PCBs.
func (q *Queue) Empty() bool { return q.tail == None }

// Tail returns the current tail index, or None if empty.
func (q *Queue) Tail() Index { return q.tail }

// Insert appends p to the tail of the queue.
func (q *Queue) Insert(pool *Pool, idx Index) {
	if idx == None {
		return
	}
	p := pool.Get(idx)
	if q.tail == None {
		p.next, p.prev = idx, idx
		q.tail = idx
		return
	}
	tail := pool.Get(q.tail)
	head := tail.next
	p.next = head
	p.prev = q.tail
	pool.Get(head).prev = idx
	tail.next = idx
	q.tail = idx
}

// Remove pops and returns the head of the queue (None if empty).
func (q *Queue) Remove(pool *Pool) Index {
	if q.tail == None {
		return None
	}
	head := pool.Get(q.tail).next
	return q.Out(pool, head)
}

// Out removes idx from the queue by identity. Returns None if idx is not
// present (or the queue is empty).
func (q *Queue) Out(pool *Pool, idx Index) Index {
	if q.tail == None || idx == None {
		return None
	}
	tailPCB := pool.Get(q.tail)
	cur := tailPCB.next
	for {
		if cur == idx {
			curPCB := pool.Get(cur)
			if cur == q.tail && curPCB.next == cur {
				// sole element
				q.tail = None
			} else {
				pool.Get(curPCB.prev).next = curPCB.next
				pool.Get(curPCB.next).prev = curPCB.prev
				if q.tail == cur {
					q.tail = curPCB.prev
				}
			}
			curPCB.next, curPCB.prev = None, None
			return cur
		}
		cur = pool.Get(cur).next
		if cur == tailPCB.next {
			break
		}
	}
	return None
}

// Head peeks the head of the queue without removing it (None if empty).
func (q *Queue) Head(pool *Pool) Index {
	if q.tail == None {
		return None
	}
	return pool.Get(q.tail).next
}
