package cache

// cache/list.go

// nilSlot marks a missing neighbour or an empty end of the list.
const nilSlot = -1

type node struct {
	key   int
	value int
	prev  int // more recent neighbour
	next  int // less recent neighbour
}

// recencyList is a doubly linked list stored in an arena. Entries are
// addressed by slot and link to each other by slot, so an evicted entry
// leaves nothing behind that can dangle. Front is most recently used.
type recencyList struct {
	nodes []node
	free  []int
	head  int
	tail  int
	size  int
}

func newRecencyList(capacity int) recencyList {
	return recencyList{
		nodes: make([]node, 0, capacity),
		head:  nilSlot,
		tail:  nilSlot,
	}
}

// alloc returns a detached slot holding key/value, reusing a freed slot
// when one exists.
func (l *recencyList) alloc(key, value int) int {
	n := node{key: key, value: value, prev: nilSlot, next: nilSlot}
	if last := len(l.free) - 1; last >= 0 {
		slot := l.free[last]
		l.free = l.free[:last]
		l.nodes[slot] = n
		return slot
	}
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// release hands a detached slot back to the arena.
func (l *recencyList) release(slot int) {
	l.nodes[slot] = node{prev: nilSlot, next: nilSlot}
	l.free = append(l.free, slot)
}

func (l *recencyList) pushFront(slot int) {
	n := &l.nodes[slot]
	n.prev = nilSlot
	n.next = l.head

	if l.head != nilSlot {
		l.nodes[l.head].prev = slot
	}
	l.head = slot

	if l.tail == nilSlot {
		l.tail = slot
	}
	l.size++
}

// unlink detaches slot from its neighbours without releasing it.
func (l *recencyList) unlink(slot int) {
	n := &l.nodes[slot]

	if n.prev != nilSlot {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nilSlot {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev, n.next = nilSlot, nilSlot
	l.size--
}

// moveToFront must stay a no-op for the head, otherwise a single entry
// list would unlink itself and come back with broken ends.
func (l *recencyList) moveToFront(slot int) {
	if slot == l.head {
		return
	}
	l.unlink(slot)
	l.pushFront(slot)
}

// removeBack detaches the least recently used slot and returns it, or
// nilSlot when the list is empty.
func (l *recencyList) removeBack() int {
	if l.tail == nilSlot {
		return nilSlot
	}

	old := l.tail
	if l.head == l.tail {
		l.head = nilSlot
		l.tail = nilSlot
	} else {
		l.tail = l.nodes[old].prev
		l.nodes[l.tail].next = nilSlot
	}

	l.nodes[old].prev, l.nodes[old].next = nilSlot, nilSlot
	l.size--
	return old
}

// walk calls fn for each slot from front to back until fn returns false.
func (l *recencyList) walk(fn func(slot int) bool) {
	for slot := l.head; slot != nilSlot; slot = l.nodes[slot].next {
		if !fn(slot) {
			return
		}
	}
}
