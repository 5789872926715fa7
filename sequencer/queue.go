package sequencer

import (
	"container/heap"
	"time"
)

// task is one pending effect action, bound to the reel generation it was
// scheduled under
type task struct {
	due   time.Duration
	seq   uint64
	reel  int
	gen   uint64
	label string
	run   func()
}

// taskQueue is a min-heap on (due, seq) so ties fire in scheduling order
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

func (q *taskQueue) push(t *task) { heap.Push(q, t) }

func (q *taskQueue) pop() *task { return heap.Pop(q).(*task) }

func (q taskQueue) peek() *task {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}
