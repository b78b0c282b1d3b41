// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package service

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// JobQueue hands stream jobs to the farm workers. PopFront blocks until a job arrives or the queue closes.
type JobQueue struct {
	q      list.List
	empty  *sync.Cond
	length int32
	closed bool
}

func NewJobQueue() *JobQueue {
	return &JobQueue{empty: sync.NewCond(&sync.Mutex{})}
}

// push job into queue. pushing to a closed queue is dropped and reported.
func (m *JobQueue) PushBack(job Job) bool {
	m.empty.L.Lock()
	defer m.empty.L.Unlock()
	if m.closed {
		return false
	}
	m.q.PushBack(job)
	atomic.AddInt32(&m.length, 1)
	m.empty.Signal()
	return true
}

// ok is false once the queue is closed and drained.
func (m *JobQueue) PopFront() (Job, bool) {
	m.empty.L.Lock()
	defer m.empty.L.Unlock()
	for m.Len() == 0 && !m.closed {
		m.empty.Wait()
	}

	_res := m.q.Front()
	if _res == nil {
		return Job{}, false
	}
	res := _res.Value.(Job)
	m.q.Remove(_res)
	atomic.AddInt32(&m.length, -1)
	return res, true
}

// wake every waiting worker. queued jobs are still handed out.
func (m *JobQueue) Close() {
	m.empty.L.Lock()
	m.closed = true
	m.empty.L.Unlock()
	m.empty.Broadcast()
}

// drop whatever is still queued.
func (m *JobQueue) Drain() int {
	m.empty.L.Lock()
	defer m.empty.L.Unlock()
	n := m.q.Len()
	m.q.Init()
	atomic.StoreInt32(&m.length, 0)
	return n
}

// return the length of queue.
func (m *JobQueue) Len() int32 {
	res := atomic.LoadInt32(&m.length)
	return res
}
