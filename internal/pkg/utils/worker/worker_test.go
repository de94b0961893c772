package worker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerProcessesSubmittedTasks(t *testing.T) {
	w := NewWorker()
	w.Start()
	defer w.Stop()

	var mu sync.Mutex
	var done []int

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		n := i
		w.Submit(func() {
			mu.Lock()
			done = append(done, n)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, done, 5)
}

func TestSubmitBuffersBeforeStart(t *testing.T) {
	w := NewWorker()

	var mu sync.Mutex
	count := 0
	for i := 0; i < queueDepth; i++ {
		w.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}

	w.Start()
	defer w.Stop()

	done := make(chan struct{})
	w.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queued tasks were never drained")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, queueDepth, count)
}

func TestWorkerTasksRunOffCaller(t *testing.T) {
	w := NewWorker()
	w.Start()
	defer w.Stop()

	result := make(chan bool, 1)
	w.Submit(func() { result <- true })

	select {
	case <-result:
	case <-time.After(time.Second):
		t.Fatal("task was never executed")
	}
}
