package worker

// Task is a deferred unit of work. The commit flow hands its audit and
// notification publishes off as tasks so the HTTP response never waits on
// Kafka or Pub/Sub round trips.
type Task func()

// queueDepth bounds how many publishes may back up before Submit blocks
// the caller.
const queueDepth = 16

// Worker drains the task queue on a single background goroutine, which
// keeps post-commit publishes ordered within the process.
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

func NewWorker() *Worker {
	return &Worker{
		taskQueue: make(chan Task, queueDepth),
		stop:      make(chan struct{}),
	}
}

// Start launches the drain loop. Tasks still queued when Stop is called
// are dropped; publishes are best-effort once the payment is committed.
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task := <-w.taskQueue:
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

func (w *Worker) Stop() {
	close(w.stop)
}

// Submit enqueues a task, blocking when the queue is full.
func (w *Worker) Submit(task Task) {
	w.taskQueue <- task
}
