package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColumnTask asks a worker to render one image column
type ColumnTask struct {
	X int
}

// ColumnResult reports a finished column
type ColumnResult struct {
	X       int
	Samples int
}

// WorkerPool renders image columns in parallel. Columns never overlap, so
// workers write into the shared image without locking.
type WorkerPool struct {
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker handles individual column rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	image       *RenderedImage
	progress    *progressTracker
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
}

// NewWorkerPool creates a worker pool with the specified number of workers,
// buffered for the given number of columns
func NewWorkerPool(raytracer *Raytracer, img *RenderedImage, progress *progressTracker, columns, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ColumnTask, columns),
		resultQueue: make(chan ColumnResult, columns),
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			image:       img,
			progress:    progress,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for all submitted tasks to finish and shuts down the workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a column task to the worker pool
func (wp *WorkerPool) SubmitTask(task ColumnTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed column result
func (wp *WorkerPool) GetResult() (ColumnResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each column owns its generator so the image does not depend on scheduling
		sampler := core.NewSeededSampler(w.raytracer.config.Seed + int64(task.X))

		var onPixel func()
		if w.progress != nil {
			onPixel = w.progress.pixelDone
		}
		samples := w.raytracer.RenderColumn(task.X, w.image, sampler, onPixel)

		w.resultQueue <- ColumnResult{X: task.X, Samples: samples}
	}
}
