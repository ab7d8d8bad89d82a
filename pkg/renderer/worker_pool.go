package renderer

import (
	"runtime"
	"sort"
	"sync"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// BatchTask is a contiguous range of image rows [YStart, YEnd)
type BatchTask struct {
	TaskID int // Position of the batch in the final image
	YStart int
	YEnd   int
}

// BatchResult holds the rendered pixels of one batch
type BatchResult struct {
	TaskID int
	Pixels []core.Color
}

// WorkerPool renders row batches on a fixed set of goroutines
type WorkerPool struct {
	taskQueue   chan BatchTask
	resultQueue chan BatchResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker owns a private sampler and renders whatever batches it receives
type Worker struct {
	ID          int
	camera      *Camera
	scene       core.Scene
	sampler     *core.RandomSampler
	taskQueue   chan BatchTask
	resultQueue chan BatchResult
}

// NewWorkerPool creates numWorkers workers sharing the read-only scene.
// Both queues are buffered to maxTasks so submission never blocks.
func NewWorkerPool(camera *Camera, scene core.Scene, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BatchTask, maxTasks),
		resultQueue: make(chan BatchResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			camera:      camera,
			scene:       scene,
			sampler:     core.NewSeededSampler(camera.config.Seed),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
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

// Stop closes the task queue, waits for the workers to drain it and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a batch for rendering
func (wp *WorkerPool) SubmitTask(task BatchTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed batch in completion order
func (wp *WorkerPool) GetResult() (BatchResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- BatchResult{
			TaskID: task.TaskID,
			Pixels: w.camera.renderRows(w.scene, task.YStart, task.YEnd, w.sampler),
		}
	}
}

// planBatches splits [0, height) into consecutive batches of batchSize rows;
// the last batch may be shorter
func planBatches(height, batchSize int) []BatchTask {
	var tasks []BatchTask
	for yStart, id := 0, 0; yStart < height; id++ {
		yEnd := min(yStart+batchSize, height)
		tasks = append(tasks, BatchTask{TaskID: id, YStart: yStart, YEnd: yEnd})
		yStart = yEnd
	}
	return tasks
}

// collectBatches restores image order from results that arrived in any order
func collectBatches(results []BatchResult) []core.Color {
	sort.Slice(results, func(i, j int) bool {
		return results[i].TaskID < results[j].TaskID
	})

	total := 0
	for _, r := range results {
		total += len(r.Pixels)
	}
	pixels := make([]core.Color, 0, total)
	for _, r := range results {
		pixels = append(pixels, r.Pixels...)
	}
	return pixels
}
