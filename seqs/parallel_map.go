package seqs

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"seqcore/config"
	"seqcore/dynenv"
	"seqcore/logger"
	"seqcore/queues"
)

const instrumentationName = "seqcore/seqs"

// TaskFunc is the per-element function run by ParallelMap. ctx carries the
// task's private copy of the caller's dynamic environment.
type TaskFunc func(ctx context.Context, v any) (any, error)

// Task adapts a Callable that does not need the task context.
func Task(fn Callable) TaskFunc {
	return func(_ context.Context, v any) (any, error) {
		return fn(v)
	}
}

type parallelConfig struct {
	batchSize int
	workers   int
	log       *logger.Logger
}

type ParallelOption func(*parallelConfig)

func WithBatchSize(size int) ParallelOption {
	return func(o *parallelConfig) {
		if size < 1 {
			size = 1
		}
		o.batchSize = size
	}
}

func WithWorkers(count int) ParallelOption {
	return func(o *parallelConfig) {
		if count < 1 {
			count = 1
		}
		o.workers = count
	}
}

// WithParallelConfig applies a loaded config section. Zero fields keep the
// current values.
func WithParallelConfig(p config.Parallel) ParallelOption {
	return func(o *parallelConfig) {
		if p.Workers > 0 {
			o.workers = p.Workers
		}
		if p.BatchSize > 0 {
			o.batchSize = p.BatchSize
		}
	}
}

func WithLogger(l *logger.Logger) ParallelOption {
	return func(o *parallelConfig) {
		if l != nil {
			o.log = l
		}
	}
}

type batchJob struct {
	idx   int
	chunk *[]any
}

type batchResult struct {
	idx    int
	values []any
}

// parallelMapExecutor holds the state of one ParallelMap run.
type parallelMapExecutor struct {
	ctx       context.Context
	task      TaskFunc
	env       *dynenv.Env
	batchSize int
	workers   int
	log       *logger.Logger
	elements  metric.Int64Counter

	jobs    chan batchJob
	results chan batchResult

	chunkPool *sync.Pool
	wg        sync.WaitGroup
}

func newMapExecutor(ctx context.Context, cfg parallelConfig, task TaskFunc, env *dynenv.Env) *parallelMapExecutor {
	chanSize := cfg.workers * 2
	return &parallelMapExecutor{
		ctx:       ctx,
		task:      task,
		env:       env,
		batchSize: cfg.batchSize,
		workers:   cfg.workers,
		log:       cfg.log,
		elements:  elementCounter(),
		jobs:      make(chan batchJob, chanSize),
		results:   make(chan batchResult, chanSize),
		chunkPool: &sync.Pool{New: func() any {
			s := make([]any, 0, cfg.batchSize)
			return &s
		}},
	}
}

func elementCounter() metric.Int64Counter {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"seqs.parallel_map.elements",
		metric.WithDescription("Elements mapped by ParallelMap"),
	)
	if err != nil {
		return noop.Int64Counter{}
	}
	return counter
}

// feed reads seq and packs it into batches. It owns the jobs channel.
func (e *parallelMapExecutor) feed(seq Seq) error {
	defer close(e.jobs)

	idx := 0
	chunk := e.getChunk()
	defer func() {
		if chunk != nil {
			e.putChunk(chunk)
		}
	}()

	for v, err := range seq {
		if err != nil {
			return err
		}
		*chunk = append(*chunk, v)
		if len(*chunk) == e.batchSize {
			if !e.sendJob(idx, chunk) {
				return e.ctx.Err()
			}
			idx++
			chunk = e.getChunk()
		}
		if err := e.ctx.Err(); err != nil {
			return err
		}
	}

	if len(*chunk) > 0 {
		if !e.sendJob(idx, chunk) {
			return e.ctx.Err()
		}
		chunk = nil
	}
	return nil
}

// startWorkers runs the pool on g and closes results once every worker is done.
func (e *parallelMapExecutor) startWorkers(g *errgroup.Group) {
	for i := 0; i < e.workers; i++ {
		e.wg.Add(1)
		g.Go(func() error {
			defer e.wg.Done()
			for job := range e.jobs {
				if err := e.processJob(job); err != nil {
					return err
				}
			}
			return nil
		})
	}
	go func() {
		e.wg.Wait()
		close(e.results)
	}()
}

func (e *parallelMapExecutor) processJob(job batchJob) error {
	defer e.putChunk(job.chunk)

	values := make([]any, len(*job.chunk))
	for i, v := range *job.chunk {
		if err := e.ctx.Err(); err != nil {
			return err
		}
		r, err := e.run(v)
		if err != nil {
			return err
		}
		values[i] = r
	}
	e.elements.Add(e.ctx, int64(len(values)))

	select {
	case e.results <- batchResult{idx: job.idx, values: values}:
		return nil
	case <-e.ctx.Done():
		return e.ctx.Err()
	}
}

// run applies the task to one element under a fresh copy of the snapshot.
func (e *parallelMapExecutor) run(v any) (r any, err error) {
	defer func() {
		if p := recover(); p != nil {
			e.log.Warn("parallel map task panicked", map[string]any{"panic": fmt.Sprint(p)})
			err = fmt.Errorf("%w: %v", ErrTaskPanic, p)
		}
	}()
	return e.task(dynenv.NewContext(e.ctx, e.env.Clone()), v)
}

// collect yields results in input order, holding back batches that arrive early.
func (e *parallelMapExecutor) collect(yield func(any, error) bool) bool {
	pending := queues.NewReorder[[]any](e.workers)
	for res := range e.results {
		pending.Add(int64(res.idx), res.values)
		for {
			values, ok := pending.Next()
			if !ok {
				break
			}
			if !yieldValues(values, yield) {
				return false
			}
		}
	}
	return true
}

func yieldValues(values []any, yield func(any, error) bool) bool {
	for _, v := range values {
		if !yield(v, nil) {
			return false
		}
	}
	return true
}

func (e *parallelMapExecutor) sendJob(idx int, chunk *[]any) bool {
	select {
	case e.jobs <- batchJob{idx: idx, chunk: chunk}:
		return true
	case <-e.ctx.Done():
		return false
	}
}

func (e *parallelMapExecutor) getChunk() *[]any {
	ptr := e.chunkPool.Get().(*[]any)
	*ptr = (*ptr)[:0]
	return ptr
}

func (e *parallelMapExecutor) putChunk(ptr *[]any) {
	clear(*ptr)
	e.chunkPool.Put(ptr)
}

func (e *parallelMapExecutor) runSerial(seq Seq, yield func(any, error) bool) error {
	for v, err := range seq {
		if err != nil {
			return err
		}
		if err := e.ctx.Err(); err != nil {
			return err
		}
		r, err := e.run(v)
		if err != nil {
			return err
		}
		e.elements.Add(e.ctx, 1)
		if !yield(r, nil) {
			return nil
		}
	}
	return nil
}

// ParallelMap applies task to every element of seq on a pool of workers and
// yields the results in input order.
//
// The dynamic environment carried by ctx (see dynenv) is snapshotted when
// ParallelMap is called; each task runs with its own copy of that snapshot, so
// bindings made by one task are invisible to the others and to the caller.
//
// Elements are handed to workers in batches of WithBatchSize. The first
// task error, or a recovered panic wrapped in ErrTaskPanic, stops the
// remaining work and is yielded once after the results already produced.
// Stopping iteration early cancels outstanding work.
func ParallelMap(ctx context.Context, task TaskFunc, seq any, opts ...ParallelOption) Seq {
	cfg := parallelConfig{
		batchSize: config.DefaultBatchSize,
		workers:   runtime.GOMAXPROCS(0),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.log = cfg.log.WithComponent("seqs.parallel_map")
	src := Of(seq)
	env := dynenv.FromContext(ctx).Clone()

	return func(yield func(any, error) bool) {
		spanCtx, span := otel.Tracer(instrumentationName).Start(ctx, "seqs.ParallelMap",
			trace.WithAttributes(
				attribute.Int("seqs.workers", cfg.workers),
				attribute.Int("seqs.batch_size", cfg.batchSize),
			))
		defer span.End()

		fail := func(err error) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			cfg.log.Error("parallel map failed", err)
			yield(nil, err)
		}

		if cfg.workers < 2 {
			exec := newMapExecutor(spanCtx, cfg, task, env)
			if err := exec.runSerial(src, yield); err != nil {
				fail(err)
			}
			return
		}

		cfg.log.Debug("parallel map started", map[string]any{
			"workers":    cfg.workers,
			"batch_size": cfg.batchSize,
		})

		runCtx, cancel := context.WithCancel(spanCtx)
		defer cancel()
		g, gctx := errgroup.WithContext(runCtx)

		exec := newMapExecutor(gctx, cfg, task, env)
		exec.startWorkers(g)
		g.Go(func() error { return exec.feed(src) })

		completed := exec.collect(yield)
		// the consumer stopped or all results are out; either way unblock the
		// feeder and workers before waiting on them
		cancel()
		err := g.Wait()
		if !completed {
			return
		}
		if err != nil {
			fail(err)
			return
		}
		cfg.log.Debug("parallel map finished")
	}
}
