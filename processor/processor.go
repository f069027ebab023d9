// SPDX-License-Identifier: MIT

package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/docwarp/geometry"
	"github.com/katalvlaran/docwarp/raster"
	"github.com/katalvlaran/docwarp/warp"
)

// ErrClosed is returned for requests submitted after Close.
var ErrClosed = errors.New("processor: closed")

// Kind identifies the transform a request asked for.
type Kind int

const (
	KindDistort Kind = iota
	KindRotate
	KindGrayscale
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDistort:
		return "distort"
	case KindRotate:
		return "rotate"
	case KindGrayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the single reply to a request. Exactly one of Image and Err is set.
type Result struct {
	Kind  Kind
	Image *raster.Image
	Err   error
}

type request struct {
	ctx  context.Context
	kind Kind
	run  func() (*raster.Image, error)
	out  chan Result
}

// Processor owns one worker goroutine that executes requests in order.
//
// Thread safety: all methods are safe for concurrent use.
type Processor struct {
	// queue carries accepted requests to the worker.
	queue chan request

	// mu guards closed; submitters hold the read lock while sending so
	// that Close never closes queue under a pending send.
	mu     sync.RWMutex
	closed bool

	// wg waits for the worker to drain the queue.
	wg sync.WaitGroup

	opts   Options
	logger *slog.Logger
}

// New starts a Processor.
func New(opts ...Option) *Processor {
	o := gatherOptions(opts...)
	p := &Processor{
		queue:  make(chan request, o.queueSize),
		opts:   o,
		logger: o.logger,
	}

	p.wg.Add(1)
	go p.worker()
	p.logger.Info("processor: started", "queue", o.queueSize)

	return p
}

// worker serves requests until the queue is closed and drained.
func (p *Processor) worker() {
	defer p.wg.Done()

	for req := range p.queue {
		p.serve(req)
	}
}

func (p *Processor) serve(req request) {
	defer close(req.out)

	if err := req.ctx.Err(); err != nil {
		p.logger.Warn("processor: request cancelled before start", "kind", req.kind, "err", err)
		req.out <- Result{Kind: req.kind, Err: err}
		return
	}

	start := time.Now()
	img, err := req.run()
	if cerr := req.ctx.Err(); cerr != nil && err == nil {
		p.logger.Warn("processor: result discarded", "kind", req.kind, "err", cerr)
		req.out <- Result{Kind: req.kind, Err: cerr}
		return
	}
	p.logger.Debug("processor: request done", "kind", req.kind, "elapsed", time.Since(start), "err", err)
	if err != nil {
		req.out <- Result{Kind: req.kind, Err: err}
		return
	}
	req.out <- Result{Kind: req.kind, Image: img}
}

// submit enqueues run; the returned channel always yields one Result.
func (p *Processor) submit(ctx context.Context, kind Kind, run func() (*raster.Image, error)) <-chan Result {
	out := make(chan Result, 1)

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("processor: request after close", "kind", kind)
		out <- Result{Kind: kind, Err: fmt.Errorf("%v: %w", kind, ErrClosed)}
		close(out)
		return out
	}

	select {
	case p.queue <- request{ctx: ctx, kind: kind, run: run, out: out}:
	case <-ctx.Done():
		out <- Result{Kind: kind, Err: ctx.Err()}
		close(out)
	}

	return out
}

// Distort queues warp.Distort(img, corners, opts...). Processor-level warp
// options are applied first.
func (p *Processor) Distort(ctx context.Context, img *raster.Image, corners geometry.Quadrilateral, opts ...warp.Option) <-chan Result {
	all := make([]warp.Option, 0, len(p.opts.warpOpts)+len(opts)+1)
	all = append(all, warp.WithLogger(p.logger))
	all = append(all, p.opts.warpOpts...)
	all = append(all, opts...)

	return p.submit(ctx, KindDistort, func() (*raster.Image, error) {
		return warp.Distort(img, corners, all...)
	})
}

// Rotate queues raster.Rotate(img, dir).
func (p *Processor) Rotate(ctx context.Context, img *raster.Image, dir raster.Direction) <-chan Result {
	return p.submit(ctx, KindRotate, func() (*raster.Image, error) {
		return raster.Rotate(img, dir)
	})
}

// Grayscale queues raster.Grayscale(img).
func (p *Processor) Grayscale(ctx context.Context, img *raster.Image) <-chan Result {
	return p.submit(ctx, KindGrayscale, func() (*raster.Image, error) {
		return raster.Grayscale(img)
	})
}

// Close stops accepting requests, waits for queued ones to finish and stops
// the worker. Calling Close more than once is a no-op.
func (p *Processor) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("processor: closed")

	return nil
}
