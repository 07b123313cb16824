package solver

import (
	"context"
	"io"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"pkg.jsn.cam/sesolver/pkg/quadratic"
)

const (
	// MinWorkers is one parse/solve pair
	MinWorkers = 2
	queueSize  = 256
)

// Manager splits the input into buckets and runs a parse/solve goroutine
// pair per bucket. The parser reports rejections itself, queues valid
// coefficients, and joins the solver once its bucket is exhausted.
type Manager struct {
	// Workers is the total number of goroutines; 0 means runtime.NumCPU().
	// Values below MinWorkers are raised to it.
	Workers int
}

func (m *Manager) workers() int {
	n := m.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(n, MinWorkers)
}

// bucket is the half-open token range [start, end)
type bucket struct {
	start, end int
}

// buckets splits n tokens into up to pairs ranges. Every bucket but the last
// holds a multiple of three tokens; the last takes whatever remains.
func buckets(n, pairs int) []bucket {
	size := max(quadratic.CoefficientsPerEquation, n/pairs)
	size -= size % quadratic.CoefficientsPerEquation

	out := make([]bucket, 0, pairs)
	for i := range pairs {
		start := min(i*size, n)
		end := min(start+size, n)
		if i == pairs-1 {
			end = n
		}
		out = append(out, bucket{start: start, end: end})
	}
	return lo.Filter(out, func(b bucket, _ int) bool { return b.end > b.start })
}

// Run solves every group in tokens and writes one line per group to w.
// Lines from different goroutines arrive in no particular order.
func (m *Manager) Run(ctx context.Context, tokens []string, w io.Writer) (Stats, error) {
	out := NewOutput(w)
	var c counters

	g, ctx := errgroup.WithContext(ctx)
	for _, b := range buckets(len(tokens), m.workers()/2) {
		queue := make(chan quadratic.Coefficients, queueSize)

		g.Go(func() error {
			err := parse(ctx, tokens[b.start:b.end], queue, out, &c)
			close(queue)
			if err != nil {
				return err
			}
			return solve(ctx, queue, out, &c)
		})
		g.Go(func() error {
			return solve(ctx, queue, out, &c)
		})
	}

	err := g.Wait()
	return c.stats(), err
}

func parse(ctx context.Context, tokens []string, queue chan<- quadratic.Coefficients, out *Output, c *counters) error {
	lb := newLineBuffer(out)

	err := quadratic.ParseGroups(tokens, func(g quadratic.Group) error {
		if g.Err != nil {
			if err := lb.reserve(); err != nil {
				return err
			}
			lb.buf = quadratic.AppendRejection(lb.buf, g.Err)
			c.rejected.Add(1)
			return nil
		}

		select {
		case queue <- g.Coefficients:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	if err != nil {
		return err
	}
	return lb.flush()
}

func solve(ctx context.Context, queue <-chan quadratic.Coefficients, out *Output, c *counters) error {
	lb := newLineBuffer(out)

	for {
		select {
		case coeffs, ok := <-queue:
			if !ok {
				return lb.flush()
			}
			if err := lb.reserve(); err != nil {
				return err
			}
			lb.buf = quadratic.AppendSolution(lb.buf, quadratic.Solve(coeffs))
			c.solved.Add(1)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
