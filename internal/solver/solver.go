package solver

import (
	"bufio"
	"io"
	"sync/atomic"

	"pkg.jsn.cam/sesolver/pkg/quadratic"
)

// Stats counts what a run produced
type Stats struct {
	Solved   int64
	Rejected int64
}

type counters struct {
	solved   atomic.Int64
	rejected atomic.Int64
}

func (c *counters) stats() Stats {
	return Stats{Solved: c.solved.Load(), Rejected: c.rejected.Load()}
}

// Sequential solves every group in input order on the calling goroutine.
func Sequential(tokens []string, w io.Writer) (Stats, error) {
	bw := bufio.NewWriterSize(w, 64*1024)
	var (
		stats Stats
		line  []byte
	)

	err := quadratic.ParseGroups(tokens, func(g quadratic.Group) error {
		line = line[:0]
		if g.Err != nil {
			stats.Rejected++
			line = quadratic.AppendRejection(line, g.Err)
		} else {
			stats.Solved++
			line = quadratic.AppendSolution(line, quadratic.Solve(g.Coefficients))
		}
		_, err := bw.Write(line)
		return err
	})
	if err != nil {
		return stats, err
	}
	return stats, bw.Flush()
}
