package indices

import (
	"context"
	"time"

	"github.com/katalvlaran/limes/workspace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Warm computes the blocks of ws and the intersection and union of every
// pair of its methods, so that later Rtax, Ctax and MCtax calls are served
// from the workspace caches. At most Concurrency pairs are computed at once.
//
// Warm returns ctx.Err() if ctx is cancelled before every pair is started;
// pairs already stored stay cached.
func Warm(ctx context.Context, ws *workspace.Workspace, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if ws == nil {
		return ErrNilWorkspace
	}

	start := time.Now()
	ms := ws.Methods()
	ps := pairs(len(ms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	g.Go(func() error {
		ws.Blocks()
		return nil
	})
	for _, c := range ps {
		if err := gctx.Err(); err != nil {
			break
		}
		m1, m2 := ms[c[0]], ms[c[1]]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := ws.Pair(m1, m2)
			return err
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return err
	}

	ws.Logger().Debug("workspace warmed",
		zap.Int("pairs", len(ps)),
		zap.Int("concurrency", o.Concurrency),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
