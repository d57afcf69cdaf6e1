package resync

import (
	"context"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/linger"
	"github.com/dogmatiq/mirror/internal/mlog"
)

// DefaultPollInterval is the default interval between rounds.
var DefaultPollInterval = 5 * time.Second

// Poller periodically performs synchronization rounds.
type Poller struct {
	// Round performs a single round, typically Manager.SynchronizeAll or
	// Manager.ApplyDeltas.
	Round func(context.Context) Round

	// Interval is the delay between the end of one round and the start of the
	// next. If it is zero, DefaultPollInterval is used.
	Interval time.Duration

	// Logger is the target for log messages produced about each round.
	// If it is nil, logging.DefaultLogger is used.
	Logger logging.Logger
}

// Run performs a round immediately, then once per interval until ctx is
// canceled.
//
// Failures within a round never cause Run to return.
func (p *Poller) Run(ctx context.Context) error {
	for {
		r := p.Round(ctx)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		logging.Debug(
			p.Logger,
			"round %s completed: %d of %d workflow(s) synchronized, %d failure(s), %d pruned",
			mlog.FormatID(r.ID),
			len(r.Succeeded),
			len(r.Targets),
			len(r.Failures),
			len(r.Pruned),
		)

		if err := linger.Sleep(ctx, p.Interval, DefaultPollInterval); err != nil {
			return err
		}
	}
}
