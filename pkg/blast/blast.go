// Package blast drives a mail-merge run: one personalized email per CSV
// row, rendered, composed and sent sequentially over a single session.
package blast

import (
	"context"
	"fmt"
	netmail "net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hakaru-org/mailblast/pkg/csvdata"
	"github.com/hakaru-org/mailblast/pkg/mail"
	"github.com/hakaru-org/mailblast/pkg/merge"
)

// DefaultDelay separates successive sends to stay under receiver-side
// abuse throttles.
const DefaultDelay = 500 * time.Millisecond

// Options carries everything a run needs besides the mailer and renderer.
type Options struct {
	Dataset     *csvdata.Dataset
	Variants    []merge.Variant
	EmailColumn string
	Subject     string
	From        string
	FromName    string
	DryRun      string // when set, every send goes to this address instead
	Delay       time.Duration
}

// Stats summarizes a finished (or aborted) run.
type Stats struct {
	Sent    int
	Skipped int
}

// Run executes one blast. It owns no concurrency: rows are processed one
// at a time on the caller's goroutine, and the mailer's single session is
// reused for every send.
type Run struct {
	mailer   mail.Mailer
	renderer *merge.Renderer
	opts     Options
	logger   zerolog.Logger
}

// New creates a run. A zero Delay falls back to DefaultDelay.
func New(mailer mail.Mailer, renderer *merge.Renderer, opts Options, logger zerolog.Logger) *Run {
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}
	return &Run{
		mailer:   mailer,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}
}

// Execute processes every data row. Rows whose recipient address fails
// syntactic validation are skipped with a warning; that is the only
// recoverable error. A render failure or any SMTP-level fault aborts the
// rest of the batch.
func (r *Run) Execute(ctx context.Context) (Stats, error) {
	var stats Stats
	logger := r.logger.With().Str("run_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	for i, row := range r.opts.Dataset.Rows {
		data := r.opts.Dataset.Context(row)
		raw, _ := data[r.opts.EmailColumn].(string)

		addr, err := netmail.ParseAddress(raw)
		if err != nil {
			logger.Warn().
				Int("row", i+1).
				Str("address", raw).
				Msg("Row contains invalid email address, skipping")
			stats.Skipped++
			continue
		}

		to := addr.Address
		if r.opts.DryRun != "" {
			logger.Info().
				Int("row", i+1).
				Str("address", to).
				Str("dry_run_to", r.opts.DryRun).
				Msg("mail to")
			to = r.opts.DryRun
		} else {
			logger.Info().
				Int("row", i+1).
				Str("address", to).
				Msg("mail to")
		}

		msg := &mail.Message{
			From:     r.opts.From,
			FromName: r.opts.FromName,
			To:       to,
			Subject:  r.opts.Subject,
			Parts:    make([]mail.Part, 0, len(r.opts.Variants)),
		}
		for _, v := range r.opts.Variants {
			body, err := r.renderer.Render(v, data)
			if err != nil {
				return stats, fmt.Errorf("row %d: %w", i+1, err)
			}
			msg.Parts = append(msg.Parts, mail.Part{Body: body, HTML: v.HTML()})
		}

		if stats.Sent > 0 {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-time.After(r.opts.Delay):
			}
		}

		if err := r.mailer.Send(ctx, msg); err != nil {
			return stats, err
		}
		stats.Sent++
	}

	return stats, nil
}
