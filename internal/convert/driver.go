package convert

import (
	"context"
	"log/slog"
	"time"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/history"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/logging"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/mirror"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services/ffmpeg"
)

// detailLimit bounds how much captured transcoder output is persisted per
// failed job.
const detailLimit = 2000

// Recorder captures per-job outcomes. *history.Store satisfies it.
type Recorder interface {
	Add(ctx context.Context, rec history.Record) (int64, error)
}

// Outcome reports one executed job.
type Outcome struct {
	Job    mirror.Job
	Output string
	Err    error
}

// Driver runs the job list sequentially against the transcoder. It never
// touches the document: by the time it runs, every mutation for the jobs has
// already been committed, and a failed conversion leaves that mutation in
// place.
type Driver struct {
	client   ffmpeg.Client
	logger   *slog.Logger
	recorder Recorder
	timeout  time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithRecorder attaches a history recorder.
func WithRecorder(recorder Recorder) Option {
	return func(d *Driver) { d.recorder = recorder }
}

// WithTimeout bounds each individual job. Zero means no timeout; a timeout is
// treated like any other failed conversion.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// NewDriver constructs a Driver.
func NewDriver(client ffmpeg.Client, logger *slog.Logger, opts ...Option) *Driver {
	if logger == nil {
		logger = logging.NewNop()
	}
	d := &Driver{client: client, logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the jobs in order. A failed job is logged with the captured
// transcoder output and processing continues; failures are never fatal to the
// run. Cancelling the context stops further jobs.
func (d *Driver) Run(ctx context.Context, jobs []mirror.Job) []Outcome {
	outcomes := make([]Outcome, 0, len(jobs))
	runID, _ := services.RunIDFromContext(ctx)

	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}

		d.logger.Info("converting",
			slog.String("source", job.Source),
			slog.String("destination", job.Destination))

		jobCtx := ctx
		cancel := context.CancelFunc(func() {})
		if d.timeout > 0 {
			jobCtx, cancel = context.WithTimeout(ctx, d.timeout)
		}

		output, err := d.client.Convert(jobCtx, ffmpeg.Request{
			Source:       job.Source,
			Destination:  job.Destination,
			BitRate:      ffmpeg.DefaultBitRate,
			CopyMetadata: true,
		})
		cancel()

		outcome := Outcome{Job: job, Output: output, Err: err}
		outcomes = append(outcomes, outcome)

		if err != nil {
			d.logger.Error("conversion failed",
				slog.String("destination", job.Destination),
				slog.String("output", tail(output, detailLimit)),
				logging.Error(err))
		}

		d.record(ctx, runID, outcome)
	}
	return outcomes
}

func (d *Driver) record(ctx context.Context, runID string, outcome Outcome) {
	if d.recorder == nil {
		return
	}
	rec := history.Record{
		RunID:       runID,
		Source:      outcome.Job.Source,
		Destination: outcome.Job.Destination,
		Status:      history.StatusConverted,
	}
	if outcome.Err != nil {
		rec.Status = history.StatusFailed
		rec.Detail = tail(outcome.Output, detailLimit)
	}
	if _, err := d.recorder.Add(ctx, rec); err != nil {
		d.logger.Warn("failed to record conversion history", logging.Error(err))
	}
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	return failed
}

func tail(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[len(s)-limit:]
}
