package convert

import (
	"context"
	"errors"
	"testing"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/history"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/mirror"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services/ffmpeg"
)

type fakeClient struct {
	requests []ffmpeg.Request
	failOn   map[string]bool
}

func (f *fakeClient) Convert(_ context.Context, req ffmpeg.Request) (string, error) {
	f.requests = append(f.requests, req)
	if f.failOn[req.Source] {
		return "simulated failure output", errors.New("exit status 1")
	}
	return "ok", nil
}

type fakeRecorder struct {
	records []history.Record
}

func (f *fakeRecorder) Add(_ context.Context, rec history.Record) (int64, error) {
	f.records = append(f.records, rec)
	return int64(len(f.records)), nil
}

func TestRunExecutesJobsInOrder(t *testing.T) {
	client := &fakeClient{}
	driver := NewDriver(client, nil)

	jobs := []mirror.Job{
		{Source: "/m/a.flac", Destination: "/m/a.mp3"},
		{Source: "/m/b.flac", Destination: "/m/b.mp3"},
	}
	outcomes := driver.Run(context.Background(), jobs)

	if len(outcomes) != 2 {
		t.Fatalf("outcome count %d", len(outcomes))
	}
	if len(client.requests) != 2 || client.requests[0].Source != "/m/a.flac" || client.requests[1].Source != "/m/b.flac" {
		t.Fatalf("jobs not executed in order: %+v", client.requests)
	}
	req := client.requests[0]
	if req.BitRate != ffmpeg.DefaultBitRate || !req.CopyMetadata {
		t.Fatalf("unexpected request shape: %+v", req)
	}
	if Failed(outcomes) != 0 {
		t.Fatalf("unexpected failures: %d", Failed(outcomes))
	}
}

func TestRunContinuesAfterFailure(t *testing.T) {
	client := &fakeClient{failOn: map[string]bool{"/m/a.flac": true}}
	recorder := &fakeRecorder{}
	driver := NewDriver(client, nil, WithRecorder(recorder))

	ctx := services.WithRunID(context.Background(), "run-7")
	jobs := []mirror.Job{
		{Source: "/m/a.flac", Destination: "/m/a.mp3"},
		{Source: "/m/b.flac", Destination: "/m/b.mp3"},
	}
	outcomes := driver.Run(ctx, jobs)

	if len(outcomes) != 2 {
		t.Fatalf("failure aborted the run: %d outcomes", len(outcomes))
	}
	if Failed(outcomes) != 1 {
		t.Fatalf("failed count %d, want 1", Failed(outcomes))
	}
	if outcomes[0].Err == nil || outcomes[1].Err != nil {
		t.Fatalf("wrong job failed: %+v", outcomes)
	}

	if len(recorder.records) != 2 {
		t.Fatalf("history records %d, want 2", len(recorder.records))
	}
	first := recorder.records[0]
	if first.Status != history.StatusFailed || first.Detail != "simulated failure output" {
		t.Fatalf("unexpected failure record: %+v", first)
	}
	if first.RunID != "run-7" {
		t.Fatalf("run ID not propagated: %+v", first)
	}
	if recorder.records[1].Status != history.StatusConverted {
		t.Fatalf("unexpected success record: %+v", recorder.records[1])
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	client := &fakeClient{}
	driver := NewDriver(client, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := driver.Run(ctx, []mirror.Job{{Source: "/m/a.flac", Destination: "/m/a.mp3"}})
	if len(outcomes) != 0 || len(client.requests) != 0 {
		t.Fatalf("cancelled context should stop the run: %+v", outcomes)
	}
}
