package history

import (
	"context"
	"testing"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/config"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.Default()
	cfg.History.Dir = t.TempDir()

	store, err := Open(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAndRecent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	first := Record{
		RunID:       "run-1",
		Source:      "/music/one.flac",
		Destination: "/music/one.mp3",
		Status:      StatusConverted,
	}
	if _, err := store.Add(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := Record{
		RunID:       "run-1",
		Source:      "/music/two.flac",
		Destination: "/music/two.mp3",
		Status:      StatusFailed,
		Detail:      "exit status 1",
	}
	if _, err := store.Add(ctx, second); err != nil {
		t.Fatal(err)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("record count %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Source != "/music/two.flac" || records[0].Status != StatusFailed {
		t.Fatalf("unexpected newest record: %+v", records[0])
	}
	if records[0].Detail != "exit status 1" {
		t.Fatalf("detail lost: %+v", records[0])
	}
	if records[1].Status != StatusConverted || records[1].Detail != "" {
		t.Fatalf("unexpected oldest record: %+v", records[1])
	}
	if records[0].CreatedAt.IsZero() {
		t.Fatal("created_at not round-tripped")
	}
}

func TestRecentLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Add(ctx, Record{RunID: "run", Source: "s", Destination: "d", Status: StatusConverted}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("limit not applied, got %d", len(records))
	}
}
