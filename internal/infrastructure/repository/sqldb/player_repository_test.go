package sqldb

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/infrastructure/storage/storagetest"
)

func testPlayer(id, name string) player.Player {
	return player.Player{
		ID:             id,
		Name:           name,
		Country:        "India",
		Role:           player.RoleBatter,
		BattingStyle:   "Right-hand bat",
		TotalRuns:      1200,
		BattingAverage: 41.4,
		StrikeRate:     88.7,
	}
}

func TestPlayerRepositoryRoundTrip(t *testing.T) {
	repo := NewPlayerRepository(storagetest.OpenGateway(t))
	ctx := context.Background()

	want := testPlayer("p1", "Virat Kohli")
	if err := repo.Create(ctx, want); err != nil {
		t.Fatalf("create player: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || got.Country != want.Country ||
		got.Role != want.Role || got.TotalRuns != want.TotalRuns ||
		got.BattingAverage != want.BattingAverage || got.StrikeRate != want.StrikeRate {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestPlayerRepositoryDuplicateCreate(t *testing.T) {
	repo := NewPlayerRepository(storagetest.OpenGateway(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testPlayer("p1", "A")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.Create(ctx, testPlayer("p1", "B"))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestPlayerRepositoryUpdateMissing(t *testing.T) {
	gw := storagetest.OpenGateway(t)
	repo := NewPlayerRepository(gw)
	ctx := context.Background()

	if err := repo.Create(ctx, testPlayer("p1", "A")); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Update(ctx, testPlayer("missing", "B"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The existing row must be untouched.
	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get after failed update: %v", err)
	}
	if got.Name != "A" {
		t.Fatalf("failed update mutated the table: %+v", got)
	}
}

func TestPlayerRepositoryDeleteMissing(t *testing.T) {
	repo := NewPlayerRepository(storagetest.OpenGateway(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testPlayer("p1", "A")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	players, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("failed delete changed the table, %d rows", len(players))
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete existing: %v", err)
	}
	if _, err := repo.Get(ctx, "p1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPlayerRepositoryUpsertKeepsIdentifierStable(t *testing.T) {
	repo := NewPlayerRepository(storagetest.OpenGateway(t))
	ctx := context.Background()

	first := testPlayer("p1", "Virat Kohli")
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Same identity, fresh stats, different candidate id. The stored
	// id must survive and the stats must refresh.
	second := testPlayer("p-other", "Virat Kohli")
	second.TotalRuns = 13000
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get after re-ingestion: %v", err)
	}
	if got.TotalRuns != 13000 {
		t.Fatalf("stats were not refreshed: %+v", got)
	}

	players, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("re-ingestion duplicated the player, %d rows", len(players))
	}
}

func TestPlayerRepositoryStoresMetacharactersLiterally(t *testing.T) {
	repo := NewPlayerRepository(storagetest.OpenGateway(t))
	ctx := context.Background()

	payload := "O'Brien'; DROP TABLE players;--"
	p := testPlayer("p1", payload)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create with payload: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get with payload: %v", err)
	}
	if got.Name != payload {
		t.Fatalf("payload not stored literally: %q", got.Name)
	}
}
