package catalog_test

import (
	"context"
	"testing"

	"github.com/cricverse/cricstats/internal/catalog"
	"github.com/cricverse/cricstats/internal/infrastructure/repository/sqldb"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/infrastructure/storage/storagetest"
)

// sampleParams gives every declared parameter a value that works
// against the demo dataset.
var sampleParams = map[string]string{
	"country":           "India",
	"since":             "2024-01-01",
	"limit":             "10",
	"min_capacity":      "50000",
	"year":              "2024",
	"min_runs":          "1000",
	"min_wickets":       "100",
	"min_spells":        "1",
	"max_run_margin":    "30",
	"max_wicket_margin": "5",
	"min_innings":       "1",
	"min_balls":         "30",
	"team1":             "India",
	"team2":             "Australia",
	"innings_window":    "2",
}

func seededGateway(t *testing.T) *storage.Gateway {
	t.Helper()
	gw := storagetest.OpenGateway(t)
	if err := sqldb.BootstrapSeed(context.Background(), gw); err != nil {
		t.Fatalf("seed demo data: %v", err)
	}
	return gw
}

func runEntry(t *testing.T, gw *storage.Gateway, name string, params map[string]string) storage.Rows {
	t.Helper()

	entry, ok := catalog.Lookup(name)
	if !ok {
		t.Fatalf("entry %q missing", name)
	}
	args, err := entry.BindArgs(params)
	if err != nil {
		t.Fatalf("bind %q: %v", name, err)
	}
	rows, err := gw.QueryRows(context.Background(), entry.SQL, args...)
	if err != nil {
		t.Fatalf("run %q: %v", name, err)
	}
	return rows
}

func TestEveryEntryRunsAgainstFixture(t *testing.T) {
	gw := seededGateway(t)

	for _, entry := range catalog.Entries() {
		params := make(map[string]string, len(entry.Params))
		for _, p := range entry.Params {
			value, ok := sampleParams[p.Name]
			if !ok {
				t.Fatalf("no sample value for parameter %q of entry %q", p.Name, entry.Name)
			}
			params[p.Name] = value
		}

		rows := runEntry(t, gw, entry.Name, params)
		if len(rows.Columns) != len(entry.Columns) {
			t.Fatalf("entry %q: declared %d columns, backend returned %d (%v)",
				entry.Name, len(entry.Columns), len(rows.Columns), rows.Columns)
		}
		for i, col := range entry.Columns {
			if rows.Columns[i] != col.Name {
				t.Fatalf("entry %q column %d: declared %q, backend returned %q",
					entry.Name, i, col.Name, rows.Columns[i])
			}
		}
	}
}

func TestTopODIRunScorersAgainstFixture(t *testing.T) {
	gw := seededGateway(t)

	rows := runEntry(t, gw, "top_odi_run_scorers", map[string]string{"limit": "10"})
	// Demo ODI innings: Kohli 112+45+76, Smith 84+67, Root 91, Rohit 58.
	want := []struct {
		name string
		runs int64
	}{
		{"Virat Kohli", 233},
		{"Steve Smith", 151},
		{"Joe Root", 91},
		{"Rohit Sharma", 58},
	}
	if len(rows.Values) != len(want) {
		t.Fatalf("expected %d scorers, got %d", len(want), len(rows.Values))
	}
	for i, w := range want {
		if rows.Values[i][0] != w.name {
			t.Fatalf("row %d: want %q, got %v", i, w.name, rows.Values[i][0])
		}
		if rows.Values[i][2] != w.runs {
			t.Fatalf("row %d (%s): want %d runs, got %v", i, w.name, w.runs, rows.Values[i][2])
		}
	}
}

func TestLargeVenuesAgainstFixture(t *testing.T) {
	gw := seededGateway(t)

	rows := runEntry(t, gw, "large_venues", map[string]string{"min_capacity": "50000"})
	if len(rows.Values) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(rows.Values))
	}
	if rows.Values[0][0] != "Melbourne Cricket Ground" || rows.Values[0][3] != int64(100024) {
		t.Fatalf("unexpected first venue: %v", rows.Values[0])
	}
	if rows.Values[1][0] != "Eden Gardens" {
		t.Fatalf("unexpected second venue: %v", rows.Values[1])
	}
}

func TestTossImpactAgainstFixture(t *testing.T) {
	gw := seededGateway(t)

	rows := runEntry(t, gw, "toss_impact", nil)
	// Completed demo matches: bat decisions in m-1001 (toss winner won),
	// m-1003 (lost), m-2001 (won); bowl decision in m-1002 (won).
	if len(rows.Values) != 2 {
		t.Fatalf("expected 2 toss decisions, got %d", len(rows.Values))
	}

	bat := rows.Values[0]
	if bat[0] != "bat" || bat[1] != int64(3) || bat[2] != int64(2) {
		t.Fatalf("unexpected bat row: %v", bat)
	}
	bowl := rows.Values[1]
	if bowl[0] != "bowl" || bowl[1] != int64(1) || bowl[2] != int64(1) {
		t.Fatalf("unexpected bowl row: %v", bowl)
	}
}

func TestRecentMatchesAgainstFixture(t *testing.T) {
	gw := seededGateway(t)

	rows := runEntry(t, gw, "recent_matches", map[string]string{"since": "2024-09-01"})
	if len(rows.Values) != 3 {
		t.Fatalf("expected 3 matches since September, got %d", len(rows.Values))
	}
	if rows.Values[0][0] != "m-2003" || rows.Values[2][0] != "m-2001" {
		t.Fatalf("matches out of order: %v", rows.Values)
	}
}

func TestHeadToHeadAgainstFixture(t *testing.T) {
	gw := seededGateway(t)

	rows := runEntry(t, gw, "head_to_head", map[string]string{"team1": "India", "team2": "Australia"})
	if len(rows.Values) != 1 {
		t.Fatalf("expected a single summary row, got %d", len(rows.Values))
	}
	// m-1001 (India won) and m-1002 (Australia won) are the completed
	// India/Australia fixtures in the demo set.
	row := rows.Values[0]
	if row[0] != int64(2) || row[1] != int64(1) || row[2] != int64(1) {
		t.Fatalf("unexpected head to head row: %v", row)
	}
}
