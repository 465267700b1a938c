package league_test

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shimbeld/bsdl/internal/database"
	"github.com/shimbeld/bsdl/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.LeagueStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := league.New(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}

	return store, db, teardown
}

// testRow builds a 21-wide row the way the importer binds one: strings and
// nils only.
func testRow(pos, team, player string) []any {
	row := make([]any, league.NumColumns)
	row[0] = pos
	row[1] = team
	row[2] = player
	// Leave the stats nil except a couple of representative cells.
	row[league.IndexOf("GP")] = "10"
	row[league.IndexOf("Win %")] = "52.5"
	return row
}

func TestEnsureInsertAndCount(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.EnsurePlayersTable())
	// Idempotent.
	require.NoError(t, store.EnsurePlayersTable())

	require.NoError(t, store.InsertPlayer(testRow("1", "Wombles", "Alice")))
	require.NoError(t, store.InsertPlayer(testRow("2", "Wombles", "Bob")))

	n, err := store.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInsertPlayerRejectsWrongWidth(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.EnsurePlayersTable())
	err := store.InsertPlayer([]any{"1", "Wombles"})
	assert.Error(t, err)
}

func TestClearPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.EnsurePlayersTable())
	require.NoError(t, store.InsertPlayer(testRow("1", "Wombles", "Alice")))

	require.NoError(t, store.ClearPlayers())

	n, err := store.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestQueryStatsFallsBackToLegacyTable(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	// Only the legacy table exists; the preferred players_stats query must
	// fail and the fallback must answer.
	require.NoError(t, store.EnsurePlayersTable())
	require.NoError(t, store.InsertPlayer(testRow("1", "Wombles", "Alice")))

	rows, err := store.QueryStats(league.Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wombles", rows[0].ValueByLabel("Team"))
	assert.Equal(t, "Alice", rows[0].ValueByLabel("Player"))
	// Bound as text, coerced by the declared column types.
	assert.EqualValues(t, 10, rows[0].ValueByLabel("GP"))
	assert.EqualValues(t, 52.5, rows[0].ValueByLabel("Win %"))
}

func TestQueryStatsPrefersNewSchema(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	// Legacy table holds different data so the source actually used is
	// observable.
	require.NoError(t, store.EnsurePlayersTable())
	require.NoError(t, store.InsertPlayer(testRow("1", "Legacy FC", "Old Row")))

	_, err := db.Exec(`CREATE TABLE players_stats (
		pos INTEGER, team TEXT, player TEXT, wp DECIMAL(6,2), gp INTEGER,
		gw INTEGER, dbl_in INTEGER, gf INTEGER, win_pct DECIMAL(6,2),
		finish_pct DECIMAL(6,2), skunk_win INTEGER, b_open INTEGER,
		b_fin INTEGER, high_start INTEGER, high_finish INTEGER,
		high_score INTEGER, four_fin INTEGER, five_fin INTEGER,
		busts INTEGER, fewest_darts INTEGER, lft_fin INTEGER
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO players_stats (pos, team, player) VALUES (1, 'Shooters', 'New Row')`)
	require.NoError(t, err)

	rows, err := store.QueryStats(league.Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Shooters", rows[0].ValueByLabel("Team"))
}

func TestQueryStatsBothSchemasMissing(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.QueryStats(league.Filters{})
	require.Error(t, err)

	var failure *league.QueryFailure
	require.ErrorAs(t, err, &failure)
	assert.Error(t, failure.NewSchemaErr)
	assert.Error(t, failure.OldSchemaErr)

	// The wire shape must be an object with an "error" field.
	data, err := json.Marshal(failure)
	require.NoError(t, err)
	var shape map[string]string
	require.NoError(t, json.Unmarshal(data, &shape))
	assert.Equal(t, "Both queries failed", shape["error"])
	assert.NotEmpty(t, shape["new_schema_error"])
	assert.NotEmpty(t, shape["old_schema_error"])
}

func TestQueryStatsFiltersAndOrdering(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.EnsurePlayersTable())
	require.NoError(t, store.InsertPlayer(testRow("2", "Wombles", "Bob")))
	require.NoError(t, store.InsertPlayer(testRow("1", "Wombles", "Alice")))
	require.NoError(t, store.InsertPlayer(testRow("1", "Shooters", "Carol")))

	t.Run("orders by team, pos, player", func(t *testing.T) {
		rows, err := store.QueryStats(league.Filters{})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Carol", rows[0].ValueByLabel("Player"))
		assert.Equal(t, "Alice", rows[1].ValueByLabel("Player"))
		assert.Equal(t, "Bob", rows[2].ValueByLabel("Player"))
	})

	t.Run("team filter is a case-insensitive substring", func(t *testing.T) {
		rows, err := store.QueryStats(league.Filters{Team: "womble"})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		rows, err := store.QueryStats(league.Filters{Team: "Wombles", Player: "ali"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Alice", rows[0].ValueByLabel("Player"))
	})

	t.Run("no match yields empty array, not an error", func(t *testing.T) {
		rows, err := store.QueryStats(league.Filters{Team: "nobody"})
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})
}

func TestStatsRowJSONKeyOrder(t *testing.T) {
	row := league.NewStatsRow()
	row.Set(0, int64(1))
	row.Set(1, "Wombles")
	row.Set(2, "Alice")

	data, err := json.Marshal(row)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, `{"Pos":1,"Team":"Wombles","Player":"Alice"`), text)
	// Absent stats serialize as nulls, keys still present and ordered.
	assert.Contains(t, text, `"LFT FIN":null`)
}

func TestImportRunAudit(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.RecordImportRun(league.ImportRun{
		ID: "run-1", Mode: "replace", Inserted: 10, Skipped: 1, ErrorCount: 1, StartedAt: 100,
	}))
	require.NoError(t, store.RecordImportRun(league.ImportRun{
		ID: "run-2", Mode: "append", Inserted: 5, StartedAt: 200,
	}))

	runs, err := store.ListImportRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID, "most recent first")
	assert.Equal(t, "run-1", runs[1].ID)
	assert.Equal(t, 10, runs[1].Inserted)
}

func TestCanonicalLabel(t *testing.T) {
	assert.Equal(t, "High Score", league.CanonicalLabel("High_Score"))
	assert.Equal(t, "4 Fin.", league.CanonicalLabel("4Fin"))
	assert.Equal(t, "Busts", league.CanonicalLabel("Bust"))
	assert.Equal(t, "B. Open", league.CanonicalLabel("B_Open"))
	assert.Equal(t, "Team", league.CanonicalLabel("Team"), "canonical names pass through")
	assert.Equal(t, "made-up", league.CanonicalLabel("made-up"), "unknown names pass through")
}
