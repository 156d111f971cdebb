package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeengine"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "cube.db"))
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUp(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)

	// Running again is a no-op
	require.NoError(t, db.MigrateUp())
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)
}

func TestSessionRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(3, `[]`, "first")
	require.NoError(t, err)
	assert.Len(t, id, 36)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 3, s.Dim)
	assert.Equal(t, `[]`, s.StateJSON)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "first", *s.Notes)
	assert.False(t, s.CreatedAt.IsZero())

	require.NoError(t, repo.UpdateState(id, `[{"x":0}]`))
	s, err = repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, `[{"x":0}]`, s.StateJSON)
	assert.False(t, s.UpdatedAt.Before(s.CreatedAt))

	missing, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.UpdateState("nope", `[]`)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestSessionListOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	first, err := repo.Create(2, `[]`, "")
	require.NoError(t, err)
	second, err := repo.Create(3, `[]`, "")
	require.NoError(t, err)

	// Touching the first session moves it to the front
	require.NoError(t, repo.UpdateState(first, `[]`))

	sessions, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first, sessions[0].SessionID)
	assert.Equal(t, second, sessions[1].SessionID)
	assert.Nil(t, sessions[1].Notes)

	limited, err := repo.List(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestMoveRepository(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	repo := NewMoveRepository(db)

	id, err := sessions.Create(3, `[]`, "")
	require.NoError(t, err)

	moves, err := cubeengine.ParseMoves("R,2U3,F2")
	require.NoError(t, err)
	require.NoError(t, repo.CreateBatch(id, moves, 0))

	count, err := repo.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	records, err := repo.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, i, r.MoveIndex)
	}
	assert.Equal(t, "2U3", records[1].Notation)

	parsed, err := ToMoves(records)
	require.NoError(t, err)
	assert.Equal(t, cubeengine.FormatMoves(moves), cubeengine.FormatMoves(parsed))

	require.NoError(t, repo.TruncateFrom(id, 1))
	count, err = repo.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Duplicate indexes fail the whole batch
	err = repo.CreateBatch(id, moves, 0)
	assert.Error(t, err)
	count, err = repo.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)
	phases := NewPhaseRepository(db)

	id, err := sessions.Create(3, `[]`, "")
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(id, []cubeengine.Move{cubeengine.R}, 0))
	_, err = phases.Create(id, 1, "scrambled")
	require.NoError(t, err)

	require.NoError(t, sessions.Delete(id))

	count, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, count)
	events, err := phases.GetBySession(id)
	require.NoError(t, err)
	assert.Empty(t, events)

	assert.ErrorIs(t, sessions.Delete(id), ErrSessionNotFound)
}

func TestPhaseRepository(t *testing.T) {
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create(3, `[]`, "")
	require.NoError(t, err)
	repo := NewPhaseRepository(db)

	_, err = repo.Create(id, 1, "scrambled")
	require.NoError(t, err)
	_, err = repo.Create(id, 5, "daisy")
	require.NoError(t, err)

	events, err := repo.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "daisy", events[1].Phase)
	assert.Equal(t, 5, events[1].MoveIndex)

	require.NoError(t, repo.TruncateFrom(id, 3))
	events, err = repo.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "scrambled", events[0].Phase)
}

func TestTransactionRollback(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)
	id, err := repo.Create(3, `[]`, "")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = db.Transaction(func(tx *sql.Tx) error {
		if err := repo.WithTx(tx).UpdateState(id, `["changed"]`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, `[]`, s.StateJSON)
}
