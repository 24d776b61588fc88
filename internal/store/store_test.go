package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/phonicle/internal/persist"
)

func sampleRecord(solution string) persist.Record {
	return persist.Record{
		Guesses: []persist.StoredRow{{
			Cursor:  5,
			Letters: []persist.StoredLetter{{Letter: "S", Status: "Grey"}, {Letter: "L", Status: "Grey"}, {Letter: "A", Status: "Yellow"}, {Letter: "T", Status: "Grey"}, {Letter: "E", Status: "Green"}},
		}},
		Solution:        solution,
		Round:           1,
		State:           "Started",
		GamesWon:        2,
		GamesLost:       1,
		WinDistribution: persist.Distribution{0, 1, 1, 0, 0, 0},
	}
}

// testStore runs the behaviour every Store must share.
func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("load missing", func(t *testing.T) {
		// Given: an empty store
		// When: an unknown player is loaded
		rec, err := s.Load(ctx, "nobody")

		// Then: ErrNotFound
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		// Given: a saved record
		want := sampleRecord("CRANE")
		require.NoError(t, s.Save(ctx, "p1", want))

		// When: it is loaded back
		got, err := s.Load(ctx, "p1")

		// Then: it is unchanged
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "p2", sampleRecord("CRANE")))
		require.NoError(t, s.Save(ctx, "p2", sampleRecord("SLATE")))

		got, err := s.Load(ctx, "p2")
		require.NoError(t, err)
		assert.Equal(t, "SLATE", got.Solution)
	})

	t.Run("players are separate", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "p3", sampleRecord("TRACE")))

		got, err := s.Load(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "CRANE", got.Solution)
	})
}

// testRecorder runs the history behaviour of a ResultRecorder.
func testRecorder(t *testing.T, r ResultRecorder) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty history", func(t *testing.T) {
		got, err := r.Results(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("newest first and one per day", func(t *testing.T) {
		// Given: two games on the first day and one on the second
		require.NoError(t, r.RecordResult(ctx, Result{PlayerID: "h1", Date: "2024-03-01", Solution: "CRANE", Outcome: "won", Guesses: 3, CreatedAt: base}))
		require.NoError(t, r.RecordResult(ctx, Result{PlayerID: "h1", Date: "2024-03-01", Solution: "CRANE", Outcome: "lost", Guesses: 6, CreatedAt: base.Add(time.Hour)}))
		require.NoError(t, r.RecordResult(ctx, Result{PlayerID: "h1", Date: "2024-03-02", Solution: "SLATE", Outcome: "lost", Guesses: 6, CreatedAt: base.Add(24 * time.Hour)}))

		// When: the history is read
		got, err := r.Results(ctx, "h1", 10)

		// Then: the second game of a day is ignored and the newest comes first
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "SLATE", got[0].Solution)
		assert.Equal(t, "2024-03-02", got[0].Date)
		assert.Equal(t, "lost", got[0].Outcome)
		assert.Equal(t, "CRANE", got[1].Solution)
		assert.Equal(t, "won", got[1].Outcome)
		assert.Equal(t, 3, got[1].Guesses)
	})

	t.Run("repeated answer on a later day", func(t *testing.T) {
		require.NoError(t, r.RecordResult(ctx, Result{PlayerID: "h1", Date: "2024-05-01", Solution: "CRANE", Outcome: "won", Guesses: 2, CreatedAt: base.Add(61 * 24 * time.Hour)}))

		got, err := r.Results(ctx, "h1", 10)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "CRANE", got[0].Solution)
		assert.Equal(t, "2024-05-01", got[0].Date)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := r.Results(ctx, "h1", 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	testStore(t, s)

	rec, ok := s.(ResultRecorder)
	require.True(t, ok)
	testRecorder(t, rec)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	s := NewFile(path)
	defer s.Close()

	testStore(t, s)

	t.Run("survives reopen", func(t *testing.T) {
		again := NewFile(path)
		got, err := again.Load(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "CRANE", got.Solution)
	})

	t.Run("corrupt file", func(t *testing.T) {
		// Given: a file that is not JSON
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{nope"), 0o644))
		s := NewFile(bad)

		// When: it is loaded
		_, err := s.Load(context.Background(), "p1")

		// Then: a decode error, not ErrNotFound; saving still works
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		require.NoError(t, s.Save(context.Background(), "p1", sampleRecord("CRANE")))
		got, err := s.Load(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "CRANE", got.Solution)
	})

	t.Run("null file", func(t *testing.T) {
		// Given: a file holding the JSON literal null
		bad := filepath.Join(t.TempDir(), "null.json")
		require.NoError(t, os.WriteFile(bad, []byte("null"), 0o644))
		s := NewFile(bad)

		// When: it is loaded and then saved over
		_, err := s.Load(context.Background(), "local")
		assert.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, s.Save(context.Background(), "local", sampleRecord("CRANE")))

		// Then: the new record is there
		got, err := s.Load(context.Background(), "local")
		require.NoError(t, err)
		assert.Equal(t, "CRANE", got.Solution)
	})
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "phonicle.db")
	s, err := NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping(context.Background()))
	testStore(t, s)
	testRecorder(t, s)

	t.Run("migrations are idempotent", func(t *testing.T) {
		again, err := NewSQLite(path)
		require.NoError(t, err)
		defer again.Close()

		got, err := again.Load(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "CRANE", got.Solution)
	})
}

func TestRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("redis test needs docker")
	}
	client := startRedis(t)

	s := NewRedisWithClient(client)
	testStore(t, s)

	t.Run("key layout", func(t *testing.T) {
		raw, err := client.Get(context.Background(), "game:p1").Bytes()
		require.NoError(t, err)
		rec, err := persist.Unmarshal(raw)
		require.NoError(t, err)
		assert.Equal(t, "CRANE", rec.Solution)
	})
}

// startRedis runs a throwaway redis container and returns a client for it.
func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Skipf("could not start redis: %v", err)
	}
	_ = resource.Expire(120)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	pool.MaxWait = 2 * time.Minute
	var client *redis.Client
	if err := pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: resource.GetHostPort("6379/tcp")})
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}
	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}
