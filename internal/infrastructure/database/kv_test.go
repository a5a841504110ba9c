package database

import (
	"context"
	"database/sql"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Skipf("sqlite driver not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		t.Skipf("skipping sqlite-dependent test: %v", err)
	}

	store, err := NewStoreWithDB(context.Background(), db, "sqlite3")
	if err != nil {
		t.Fatalf("NewStoreWithDB returned error: %v", err)
	}
	return store
}

func TestGetMissingKeyReturnsNil(t *testing.T) {
	store := openTestStore(t)

	value, err := store.Get(context.Background(), "profile", "user_state")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != nil {
		t.Errorf("expected nil for missing key, got %q", value)
	}
}

func TestPutThenGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "profile", "user_state", []byte(`{"coins":5}`)); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	value, err := store.Get(ctx, "profile", "user_state")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != `{"coins":5}` {
		t.Errorf("unexpected value %q", value)
	}
}

func TestPutOverwritesExistingValue(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "wordcache", "piano_Easy", []byte("one")); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := store.Put(ctx, "wordcache", "piano_Easy", []byte("two")); err != nil {
		t.Fatalf("second Put returned error: %v", err)
	}

	value, err := store.Get(ctx, "wordcache", "piano_Easy")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != "two" {
		t.Errorf("expected last write to win, got %q", value)
	}
}

func TestNamespacesAreIsolated(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "profile", "shared", []byte("a")); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := store.Put(ctx, "wordcache", "shared", []byte("b")); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	value, err := store.Get(ctx, "profile", "shared")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != "a" {
		t.Errorf("namespace collision: got %q", value)
	}
}

func TestEntriesOrderedByNamespaceThenKey(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	fixtures := []Entry{
		{Namespace: "wordcache", Key: "b", Value: []byte("3")},
		{Namespace: "profile", Key: "z", Value: []byte("1")},
		{Namespace: "wordcache", Key: "a", Value: []byte("2")},
	}
	for _, e := range fixtures {
		if err := store.Put(ctx, e.Namespace, e.Key, e.Value); err != nil {
			t.Fatalf("Put returned error: %v", err)
		}
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantOrder := []string{"profile/z", "wordcache/a", "wordcache/b"}
	for i, e := range entries {
		if got := e.Namespace + "/" + e.Key; got != wantOrder[i] {
			t.Errorf("entry %d: got %s, want %s", i, got, wantOrder[i])
		}
	}
}

func TestRebindForPostgres(t *testing.T) {
	sqlite := &Store{driver: "sqlite3"}
	if got := sqlite.rebind("SELECT ? WHERE x = ?"); got != "SELECT ? WHERE x = ?" {
		t.Errorf("sqlite rebind altered query: %q", got)
	}

	pg := &Store{driver: "postgres"}
	if got := pg.rebind("SELECT ? WHERE x = ?"); got != "SELECT $1 WHERE x = $2" {
		t.Errorf("postgres rebind wrong: %q", got)
	}
}
