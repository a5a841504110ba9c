package backup

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/eslsoft/blinkvocab/internal/infrastructure/database"

	_ "github.com/mattn/go-sqlite3"
)

func openTestStore(t *testing.T) *database.Store {
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

	store, err := database.NewStoreWithDB(context.Background(), db, "sqlite3")
	if err != nil {
		t.Fatalf("NewStoreWithDB returned error: %v", err)
	}
	return store
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openTestStore(t)

	fixtures := map[[2]string][]byte{
		{"profile", "user_state"}:     []byte(`{"coins":42,"inventory":["item-0"]}`),
		{"wordcache", "piano_Easy"}:   []byte(`{"word":"piano"}`),
		{"wordcache", "sunset_Hard"}:  []byte(`{"word":"sunset"}`),
		{"wordcache", "binary_value"}: {0x00, 0x01, 0xFF},
	}
	for k, v := range fixtures {
		if err := src.Put(ctx, k[0], k[1], v); err != nil {
			t.Fatalf("seed %s/%s: %v", k[0], k[1], err)
		}
	}

	var buf bytes.Buffer
	exported, err := NewService(src).Export(ctx, &buf)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if exported != len(fixtures) {
		t.Errorf("expected %d exported records, got %d", len(fixtures), exported)
	}

	dst := openTestStore(t)
	imported, err := NewService(dst).Import(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if imported != len(fixtures) {
		t.Errorf("expected %d imported records, got %d", len(fixtures), imported)
	}

	for k, want := range fixtures {
		got, err := dst.Get(ctx, k[0], k[1])
		if err != nil {
			t.Fatalf("Get %s/%s: %v", k[0], k[1], err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("value mismatch for %s/%s: want %q got %q", k[0], k[1], want, got)
		}
	}
}

func TestImportOverwritesExistingEntries(t *testing.T) {
	ctx := context.Background()
	src := openTestStore(t)
	if err := src.Put(ctx, "profile", "user_state", []byte(`{"coins":10}`)); err != nil {
		t.Fatalf("seed source: %v", err)
	}

	var buf bytes.Buffer
	if _, err := NewService(src).Export(ctx, &buf); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	dst := openTestStore(t)
	if err := dst.Put(ctx, "profile", "user_state", []byte(`{"coins":999}`)); err != nil {
		t.Fatalf("seed destination: %v", err)
	}
	if _, err := NewService(dst).Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	got, err := dst.Get(ctx, "profile", "user_state")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != `{"coins":10}` {
		t.Errorf("expected imported value to win, got %q", got)
	}
}

func TestImportEmptyStream(t *testing.T) {
	dst := openTestStore(t)

	if _, err := NewService(dst).Import(context.Background(), strings.NewReader("")); err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	dst := openTestStore(t)

	input := `{"version":99,"exported_at":"2024-03-01T09:00:00Z"}` + "\n"
	if _, err := NewService(dst).Import(context.Background(), strings.NewReader(input)); err == nil {
		t.Fatal("expected error on unsupported version")
	}
}

func TestExportEmptyStoreWritesHeaderOnly(t *testing.T) {
	ctx := context.Background()
	src := openTestStore(t)

	var buf bytes.Buffer
	count, err := NewService(src).Export(ctx, &buf)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected zero records, got %d", count)
	}

	dst := openTestStore(t)
	if _, err := NewService(dst).Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("importing a header-only backup failed: %v", err)
	}
}
