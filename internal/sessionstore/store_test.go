package sessionstore

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"prescreen/internal/question"
	"prescreen/internal/testutil"
)

const testTimeout = 5 * time.Second

func sampleData(t *testing.T) question.ScreeningData {
	t.Helper()
	score := func(v float64) *float64 { return &v }
	data, err := question.Normalize(question.RawPayload{
		GreetingMsg: &question.RawGreeting{Text: "Hi", Options: []string{"Start"}},
		Questions: []question.RawQuestion{
			{Type: "single", Question: "Ready?", Options: []question.RawOption{{Value: "Yes", Score: score(1)}, {Value: "No", Score: score(0)}}},
			{Type: "free_text", Question: "Why?"},
		},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return data
}

// openTestStore opens a file-backed store under a temp dir.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	store, err := Open(ctx, filepath.Join(t.TempDir(), "nested", "session.duckdb"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// TestSaveLoadRoundTrip verifies saved data is restored unchanged.
func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := testutil.Context(t, testTimeout)
	data := sampleData(t)
	data.Questions[0].Options[0].Selected = true
	data.Questions[1].Answer = "Because"

	saved, err := store.Save(ctx, "default", data)
	if err != nil || !saved {
		t.Fatalf("save: saved=%v err=%v", saved, err)
	}
	loaded, ok, err := store.Load(ctx, "default")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(loaded, data) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, data)
	}
}

// TestSaveSkipsUnchanged verifies identical data is not rewritten.
func TestSaveSkipsUnchanged(t *testing.T) {
	store := openTestStore(t)
	ctx := testutil.Context(t, testTimeout)
	data := sampleData(t)
	if _, err := store.Save(ctx, "s1", data); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved, err := store.Save(ctx, "s1", data.Clone())
	if err != nil {
		t.Fatalf("save again: %v", err)
	}
	if saved {
		t.Fatalf("expected unchanged save to be skipped")
	}
	data.Questions[0].Title = "Still ready?"
	if saved, err := store.Save(ctx, "s1", data); err != nil || !saved {
		t.Fatalf("expected changed save, saved=%v err=%v", saved, err)
	}
	info, ok, err := store.Info(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("info: ok=%v err=%v", ok, err)
	}
	if info.Revision != 2 || info.Questions != 2 {
		t.Fatalf("unexpected info %+v", info)
	}
}

// TestLoadMissing verifies an unknown session reports not found.
func TestLoadMissing(t *testing.T) {
	store := openTestStore(t)
	ctx := testutil.Context(t, testTimeout)
	if _, ok, err := store.Load(ctx, "nope"); err != nil || ok {
		t.Fatalf("expected missing session, ok=%v err=%v", ok, err)
	}
}

// TestSaveRejectsInvalidData verifies broken collections are never stored.
func TestSaveRejectsInvalidData(t *testing.T) {
	store := openTestStore(t)
	ctx := testutil.Context(t, testTimeout)
	if _, err := store.Save(ctx, "s1", question.ScreeningData{}); err == nil {
		t.Fatalf("expected empty collection to be rejected")
	}
	if _, err := store.Save(ctx, " ", sampleData(t)); err == nil || !strings.Contains(err.Error(), "session id") {
		t.Fatalf("expected session id error, got %v", err)
	}
}

// TestLoadRejectsCorruptRow verifies persisted rows are validated on load.
func TestLoadRejectsCorruptRow(t *testing.T) {
	store := openTestStore(t)
	ctx := testutil.Context(t, testTimeout)
	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO sessions VALUES ('bad', 'x', '{"greetingMessage":{},"questions":[{"id":"","type":"single-choice"}]}', 1, 1, now(), now())`,
	); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}
	if _, _, err := store.Load(ctx, "bad"); err == nil {
		t.Fatalf("expected corrupt session to fail validation")
	}
}

// TestDeleteSession verifies delete removes the row and tolerates repeats.
func TestDeleteSession(t *testing.T) {
	store := openTestStore(t)
	ctx := testutil.Context(t, testTimeout)
	if _, err := store.Save(ctx, "s1", sampleData(t)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if _, ok, _ := store.Load(ctx, "s1"); ok {
		t.Fatalf("expected session to be gone")
	}
}

// TestSessionsSurviveReopen verifies data persists across Open calls.
func TestSessionsSurviveReopen(t *testing.T) {
	ctx := testutil.Context(t, testTimeout)
	path := filepath.Join(t.TempDir(), "session.duckdb")
	first, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := first.Save(ctx, "default", sampleData(t)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	if _, ok, err := second.Load(ctx, "default"); err != nil || !ok {
		t.Fatalf("expected persisted session, ok=%v err=%v", ok, err)
	}
}

// TestInMemoryStore verifies the in-memory path works without a directory.
func TestInMemoryStore(t *testing.T) {
	ctx := testutil.Context(t, testTimeout)
	store, err := Open(ctx, MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	if _, err := store.Save(ctx, "default", sampleData(t)); err != nil {
		t.Fatalf("save: %v", err)
	}
}

// TestCanonicalJSONSortsKeys verifies fingerprints ignore key order.
func TestCanonicalJSONSortsKeys(t *testing.T) {
	a, err := FingerprintJSON(map[string]interface{}{"b": 1, "a": []interface{}{map[string]interface{}{"y": 2, "x": 1}}})
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	b, err := FingerprintJSON(map[string]interface{}{"a": []interface{}{map[string]interface{}{"x": 1, "y": 2}}, "b": 1})
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if a != b || len(a) != 64 {
		t.Fatalf("expected equal 64-char fingerprints, got %q and %q", a, b)
	}
	out, _ := CanonicalJSON(map[string]int{"z": 1, "a": 2})
	if string(out) != `{"a":2,"z":1}` {
		t.Fatalf("unexpected canonical json %s", out)
	}
}
