package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePayload = `{
  "greeting_msg": {"text": "Welcome aboard", "options": ["Start"]},
  "questions": [
    {"type": "single", "question": "Can you work on site?", "disqualifier": true,
     "options": [{"value": "Yes", "score": 1}, {"value": "No", "score": 0}]},
    {"type": "free_text", "question": "Tell us about yourself"}
  ]
}`

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// writeProject writes a plain-mode config under a temp root and returns
// its path. An empty fallback uses the bundled payload.
func writeProject(t *testing.T, fallback string) string {
	t.Helper()
	root := t.TempDir()
	body := "version: 1\n" +
		"source:\n" +
		"  fallback_path: \"" + fallback + "\"\n" +
		"session:\n" +
		"  db_path: .prescreen/session.duckdb\n" +
		"  id: test\n" +
		"ui:\n" +
		"  mode: plain\n" +
		"  no_color: true\n"
	return writeFile(t, filepath.Join(root, ".prescreen", "config.yml"), body)
}
