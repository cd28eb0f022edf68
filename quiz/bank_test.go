package quiz

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBank(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDirReadsWellFormedFiles(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "go_basics.json", `{
		"questions": [
			{"question": "Zero value of an int?", "options": ["0", "nil", "undefined"], "answer": "0"},
			{"question": "Keyword that starts a goroutine?", "options": ["go", "run"], "answer": "go", "difficulty": "easy"}
		]
	}`)
	writeBank(t, dir, "ladder.json", `{
		"millionaire_mode": true,
		"questions": [
			{"question": "2+2?", "options": ["3", "4"], "answer": "4"}
		]
	}`)

	cats := LoadDir(dir)
	if len(cats) != 2 {
		t.Fatalf("categories = %d, want 2", len(cats))
	}

	basics := cats[0]
	if basics.Name != "go basics" {
		t.Errorf("name = %q, want %q", basics.Name, "go basics")
	}
	if basics.Millionaire {
		t.Error("go basics flagged millionaire")
	}
	if len(basics.Questions) != 2 {
		t.Fatalf("go basics questions = %d, want 2", len(basics.Questions))
	}
	if basics.Questions[0].Correct != 0 {
		t.Errorf("correct index = %d, want 0", basics.Questions[0].Correct)
	}
	if basics.Questions[1].Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", basics.Questions[1].Difficulty)
	}

	if !cats[1].Millionaire {
		t.Error("ladder category lost its millionaire flag")
	}
	if cats[1].Questions[0].Correct != 1 {
		t.Errorf("ladder correct index = %d, want 1", cats[1].Questions[0].Correct)
	}
}

func TestLoadDirSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "broken.json", `{"questions": [`)
	writeBank(t, dir, "fine.json", `{
		"questions": [{"question": "q", "options": ["a", "b"], "answer": "b"}]
	}`)
	writeBank(t, dir, "notes.txt", "not a bank")

	cats := LoadDir(dir)
	if len(cats) != 1 {
		t.Fatalf("categories = %d, want 1", len(cats))
	}
	if cats[0].Name != "fine" {
		t.Errorf("survivor = %q, want fine", cats[0].Name)
	}
}

func TestLoadDirMissingDirIsEmpty(t *testing.T) {
	cats := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if len(cats) != 0 {
		t.Fatalf("categories = %d, want 0", len(cats))
	}
}

func TestLoadDirDropsQuestionsWithoutAMatchingAnswer(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "mixed.json", `{
		"questions": [
			{"question": "orphan", "options": ["a", "b"], "answer": "c"},
			{"question": "kept", "options": ["a", "b"], "answer": "a"}
		]
	}`)
	writeBank(t, dir, "all_orphans.json", `{
		"questions": [{"question": "orphan", "options": ["a", "b"], "answer": "z"}]
	}`)

	cats := LoadDir(dir)
	if len(cats) != 1 {
		t.Fatalf("categories = %d, want 1 (all-orphan file dropped)", len(cats))
	}
	if len(cats[0].Questions) != 1 || cats[0].Questions[0].Question != "kept" {
		t.Fatalf("questions = %+v, want just the kept one", cats[0].Questions)
	}
}

func TestLoadDirClipsOptionsToFour(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "wide.json", `{
		"questions": [
			{"question": "in range", "options": ["a", "b", "c", "d", "e"], "answer": "d"},
			{"question": "clipped away", "options": ["a", "b", "c", "d", "e"], "answer": "e"}
		]
	}`)

	cats := LoadDir(dir)
	if len(cats) != 1 || len(cats[0].Questions) != 1 {
		t.Fatalf("want one category with one surviving question, got %+v", cats)
	}
	q := cats[0].Questions[0]
	if len(q.Options) != 4 {
		t.Errorf("options = %d, want 4", len(q.Options))
	}
	if q.Correct != 3 {
		t.Errorf("correct index = %d, want 3", q.Correct)
	}
}

func TestAnswerIndex(t *testing.T) {
	opts := []string{"alpha", "beta", "gamma"}

	if i, ok := answerIndex(opts, "beta"); !ok || i != 1 {
		t.Errorf("answerIndex(beta) = %d, %v", i, ok)
	}
	if _, ok := answerIndex(opts, "delta"); ok {
		t.Error("answerIndex matched a missing answer")
	}
	if _, ok := answerIndex(opts, "Beta"); ok {
		t.Error("answerIndex ignored case when matching")
	}
}
