package quiz

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Question is one flashcard as authored in the JSON files. Correct is
// derived on load by matching Answer against Options.
type Question struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty string   `json:"difficulty,omitempty"`

	Correct int `json:"-"`
}

// questionFile mirrors the on-disk shape of one questions/*.json file.
type questionFile struct {
	MillionaireMode bool       `json:"millionaire_mode"`
	Questions       []Question `json:"questions"`
}

// Category is one loaded question file, named after its file stem.
type Category struct {
	Name        string
	Millionaire bool
	Questions   []Question
}

const maxOptions = 4

// LoadDir reads every *.json file under dir into a category. File and
// question problems degrade to a log line plus a skip; an unreadable
// dir yields an empty list and the "no categories" screen.
func LoadDir(dir string) []Category {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Warning: could not read questions dir %s: %v", dir, err)
		return nil
	}

	var cats []Category
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: could not read %s: %v", path, err)
			continue
		}

		var qf questionFile
		if err := json.Unmarshal(data, &qf); err != nil {
			log.Printf("Warning: could not parse %s: %v", path, err)
			continue
		}

		cat := Category{
			Name:        categoryName(entry.Name()),
			Millionaire: qf.MillionaireMode,
		}
		for _, q := range qf.Questions {
			if q.Question == "" || len(q.Options) < 2 {
				log.Printf("Warning: skipping malformed question in %s", path)
				continue
			}
			if len(q.Options) > maxOptions {
				q.Options = q.Options[:maxOptions]
			}
			idx, ok := answerIndex(q.Options, q.Answer)
			if !ok {
				log.Printf("Warning: answer %q not among options in %s", q.Answer, path)
				continue
			}
			q.Correct = idx
			cat.Questions = append(cat.Questions, q)
		}
		if len(cat.Questions) == 0 {
			continue
		}
		cats = append(cats, cat)
	}
	return cats
}

// answerIndex finds the option that matches the authored answer text.
func answerIndex(options []string, answer string) (int, bool) {
	for i, opt := range options {
		if opt == answer {
			return i, true
		}
	}
	return 0, false
}

func categoryName(filename string) string {
	stem := strings.TrimSuffix(filename, ".json")
	return strings.ReplaceAll(stem, "_", " ")
}
