// Package catalog loads the read-only lesson and vocabulary catalogs.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"traductor/internal/domain"
	"traductor/internal/grading"
	"traductor/internal/vocab"

	"golang.org/x/exp/slices"
)

//go:embed content/*.json
var content embed.FS

const (
	vocabularyFile = "vocabulary.json"
	lessonsFile    = "lessons.json"
)

// Catalog bundles the vocabulary, its index and the ordered lessons
type Catalog struct {
	Vocabulary *Vocabulary
	Index      *vocab.Index

	lessons []domain.Lesson
	byID    map[string]int
}

// Load builds a catalog from vocabulary and lesson JSON documents
func Load(vocabularyJSON, lessonsJSON []byte) (*Catalog, error) {
	v, err := LoadVocabulary(vocabularyJSON)
	if err != nil {
		return nil, err
	}

	idx, err := vocab.Build(v.Words(), v.Roots())
	if err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}

	lessons, err := loadLessons(lessonsJSON, v)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Vocabulary: v,
		Index:      idx,
		lessons:    lessons,
		byID:       make(map[string]int, len(lessons)),
	}
	for i, l := range lessons {
		c.byID[l.ID] = i
	}
	return c, nil
}

// Default loads the catalog embedded in the binary
func Default() (*Catalog, error) {
	vocabularyJSON, err := content.ReadFile("content/" + vocabularyFile)
	if err != nil {
		return nil, err
	}
	lessonsJSON, err := content.ReadFile("content/" + lessonsFile)
	if err != nil {
		return nil, err
	}
	return Load(vocabularyJSON, lessonsJSON)
}

// LoadDir loads vocabulary.json and lessons.json from dir
func LoadDir(dir string) (*Catalog, error) {
	vocabularyJSON, err := os.ReadFile(filepath.Join(dir, vocabularyFile))
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	lessonsJSON, err := os.ReadFile(filepath.Join(dir, lessonsFile))
	if err != nil {
		return nil, fmt.Errorf("read lessons: %w", err)
	}
	return Load(vocabularyJSON, lessonsJSON)
}

// Lessons returns the lessons in catalog order
func (c *Catalog) Lessons() []domain.Lesson {
	return c.lessons
}

// Lesson returns a lesson by ID
func (c *Catalog) Lesson(id string) (domain.Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Lesson{}, false
	}
	return c.lessons[i], true
}

// Section returns a section by coordinates
func (c *Catalog) Section(lessonID string, sentence, section int) (domain.Section, bool) {
	lesson, ok := c.Lesson(lessonID)
	if !ok || sentence < 0 || sentence >= len(lesson.Sentences) {
		return domain.Section{}, false
	}
	sections := lesson.Sentences[sentence].Sections
	if section < 0 || section >= len(sections) {
		return domain.Section{}, false
	}
	return sections[section], true
}

// Resolve returns the notes of the vocabulary entry at path
func (c *Catalog) Resolve(path string) ([]domain.Note, error) {
	return c.Vocabulary.Resolve(path)
}

// Note resolves a note key ("<path>.notes.<i>") to its note
func (c *Catalog) Note(key string) (domain.Note, bool) {
	i := strings.LastIndex(key, noteSeparator)
	if i <= 0 {
		return domain.Note{}, false
	}
	index, err := strconv.Atoi(key[i+len(noteSeparator):])
	if err != nil {
		return domain.Note{}, false
	}
	notes, err := c.Resolve(key[:i])
	if err != nil || index < 0 || index >= len(notes) {
		return domain.Note{}, false
	}
	return notes[index], true
}

// Notes resolves the notes a section references, in key order. Keys that no
// longer resolve are skipped.
func Notes(c *Catalog, section domain.Section) []domain.Note {
	var notes []domain.Note
	for _, key := range ReferenceKeys(section) {
		if n, ok := c.Note(key); ok {
			notes = append(notes, n)
		}
	}
	return notes
}

// ReferenceKeys returns the note keys referenced by a section, sorted
func ReferenceKeys(section domain.Section) []string {
	var keys []string
	for path, indices := range section.References {
		for _, i := range indices {
			keys = append(keys, NoteKey(path, i))
		}
	}
	slices.Sort(keys)
	return keys
}

// GradableSections counts the sections of a sentence that can be graded
func GradableSections(sentence domain.Sentence) int {
	n := 0
	for _, s := range sentence.Sections {
		if grading.IsGradable(s) {
			n++
		}
	}
	return n
}
