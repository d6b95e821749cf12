package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"traductor/internal/domain"

	"github.com/tidwall/gjson"
)

// ErrUnknownPath is returned when a dotted path names no catalog entry
var ErrUnknownPath = errors.New("unknown vocabulary path")

// Vocabulary is the read-only vocabulary document addressed by dotted paths
// such as "verbs.estar" or "prepositions.de".
type Vocabulary struct {
	raw   []byte
	words []domain.Word
	roots []domain.VerbRoot
}

// LoadVocabulary parses and flattens a vocabulary JSON document
func LoadVocabulary(data []byte) (*Vocabulary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("vocabulary: invalid json")
	}
	v := &Vocabulary{raw: data}
	if err := v.walk("", gjson.ParseBytes(data)); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vocabulary) walk(prefix string, node gjson.Result) error {
	if !node.IsObject() {
		return nil
	}

	if node.Get("conjugations").Exists() {
		root, err := decodeRoot(prefix, node)
		if err != nil {
			return err
		}
		v.roots = append(v.roots, root)
		return nil
	}

	if node.Get("word").Exists() {
		w, err := decodeWord(prefix, node)
		if err != nil {
			return err
		}
		v.words = append(v.words, w)
		return nil
	}

	var walkErr error
	node.ForEach(func(key, value gjson.Result) bool {
		walkErr = v.walk(join(prefix, key.String()), value)
		return walkErr == nil
	})
	return walkErr
}

func decodeWord(path string, node gjson.Result) (domain.Word, error) {
	var w domain.Word
	if err := json.Unmarshal([]byte(node.Raw), &w); err != nil {
		return w, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	w.Path = path
	if w.Surface == "" {
		return w, fmt.Errorf("vocabulary %s: missing word", path)
	}
	if w.POS == "" {
		return w, fmt.Errorf("vocabulary %s: missing type", path)
	}
	return w, nil
}

func decodeRoot(path string, node gjson.Result) (domain.VerbRoot, error) {
	w, err := decodeWord(path, node)
	if err != nil {
		return domain.VerbRoot{}, err
	}
	root := domain.VerbRoot{Word: w, Conjugations: make(map[string][]domain.Word)}

	var rootErr error
	node.Get("conjugations").ForEach(func(bucket, forms gjson.Result) bool {
		tense := bucket.String()
		root.Tenses = append(root.Tenses, tense)
		for i, form := range forms.Array() {
			formPath := fmt.Sprintf("%s.conjugations.%s.%d", path, tense, i)
			c, err := decodeWord(formPath, form)
			if err != nil {
				rootErr = err
				return false
			}
			if c.Tense == "" {
				c.Tense = tense
			}
			c.Root = w.Surface
			c.RootPath = path
			root.Conjugations[tense] = append(root.Conjugations[tense], c)
		}
		return true
	})
	return root, rootErr
}

// Words returns every non-root word in document order
func (v *Vocabulary) Words() []domain.Word {
	return v.words
}

// Roots returns every verb root in document order
func (v *Vocabulary) Roots() []domain.VerbRoot {
	return v.roots
}

// Lookup returns the word at a dotted path
func (v *Vocabulary) Lookup(path string) (domain.Word, bool) {
	node := gjson.GetBytes(v.raw, path)
	if !node.IsObject() || !node.Get("word").Exists() {
		return domain.Word{}, false
	}
	w, err := decodeWord(path, node)
	if err != nil {
		return domain.Word{}, false
	}
	if parent, ok := conjugationParent(v.raw, path); ok {
		w.Root = parent.Get("word").String()
		w.RootPath = parentPath(path, 3)
		if w.Tense == "" {
			w.Tense = pathSegment(path, -2)
		}
	}
	return w, true
}

// Resolve returns the explanatory notes of the entry at path
func (v *Vocabulary) Resolve(path string) ([]domain.Note, error) {
	node := gjson.GetBytes(v.raw, path)
	if !node.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
	var notes []domain.Note
	for i, text := range node.Get("notes").Array() {
		notes = append(notes, domain.Note{
			Path:  path,
			Index: i,
			Key:   NoteKey(path, i),
			Text:  text.String(),
		})
	}
	return notes, nil
}

const noteSeparator = ".notes."

// NoteKey is the stable key of a note, itself a valid dotted path
func NoteKey(path string, index int) string {
	return fmt.Sprintf("%s%s%d", path, noteSeparator, index)
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
