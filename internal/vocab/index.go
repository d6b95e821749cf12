// Package vocab indexes the vocabulary catalog for surface and conjugation
// lookups. An Index is built once and is read-only afterwards.
package vocab

import (
	"fmt"
	"strings"

	"traductor/internal/domain"
	"traductor/internal/grading"
)

// Index is the flattened, read-only view of the vocabulary
type Index struct {
	words     []domain.Word
	bySurface map[string][]domain.Word
	byPath    map[string]domain.Word

	roots      []domain.VerbRoot
	rootByName map[string]int
	// conjugations[root][tense][person]
	conjugations map[string]map[string]map[string]domain.Word
}

// Build indexes words and verb roots.
// It fails when two conjugations share a normalized surface.
func Build(words []domain.Word, roots []domain.VerbRoot) (*Index, error) {
	idx := &Index{
		bySurface:    make(map[string][]domain.Word),
		byPath:       make(map[string]domain.Word),
		rootByName:   make(map[string]int),
		conjugations: make(map[string]map[string]map[string]domain.Word),
	}

	for _, w := range words {
		idx.add(w)
	}

	seen := make(map[string]string)
	for _, root := range roots {
		name := grading.Normalize(root.Surface)
		if _, dup := idx.rootByName[name]; dup {
			return nil, fmt.Errorf("duplicate verb root %q", root.Surface)
		}
		idx.rootByName[name] = len(idx.roots)
		idx.roots = append(idx.roots, root)
		idx.add(root.Word)

		byTense := make(map[string]map[string]domain.Word)
		for _, form := range root.Forms() {
			key := grading.Normalize(form.Surface)
			if other, dup := seen[key]; dup {
				return nil, fmt.Errorf("conjugation %q of %s collides with %s", form.Surface, root.Surface, other)
			}
			seen[key] = root.Surface
			idx.add(form)

			if byTense[form.Tense] == nil {
				byTense[form.Tense] = make(map[string]domain.Word)
			}
			byTense[form.Tense][form.Person] = form
		}
		idx.conjugations[name] = byTense
	}

	return idx, nil
}

func (idx *Index) add(w domain.Word) {
	idx.words = append(idx.words, w)
	if w.Path != "" {
		idx.byPath[w.Path] = w
	}
	keys := append([]string{w.Surface}, w.Alternates...)
	for _, key := range keys {
		key = grading.Normalize(key)
		if key == "" {
			continue
		}
		idx.bySurface[key] = append(idx.bySurface[key], w)
	}
}

// Words returns every indexed word in catalog order
func (idx *Index) Words() []domain.Word {
	return idx.words
}

// BySurface returns all words whose surface or alternate normalizes to text
func (idx *Index) BySurface(text string) []domain.Word {
	return idx.bySurface[grading.Normalize(text)]
}

// ByPath returns the word registered at a catalog path
func (idx *Index) ByPath(path string) (domain.Word, bool) {
	w, ok := idx.byPath[path]
	return w, ok
}

// Conjugation returns the conjugation whose surface normalizes to text
func (idx *Index) Conjugation(text string) (domain.Word, bool) {
	for _, w := range idx.BySurface(text) {
		if w.IsConjugation() {
			return w, true
		}
	}
	return domain.Word{}, false
}

// Pronouns returns all pronouns whose surface normalizes to text
func (idx *Index) Pronouns(text string) []domain.Word {
	var out []domain.Word
	for _, w := range idx.BySurface(text) {
		if w.IsPronoun() {
			out = append(out, w)
		}
	}
	return out
}

// Root returns the verb root by infinitive
func (idx *Index) Root(name string) (domain.VerbRoot, bool) {
	i, ok := idx.rootByName[grading.Normalize(name)]
	if !ok {
		return domain.VerbRoot{}, false
	}
	return idx.roots[i], true
}

// Roots returns every verb root in catalog order
func (idx *Index) Roots() []domain.VerbRoot {
	return idx.roots
}

// Form returns the conjugation of root for tense and person
func (idx *Index) Form(root, tense, person string) (domain.Word, bool) {
	w, ok := idx.conjugations[grading.Normalize(root)][tense][person]
	return w, ok
}

// LinkingRoots returns the copular verb roots in catalog order
func (idx *Index) LinkingRoots() []domain.VerbRoot {
	var out []domain.VerbRoot
	for _, root := range idx.roots {
		if root.Linking {
			out = append(out, root)
		}
	}
	return out
}

// IsLinking reports whether the named root is a copular verb
func (idx *Index) IsLinking(root string) bool {
	r, ok := idx.Root(root)
	return ok && r.Linking
}

// SamePerson compares grammatical persons by substring containment so that
// compound labels such as "third person singular formal" still match.
func SamePerson(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}
