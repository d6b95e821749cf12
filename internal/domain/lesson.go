package domain

import "strings"

// TranslationKind discriminates the target-language content of a section
type TranslationKind int

const (
	TranslationNone TranslationKind = iota
	TranslationLiteral
	TranslationWord
	TranslationWords
)

// Translation is the expected target-language content of a section.
// Exactly one of Literal, Word or Words is meaningful, chosen by Kind.
type Translation struct {
	Kind    TranslationKind
	Literal string
	Word    Word
	Words   []Word
}

// Literal builds a bare string translation
func Literal(s string) Translation {
	return Translation{Kind: TranslationLiteral, Literal: s}
}

// SingleWord builds a one-word translation
func SingleWord(w Word) Translation {
	return Translation{Kind: TranslationWord, Word: w}
}

// WordSequence builds an ordered multi-word translation
func WordSequence(words ...Word) Translation {
	return Translation{Kind: TranslationWords, Words: words}
}

// Surface joins the content into the phrase a learner would type
func (t Translation) Surface() string {
	switch t.Kind {
	case TranslationLiteral:
		return t.Literal
	case TranslationWord:
		return t.Word.Surface
	case TranslationWords:
		parts := make([]string, 0, len(t.Words))
		for _, w := range t.Words {
			parts = append(parts, w.Surface)
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// Units returns the structured words carried by the translation
func (t Translation) Units() []Word {
	switch t.Kind {
	case TranslationWord:
		return []Word{t.Word}
	case TranslationWords:
		return t.Words
	}
	return nil
}

// Section is one fragment of a sentence
type Section struct {
	English     string
	Translation Translation
	// Accepted overrides answers derived from Translation when non-empty.
	Accepted []string
	// References maps a catalog path to indices of its notes.
	References map[string][]int
	// PronounRequired is authored lesson metadata; it is never inferred.
	PronounRequired bool
}

// IsInert reports whether the section carries nothing to translate
func (s Section) IsInert() bool {
	return s.Translation.Kind == TranslationNone && len(s.Accepted) == 0
}

// Sentence is an ordered list of sections
type Sentence struct {
	English  string
	Sections []Section
}

// Lesson is an ordered list of sentences
type Lesson struct {
	ID        string
	Title     string
	Sentences []Sentence
}
