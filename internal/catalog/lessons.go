package catalog

import (
	"encoding/json"
	"fmt"

	"traductor/internal/domain"
	"traductor/internal/grading"

	"github.com/tidwall/gjson"
)

type lessonFile struct {
	Lessons []lessonRecord `json:"lessons"`
}

type lessonRecord struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Sentences []sentenceRecord `json:"sentences"`
}

type sentenceRecord struct {
	English  string          `json:"english"`
	Sections []sectionRecord `json:"sections"`
}

type sectionRecord struct {
	English         string           `json:"english"`
	Word            string           `json:"word,omitempty"`
	Words           []string         `json:"words,omitempty"`
	Literal         string           `json:"literal,omitempty"`
	Accepted        json.RawMessage  `json:"accepted,omitempty"`
	References      map[string][]int `json:"references,omitempty"`
	PronounRequired bool             `json:"pronoun_required,omitempty"`
}

// Validate ensures the lesson record adheres to the schema requirements
func (l lessonRecord) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lesson id is required")
	}
	if l.Title == "" {
		return fmt.Errorf("lesson %s missing title", l.ID)
	}
	for i, s := range l.Sentences {
		for j, sec := range s.Sections {
			set := 0
			if sec.Word != "" {
				set++
			}
			if len(sec.Words) > 0 {
				set++
			}
			if sec.Literal != "" {
				set++
			}
			if set > 1 {
				return fmt.Errorf("lesson %s sentence %d section %d: word, words and literal are exclusive", l.ID, i, j)
			}
		}
	}
	return nil
}

func loadLessons(data []byte, v *Vocabulary) ([]domain.Lesson, error) {
	var file lessonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("lessons: %w", err)
	}

	seen := make(map[string]bool, len(file.Lessons))
	lessons := make([]domain.Lesson, 0, len(file.Lessons))
	for _, rec := range file.Lessons {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("duplicate lesson id %q", rec.ID)
		}
		seen[rec.ID] = true

		lesson := domain.Lesson{ID: rec.ID, Title: rec.Title}
		for i, s := range rec.Sentences {
			sentence := domain.Sentence{English: s.English}
			for j, sec := range s.Sections {
				section, err := buildSection(sec, v)
				if err != nil {
					return nil, fmt.Errorf("lesson %s sentence %d section %d: %w", rec.ID, i, j, err)
				}
				sentence.Sections = append(sentence.Sections, section)
			}
			lesson.Sentences = append(lesson.Sentences, sentence)
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

func buildSection(rec sectionRecord, v *Vocabulary) (domain.Section, error) {
	section := domain.Section{
		English:         rec.English,
		Accepted:        acceptedPhrases(rec.Accepted),
		PronounRequired: rec.PronounRequired,
	}
	for _, phrase := range section.Accepted {
		if grading.Normalize(phrase) == "" {
			return section, fmt.Errorf("accepted phrase %q has nothing to grade", phrase)
		}
	}

	switch {
	case rec.Word != "":
		w, ok := v.Lookup(rec.Word)
		if !ok {
			return section, fmt.Errorf("%w: %s", ErrUnknownPath, rec.Word)
		}
		section.Translation = domain.SingleWord(w)
	case len(rec.Words) > 0:
		words := make([]domain.Word, 0, len(rec.Words))
		for _, ref := range rec.Words {
			if w, ok := v.Lookup(ref); ok {
				words = append(words, w)
				continue
			}
			words = append(words, domain.Word{Surface: ref})
		}
		section.Translation = domain.WordSequence(words...)
	case rec.Literal != "":
		section.Translation = domain.Literal(rec.Literal)
	}

	if len(rec.References) > 0 {
		section.References = make(map[string][]int, len(rec.References))
		for path, indices := range rec.References {
			notes, err := v.Resolve(path)
			if err != nil {
				return section, err
			}
			for _, i := range indices {
				if i < 0 || i >= len(notes) {
					return section, fmt.Errorf("note %d out of range for %s", i, path)
				}
			}
			section.References[path] = indices
		}
	}

	return section, nil
}

// acceptedPhrases reads "accepted" as either a string or a list of strings
func acceptedPhrases(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	value := gjson.ParseBytes(raw)
	if value.IsArray() {
		var out []string
		for _, item := range value.Array() {
			out = append(out, item.String())
		}
		return out
	}
	if s := value.String(); s != "" {
		return []string{s}
	}
	return nil
}
