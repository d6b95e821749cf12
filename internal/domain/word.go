package domain

// Part-of-speech tags used by the catalog
const (
	POSVerb        = "verb"
	POSPronoun     = "pronoun"
	POSNoun        = "noun"
	POSArticle     = "article"
	POSPreposition = "preposition"
	POSAdjective   = "adjective"
)

// Word is a vocabulary catalog entry
type Word struct {
	Surface    string   `json:"word"`
	POS        string   `json:"type"`
	Tense      string   `json:"tense,omitempty"`
	Person     string   `json:"person,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Category   string   `json:"category,omitempty"`
	Alternates []string `json:"alternates,omitempty"`
	Notes      []string `json:"notes,omitempty"`
	Linking    bool     `json:"linking,omitempty"`

	// Path is the dotted catalog path of the entry.
	Path string `json:"-"`
	// Root is the infinitive of a conjugated form, empty otherwise.
	Root string `json:"-"`
	// RootPath is the catalog path of the owning verb root.
	RootPath string `json:"-"`
}

// IsConjugation reports whether the word is a conjugated verb form
func (w Word) IsConjugation() bool {
	return w.Root != ""
}

// IsPronoun reports whether the word is a pronoun
func (w Word) IsPronoun() bool {
	return w.POS == POSPronoun
}

// VerbRoot is an infinitive together with its conjugation buckets
type VerbRoot struct {
	Word
	// Tenses lists bucket names in catalog order.
	Tenses       []string
	Conjugations map[string][]Word
}

// Forms returns every conjugation in bucket order
func (r VerbRoot) Forms() []Word {
	var forms []Word
	for _, tense := range r.Tenses {
		forms = append(forms, r.Conjugations[tense]...)
	}
	return forms
}

// Note is an explanatory note attached to a catalog entry
type Note struct {
	Path  string
	Index int
	Key   string
	Text  string
}
