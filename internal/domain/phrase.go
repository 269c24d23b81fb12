package domain

// PhraseEntry is one category/answer pair from the phrase list
type PhraseEntry struct {
	Category string
	Answer   string
}
