package domain

// TextStats holds simple counts over a text.
type TextStats struct {
	Words               int `json:"words"`
	Characters          int `json:"characters"`
	CharactersNoSpaces  int `json:"characters_no_spaces"`
	Sentences           int `json:"sentences"`
	Paragraphs          int `json:"paragraphs"`
	ReadingTimeMinutes  int `json:"reading_time_minutes"`
	SpeakingTimeMinutes int `json:"speaking_time_minutes"`
}

// IsEmpty returns true when the text contained no words.
func (s TextStats) IsEmpty() bool {
	return s.Words == 0
}
