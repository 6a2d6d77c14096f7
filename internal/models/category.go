package models

// QuestionCategory is the closed set of question kinds seekers can ask.
// Modeled as a typed enum so every category is handled explicitly rather than
// compared as free strings.
type QuestionCategory string

const (
	CategoryRadar       QuestionCategory = "radar"
	CategoryThermometer QuestionCategory = "thermometer"
	CategoryMatching    QuestionCategory = "matching"
	CategoryMeasuring   QuestionCategory = "measuring"
	CategoryPhoto       QuestionCategory = "photo"
	CategoryTentacles   QuestionCategory = "tentacles"
)

// Valid reports whether c is one of the known categories.
func (c QuestionCategory) Valid() bool {
	switch c {
	case CategoryRadar, CategoryThermometer, CategoryMatching,
		CategoryMeasuring, CategoryPhoto, CategoryTentacles:
		return true
	}
	return false
}
