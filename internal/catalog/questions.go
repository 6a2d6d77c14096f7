// internal/catalog/questions.go
package catalog

import "github.com/wclam/hideseek/internal/models"

// QuestionOption is one entry in the static question catalog: a category, the
// coin reward paid to the hider when the question is asked, and an optional
// gating predicate evaluated against the current round.
type QuestionOption struct {
	ID       string
	Category models.QuestionCategory
	Text     string
	Reward   int

	// Available gates when the option may be asked. Nil means always
	// available while a round exists.
	Available func(r *models.GameRound) bool
}

// seekingOnly gates an option on the round having entered the seeking phase.
func seekingOnly(r *models.GameRound) bool {
	return r != nil && r.Status == models.RoundSeeking
}

// Questions is the static question-option catalog. Configuration data, read
// only; not part of the core's owned state.
var Questions = []QuestionOption{
	{ID: "radar-1km", Category: models.CategoryRadar, Text: "Are you within 1 km of us?", Reward: 30},
	{ID: "radar-station", Category: models.CategoryRadar, Text: "Are you within 3 stations of us?", Reward: 30},
	{ID: "thermo-closer", Category: models.CategoryThermometer, Text: "Did our last move bring us closer to you?", Reward: 20},
	{ID: "match-line", Category: models.CategoryMatching, Text: "Are you on the same line as us?", Reward: 25},
	{ID: "measure-exits", Category: models.CategoryMeasuring, Text: "Does your station have more exits than ours?", Reward: 25},
	{ID: "photo-street", Category: models.CategoryPhoto, Text: "Send a photo of the nearest street sign.", Reward: 40, Available: seekingOnly},
	{ID: "tentacles-terminus", Category: models.CategoryTentacles, Text: "Which terminus of your line is closest?", Reward: 50, Available: seekingOnly},
}

// QuestionByID looks up a catalog option.
func QuestionByID(id string) (QuestionOption, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return QuestionOption{}, false
}

// RewardFor returns the coin reward for a category. Unknown categories pay
// nothing.
func RewardFor(c models.QuestionCategory) int {
	switch c {
	case models.CategoryRadar:
		return 30
	case models.CategoryThermometer:
		return 20
	case models.CategoryMatching:
		return 25
	case models.CategoryMeasuring:
		return 25
	case models.CategoryPhoto:
		return 40
	case models.CategoryTentacles:
		return 50
	}
	return 0
}
