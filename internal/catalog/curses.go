// internal/catalog/curses.go
package catalog

import "time"

// ResponseKind is the closed set of seeker responses a curse can demand.
type ResponseKind string

const (
	// ResponseNone: the curse has no dedicated proof; a single seeker
	// acknowledgement clears it, same as a confirmation curse.
	ResponseNone ResponseKind = "none"
	// ResponseConfirmation: seekers confirm they performed the task.
	ResponseConfirmation ResponseKind = "confirmation"
	// ResponsePhoto: seekers attach photo proof, which the hider must then
	// acknowledge before the curse clears.
	ResponsePhoto ResponseKind = "photo"
)

// CurseRule is one entry of the six-sided curse catalog.
type CurseRule struct {
	Number      int
	Name        string
	Description string
	Effect      string

	// Duration is a fixed effect window timed externally against the active
	// curse's start time. Zero means no timed component.
	Duration time.Duration

	ResponseKind ResponseKind

	// RequiresHiderText: activation must carry free-text input from the hider
	// (a riddle, a description) before the curse takes effect.
	RequiresHiderText bool
}

// Curses is the static curse catalog, keyed 1..6 to match the die.
var Curses = [6]CurseRule{
	{
		Number:       1,
		Name:         "Curse of the Frozen Feet",
		Description:  "The seekers' boots turn to ice.",
		Effect:       "All seekers must stand still for five minutes.",
		Duration:     5 * time.Minute,
		ResponseKind: ResponseConfirmation,
	},
	{
		Number:       2,
		Name:         "Curse of the Overgrown Lens",
		Description:  "The seekers' camera grows wild.",
		Effect:       "The next seeker photo must be taken at maximum zoom. Send it as proof.",
		ResponseKind: ResponsePhoto,
	},
	{
		Number:       3,
		Name:         "Curse of the Silent Tongue",
		Description:  "Words abandon the seekers.",
		Effect:       "Seekers may not speak to each other until their next question.",
		ResponseKind: ResponseNone,
	},
	{
		Number:            4,
		Name:              "Curse of the Drawn Compass",
		Description:       "The hider bends the seekers' bearings.",
		Effect:            "Solve the hider's riddle before asking another question.",
		ResponseKind:      ResponseConfirmation,
		RequiresHiderText: true,
	},
	{
		Number:       5,
		Name:         "Curse of the Lemon Phone",
		Description:  "The seekers' phones sour.",
		Effect:       "All seeker phones stay locked for ten minutes.",
		Duration:     10 * time.Minute,
		ResponseKind: ResponseConfirmation,
	},
	{
		Number:       6,
		Name:         "Curse of the Mirrored Path",
		Description:  "The road behind repeats itself.",
		Effect:       "Retrace your last transit leg and photograph the platform you return to.",
		ResponseKind: ResponsePhoto,
	},
}

// CurseByNumber returns the rule for a die face in [1,6].
func CurseByNumber(n int) (CurseRule, bool) {
	if n < 1 || n > 6 {
		return CurseRule{}, false
	}
	return Curses[n-1], true
}
