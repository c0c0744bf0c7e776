package domain

import "errors"

// SkillLevel represents the learner's proficiency tier. It governs
// week-count bounds, weekly hour estimates, and content difficulty.
type SkillLevel string

// Supported skill levels.
const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// ErrInvalidSkillLevel is returned when a skill level string is not one of
// the supported values.
var ErrInvalidSkillLevel = errors.New("invalid skill level")

// ParseSkillLevel converts a string into a SkillLevel.
// Returns ErrInvalidSkillLevel for unrecognized values.
func ParseSkillLevel(s string) (SkillLevel, error) {
	level := SkillLevel(s)
	if !level.Valid() {
		return "", ErrInvalidSkillLevel
	}
	return level, nil
}

// Valid reports whether the skill level is one of the supported values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

// Difficulty returns the quiz/project difficulty tier that corresponds to
// the skill level.
func (l SkillLevel) Difficulty() Difficulty {
	switch l {
	case SkillBeginner:
		return DifficultyEasy
	case SkillAdvanced:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}
