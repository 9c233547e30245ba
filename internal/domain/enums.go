package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is the reviewer's self-assessed difficulty after attempting a problem.
type Level string

const (
	LevelAgain Level = "AGAIN"
	LevelHard  Level = "HARD"
	LevelGood  Level = "GOOD"
	LevelEasy  Level = "EASY"
)

// Levels lists every level in ascending order of confidence.
var Levels = []Level{LevelAgain, LevelHard, LevelGood, LevelEasy}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelAgain, LevelHard, LevelGood, LevelEasy:
		return true
	}
	return false
}

// ParseLevel upper-cases text and matches it against the four level names.
// Surrounding whitespace is not trimmed, so " good" is rejected.
func ParseLevel(text string) (Level, error) {
	l := Level(cases.Upper(language.Und).String(text))
	if !l.IsValid() {
		return "", &InvalidLevelError{Text: text}
	}
	return l, nil
}

// SortCriterion names the field a problem list is ordered by.
type SortCriterion string

const (
	SortByNextReview SortCriterion = "next_review" // ascending, soonest due first
	SortByCreatedAt  SortCriterion = "created_at"  // descending, newest first
	SortByName       SortCriterion = "name"        // ascending
)

func (c SortCriterion) String() string { return string(c) }

func (c SortCriterion) IsValid() bool {
	switch c {
	case SortByNextReview, SortByCreatedAt, SortByName:
		return true
	}
	return false
}

// ParseSortCriterion matches text exactly; criteria are case-sensitive.
func ParseSortCriterion(text string) (SortCriterion, error) {
	c := SortCriterion(text)
	if !c.IsValid() {
		return "", &InvalidCriterionError{Text: text}
	}
	return c, nil
}
