// Package estimate derives a rough shot and keyframe plan from a synopsis.
package estimate

import (
	"strings"

	"mangastudio/pkg/types"
)

const (
	wordsPerShot     = 100
	keyframesPerShot = 3
	secondsPerShot   = 30
)

// FromText estimates shots from the word count of text: one shot per started
// hundred words, never fewer than one.
func FromText(text string) types.Estimate {
	words := len(strings.Fields(text))
	shots := (words + wordsPerShot - 1) / wordsPerShot
	if shots < 1 {
		shots = 1
	}
	return types.Estimate{
		Words:           words,
		Shots:           shots,
		Keyframes:       shots * keyframesPerShot,
		DurationSeconds: shots * secondsPerShot,
	}
}
