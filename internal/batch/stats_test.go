package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_Empty(t *testing.T) {
	var s Stats
	assert.Equal(t, time.Duration(0), s.Mean())
	assert.Equal(t, time.Duration(0), s.Std())
}

func TestStats_Mean(t *testing.T) {
	s := Stats{Durations: []time.Duration{
		1 * time.Second,
		2 * time.Second,
		3 * time.Second,
	}}
	assert.Equal(t, 2*time.Second, s.Mean())
}

func TestStats_Std(t *testing.T) {
	s := Stats{Durations: []time.Duration{
		2 * time.Second,
		4 * time.Second,
	}}
	// Population std of {2s, 4s} is 1s.
	assert.Equal(t, 1*time.Second, s.Std())
}

func TestStats_StdSingleValue(t *testing.T) {
	s := Stats{Durations: []time.Duration{5 * time.Second}}
	assert.Equal(t, time.Duration(0), s.Std())
}
