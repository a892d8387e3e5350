package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/tsp"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want Choice
	}{
		{"1", ChoiceDFS},
		{" 2 ", ChoiceUCS},
		{"3", ChoiceAStar},
		{"4\n", ChoiceExit},
	}
	for _, tt := range tests {
		got, err := ParseChoice(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseChoiceInvalid(t *testing.T) {
	for _, in := range []string{"", "0", "5", "-1", "x", "1.5", "12"} {
		_, err := ParseChoice(in)
		assert.ErrorIs(t, err, ErrInvalidChoice, in)
	}
}

func TestChoiceAlgorithm(t *testing.T) {
	want := map[Choice]tsp.Algorithm{
		ChoiceDFS:   tsp.DFS,
		ChoiceUCS:   tsp.UCS,
		ChoiceAStar: tsp.AStarSearch,
	}
	for c, a := range want {
		got, ok := c.Algorithm()
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}
	_, ok := ChoiceExit.Algorithm()
	assert.False(t, ok)
	assert.Equal(t, "A* Search", ChoiceAStar.String())
}
