package distance_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/distance"
)

func TestParse_Square(t *testing.T) {
	src := "A B 10\nB C 10\nC D 10\nD A 10\nA C 14\nB D 14\n"
	m, err := distance.Parse(strings.NewReader(src), "square")
	require.NoError(t, err)

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 10.0, m.Cost(0, 1))
	assert.Equal(t, 14.0, m.Cost(1, 3))
}

func TestParse_ExtraSpacing(t *testing.T) {
	src := "  A   B\t3  \n B C 4"
	m, err := distance.Parse(strings.NewReader(src), "spaced")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 4.0, m.Cost(1, 2))
}

func TestParse_BlankLines(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"leading blank", "\nA B 3\n", 1},
		{"blank between edges", "A B 3\n\nB C 4\n", 2},
		{"whitespace only", "A B 3\n \t \nB C 4\n", 2},
		{"trailing blank", "A B 3\nB C 4\n\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := distance.Parse(strings.NewReader(tc.src), "blank")
			require.ErrorIs(t, err, distance.ErrLoad)
			var le *distance.LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tc.line, le.Line)
		})
	}

	// A single trailing newline ends the last line; it is not a blank line.
	m, err := distance.Parse(strings.NewReader("A B 3\n"), "newline")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"two fields", "A B 1\nA B\n", 2},
		{"four fields", "A B 1 2\n", 1},
		{"non integer", "A B 1\nB C ten\n", 2},
		{"float cost", "A B 1.5\n", 1},
		{"negative cost", "A B -3\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := distance.Parse(strings.NewReader(tc.src), "bad.txt")
			require.Error(t, err)
			assert.True(t, errors.Is(err, distance.ErrLoad))

			var le *distance.LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, "bad.txt", le.File)
			assert.Equal(t, tc.line, le.Line)
			assert.Contains(t, err.Error(), "bad.txt")
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := distance.LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, distance.ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var le *distance.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.File)
	assert.Zero(t, le.Line)
}

func TestLoadFile_Testdata(t *testing.T) {
	m, err := distance.LoadFile(filepath.Join("testdata", "five_cities.txt"))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 10, m.Edges())

	_, err = distance.LoadFile(filepath.Join("testdata", "malformed.txt"))
	assert.ErrorIs(t, err, distance.ErrLoad)
}
