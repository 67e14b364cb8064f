package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	var b, err = ParseBoard(InitialBoardString)
	require.NoError(t, err)
	assert.Equal(t, InitialBoard(), b)
	assert.Equal(t, InitialBoardString, b.String())
	assert.Equal(t, 4, b.DiscCount())

	_, err = ParseBoard(InitialBoardString[1:])
	assert.Error(t, err)
	_, err = ParseBoard(InitialBoardString + "-")
	assert.Error(t, err)
	_, err = ParseBoard("Z" + InitialBoardString[1:])
	assert.Error(t, err)
}

func TestParseBoardMultiline(t *testing.T) {
	var b, err = ParseBoard(`
		........
		........
		........
		...OX...
		...XO...
		........
		........
		........`)
	require.NoError(t, err)
	assert.Equal(t, InitialBoard(), b)
}

func TestMoveNotation(t *testing.T) {
	var tests = []struct {
		s    string
		move Move
	}{
		{"a1", MakeMove(0, 0)},
		{"d3", MakeMove(2, 3)},
		{"c4", MakeMove(3, 2)},
		{"h8", MakeMove(7, 7)},
		{"pass", MoveEmpty},
	}
	for _, test := range tests {
		var m, err = ParseMove(test.s)
		require.NoError(t, err, test.s)
		assert.Equal(t, test.move, m)
		assert.Equal(t, test.s, m.String())
	}
	for _, bad := range []string{"", "i1", "a9", "a10", "zz"} {
		var _, err = ParseMove(bad)
		assert.Error(t, err, bad)
	}
}

func TestCornersAndXSquares(t *testing.T) {
	for i, c := range Corners {
		assert.True(t, c.IsCorner())
		var x = XSquares[i]
		assert.False(t, x.IsCorner())
		assert.Equal(t, 1, absInt(c.Row()-x.Row()))
		assert.Equal(t, 1, absInt(c.Col()-x.Col()))
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSide(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	var s, err = ParseSide("o")
	require.NoError(t, err)
	assert.Equal(t, White, s)
	_, err = ParseSide("?")
	assert.Error(t, err)
}

func TestGamePassAndGameOver(t *testing.T) {
	var b, err = ParseBoard("OX------" + "--------" + "--------" + "--------" +
		"--------" + "--------" + "--------" + "--------")
	require.NoError(t, err)
	var g = NewGameFromBoard(b, Black)

	require.True(t, g.MustPass())
	assert.Error(t, g.Play(MakeMove(2, 3)))
	require.NoError(t, g.Play(MoveEmpty))
	assert.Equal(t, White, g.Side)

	assert.Error(t, g.Play(MoveEmpty), "white has a legal move")
	require.NoError(t, g.Play(MakeMove(0, 2)))

	assert.True(t, g.IsOver())
	assert.Equal(t, White, g.Winner())
	var black, white = g.Score()
	assert.Equal(t, 0, black)
	assert.Equal(t, 3, white)
	assert.ErrorIs(t, g.Play(MoveEmpty), ErrGameOver)
	assert.Equal(t, []Move{MoveEmpty, MakeMove(0, 2)}, g.Moves)
}
