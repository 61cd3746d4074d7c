package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/justinabrahms/hotseat/internal/chess"
	"github.com/justinabrahms/hotseat/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer() *Renderer {
	return New(config.RenderConfig{
		SquareSize: 10,
		LightColor: "#eeeeee",
		DarkColor:  "#333333",
	})
}

func TestBoardDrawsOneGlyphPerPiece(t *testing.T) {
	var buf bytes.Buffer
	testRenderer().Board(&buf, chess.NewStandardBoard())
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, `width="80"`)
	assert.Equal(t, 32, strings.Count(out, `class="piece"`))
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Contains(t, out, "♔")
	assert.Contains(t, out, "♚")
	assert.Equal(t, 8, strings.Count(out, "♙"))
}

func TestBoardPlacesWhiteAtTheBottom(t *testing.T) {
	b := chess.NewBoard()
	_, err := b.Place(chess.King, chess.White, chess.At(0, 0))
	require.NoError(t, err)
	_, err = b.Place(chess.King, chess.Black, chess.At(7, 7))
	require.NoError(t, err)

	var buf bytes.Buffer
	testRenderer().Board(&buf, b)
	out := buf.String()

	// a1 is the bottom-left square, h8 the top-right one
	assert.Contains(t, out, `<text x="5" y="78"`)
	assert.Contains(t, out, `<text x="75" y="8"`)
	assert.Equal(t, 2, strings.Count(out, `class="piece"`))
}

func TestBoardHighlightsSquares(t *testing.T) {
	var buf bytes.Buffer
	testRenderer().Board(&buf, chess.NewStandardBoard(), chess.At(4, 1))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, highlightColor))
	assert.Contains(t, out, `id="e2"`)
}
