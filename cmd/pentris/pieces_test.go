package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pentris/internal/pentris"
)

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf, pentris.SetTetromino)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Tetris: 7 pieces"))
	assert.Contains(t, out, "TI  cells (0,-1) (0,0) (0,1) (0,2)  bounds (0,-1)..(0,2)")
	assert.Contains(t, out, "TD ")
	assert.NotContains(t, out, "F2 ")
	assert.Equal(t, 4*2, strings.Count(strings.SplitN(out, "TL ", 2)[0], "█"), "TI draws four two-column cells")
}
