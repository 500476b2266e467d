package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellHistory_WalksBackAndForth(t *testing.T) {
	var h shellHistory
	h.add("goals")
	h.add("generate")
	h.add("status")

	line, ok := h.prev()
	assert.True(t, ok)
	assert.Equal(t, "status", line)
	line, _ = h.prev()
	assert.Equal(t, "generate", line)
	line, _ = h.prev()
	assert.Equal(t, "goals", line)
	_, ok = h.prev()
	assert.False(t, ok)

	assert.Equal(t, "generate", h.next())
	assert.Equal(t, "status", h.next())
	assert.Equal(t, "", h.next())
}

func TestShellHistory_SkipsBlankAndRepeats(t *testing.T) {
	var h shellHistory
	h.add("  ")
	h.add("goals")
	h.add("goals")
	h.add(" goals ")

	assert.Equal(t, []string{"goals"}, h.lines)
}

func TestShellHistory_KeepsMostRecent(t *testing.T) {
	var h shellHistory
	for i := 0; i < maxHistoryLines+100; i++ {
		h.add(fmt.Sprintf("line %d", i))
	}

	assert.Len(t, h.lines, maxHistoryLines)
	assert.Equal(t, "line 100", h.lines[0])
	assert.Equal(t, maxHistoryLines, h.idx)
}
