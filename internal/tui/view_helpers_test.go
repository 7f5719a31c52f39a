package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "Tea", fitText("Tea", 10))
	assert.Equal(t, "Long na...", fitText("Long name here", 10))
	assert.Equal(t, "Lo", fitText("Long", 2))
	assert.Equal(t, "₹10.00", fitText("₹10.00", 6))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "Tea   ", padRight("Tea", 6))
	assert.Equal(t, "   Tea", padLeft("Tea", 6))
	assert.Equal(t, " ₹5.00", padLeft("₹5.00", 6))
}

func TestRenderPage(t *testing.T) {
	out := renderPage("TITLE", "", "keys")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  -\n")
	assert.Contains(t, out, "keys")
	assert.Contains(t, out, "ctrl+c: quit")
}
