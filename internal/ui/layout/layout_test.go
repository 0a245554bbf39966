package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Riesgo académico", 60)
	assert.Contains(t, h, "Estudia")
	assert.Contains(t, h, "Riesgo académico")
	assert.GreaterOrEqual(t, lipgloss.Width(h), 60)
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Evaluar"}, {Key: "Esc", Description: "Salir"}}, 0)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Salir")
}

func TestRenderFrame(t *testing.T) {
	frame := RenderFrame("header", "body", "footer", 0)
	assert.Equal(t, []string{"header", "body", "footer"}, strings.Split(frame, "\n"))
}
