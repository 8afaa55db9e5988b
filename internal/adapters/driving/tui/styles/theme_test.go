package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestDefaultStyles_Render(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("strindex"), "strindex")
	assert.Contains(t, s.Label.Render("length"), "length")
}
