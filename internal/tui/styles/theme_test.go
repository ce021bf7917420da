package styles

import (
	"testing"

	"litedata/internal/config"
	"litedata/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewUsesPalette(t *testing.T) {
	cfg := config.New()
	light := New(cfg.Palette(types.Light))
	dark := New(cfg.Palette(types.Dark))

	assert.Equal(t, lipgloss.Color(cfg.Theme.Light.Primary), light.Title.GetForeground())
	assert.Equal(t, lipgloss.Color(cfg.Theme.Dark.Primary), dark.Title.GetForeground())
	assert.Equal(t, lipgloss.Color(cfg.Theme.Dark.Error), dark.Error.GetForeground())
	assert.NotEqual(t, light.Text.GetForeground(), dark.Text.GetForeground())
}

func TestDefault(t *testing.T) {
	assert.Equal(t, lipgloss.Color(config.New().Theme.Light.Border), Default().Border)
}
