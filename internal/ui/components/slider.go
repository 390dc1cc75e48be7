package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptiq/adaptiq/internal/ui/theme"
)

// Slider is a horizontal 0-100 value picker driven by the arrow keys.
// Used for the confidence prompt.
type Slider struct {
	Label string
	Value int
	Step  int
	Width int
}

// NewSlider creates a slider starting at the midpoint.
func NewSlider(label string, width int) Slider {
	return Slider{
		Label: label,
		Value: 50,
		Step:  5,
		Width: width,
	}
}

// Update handles left/right adjustment.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value -= s.Step
		if s.Value < 0 {
			s.Value = 0
		}
	case "right", "l":
		s.Value += s.Step
		if s.Value > 100 {
			s.Value = 100
		}
	}

	return s, nil
}

// View renders the label, track and current value.
func (s Slider) View() string {
	barWidth := s.Width
	if barWidth < 10 {
		barWidth = 10
	}

	filled := barWidth * s.Value / 100
	empty := barWidth - filled

	track := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	label := lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label)
	value := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d%%", s.Value))

	return label + "\n" + track + value
}
