package cli

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	marginalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// visibilityClass buckets a contrast reserve into the conventional labels.
// This is a presentation concern; the boundaries are not part of the
// photometry package contract.
func visibilityClass(cr float64) string {
	switch {
	case cr < -0.2:
		return "not visible"
	case cr < 0.1:
		return "questionable"
	case cr < 0.35:
		return "difficult"
	case cr < 0.5:
		return "quite difficult"
	case cr < 1.0:
		return "easy"
	default:
		return "very easy"
	}
}

func classStyle(cr float64) lipgloss.Style {
	switch {
	case cr < -0.2:
		return badStyle
	case cr < 0.35:
		return marginalStyle
	default:
		return goodStyle
	}
}
