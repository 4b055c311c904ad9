package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorPink   = lipgloss.Color("#d65d7e")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// subjectPalette maps Subject.Color indices to terminal colors, in the
// order subjects are colored during setup.
var subjectPalette = [domain.PaletteSize]lipgloss.Color{
	ColorPurple,
	ColorPink,
	ColorBlue,
	ColorYellow,
	ColorGreen,
	ColorRed,
	ColorAqua,
}

// SubjectColor returns the palette color for a subject color index. Out of
// range indices wrap.
func SubjectColor(index int) lipgloss.Color {
	n := len(subjectPalette)
	return subjectPalette[((index%n)+n)%n]
}

type iconInfo struct {
	glyph string
	label string
}

var icons = map[domain.IconType]iconInfo{
	domain.IconCode:     {"</>", "Code"},
	domain.IconDatabase: {"[≡]", "Data"},
	domain.IconMath:     {"Σ", "Math"},
	domain.IconBook:     {"▤", "Theory"},
	domain.IconActivity: {"∿", "Stats"},
	domain.IconLayout:   {"▦", "Design"},
}

// IconGlyph returns a short terminal glyph for an icon tag. Unknown tags
// render as a bullet.
func IconGlyph(icon domain.IconType) string {
	if info, ok := icons[icon]; ok {
		return info.glyph
	}
	return "•"
}

// IconLabel returns the picker label for an icon tag.
func IconLabel(icon domain.IconType) string {
	if info, ok := icons[icon]; ok {
		return info.label
	}
	return string(icon)
}

// SubjectName renders a subject's icon and name in its palette color.
func SubjectName(s domain.Subject) string {
	style := lipgloss.NewStyle().Foreground(SubjectColor(s.Color)).Bold(true)
	return style.Render(IconGlyph(s.IconType) + " " + s.Name)
}

// SeverityStyle returns the style for an urgency severity.
func SeverityStyle(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityDanger:
		return StyleRed
	case domain.SeverityWarning:
		return StyleYellow
	case domain.SeveritySuccess:
		return StyleGreen
	default:
		return StyleDim
	}
}

// UrgencyBadge returns a colored urgency indicator such as "● CRITICAL".
func UrgencyBadge(level domain.UrgencyLevel, sev domain.Severity) string {
	if level == domain.UrgencyDone {
		return StyleGreen.Render("✔ DONE")
	}
	return SeverityStyle(sev).Render("● " + string(level))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
