package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown notes into a displayable document.
type Renderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer renders markdown as styled terminal text.
type GlamourRenderer struct {
	r *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer wrapping at width. An empty style
// picks a dark or light theme from the terminal background; "notty" renders
// plain text.
func NewGlamourRenderer(style string, width int) (*GlamourRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &GlamourRenderer{r: r}, nil
}

func (g *GlamourRenderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "Nothing to preview\n", nil
	}
	out, err := g.r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering notes: %w", err)
	}
	return out, nil
}

// unsafeFileChars are replaced in exported file names.
var unsafeFileChars = strings.NewReplacer(
	"/", "-", "\\", "-", ":", "-", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "",
)

// DocumentName is the file name of an exported note: "<subject> - <topic>.md".
func DocumentName(subject, topic string) string {
	name := fmt.Sprintf("%s - %s", strings.TrimSpace(subject), strings.TrimSpace(topic))
	return unsafeFileChars.Replace(name) + ".md"
}

// ExportMarkdown writes the notes of a topic into dir as a markdown document
// titled with the topic, and returns the file path.
func ExportMarkdown(dir, subject, topic, markdown string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, DocumentName(subject, topic))
	body := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", topic, subject, strings.TrimRight(markdown, "\n"))
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
