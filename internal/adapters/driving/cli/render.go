package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// Theme defines the colour palette of terminal output.
type Theme struct {
	// Primary is the collection header colour.
	Primary lipgloss.Color

	// Secondary is the item index colour.
	Secondary lipgloss.Color

	// Muted is for descriptions and URLs.
	Muted lipgloss.Color

	// Success marks a completed selection.
	Success lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
	}
}

// Styles contains the lipgloss styles of terminal output.
type Styles struct {
	Header  lipgloss.Style
	Index   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Index: lipgloss.NewStyle().
			Foreground(theme.Secondary),
		Label:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(theme.Muted),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{Header: plain, Index: plain, Label: plain, Muted: plain, Success: plain}
}

// stylesFor picks coloured styles when w is a terminal.
func stylesFor(w io.Writer) *Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewStyles(nil)
	}
	return PlainStyles()
}

// collectionJSON is the JSON form of a final collection.
type collectionJSON struct {
	Source string              `json:"source"`
	Items  []domain.Suggestion `json:"items"`
}

func writeCollectionsJSON(w io.Writer, collections []domain.Collection[domain.Suggestion]) error {
	out := make([]collectionJSON, len(collections))
	for i, c := range collections {
		out[i].Items = c.Items
		if out[i].Items == nil {
			out[i].Items = []domain.Suggestion{}
		}
		if c.Source != nil {
			out[i].Source = c.Source.ID
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collections: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeCollections prints collections in presentation order with one-based
// item numbers that continue across collections.
func writeCollections(w io.Writer, st *Styles, collections []domain.Collection[domain.Suggestion]) {
	if domain.CountItems(collections) == 0 {
		fmt.Fprintln(w, "No suggestions.")
		return
	}

	n := 0
	for _, c := range collections {
		if len(c.Items) == 0 {
			continue
		}

		title := "(unnamed)"
		if c.Source != nil {
			title = c.Source.ID
		}
		fmt.Fprintln(w, st.Header.Render(title))

		for _, item := range c.Items {
			n++
			line := fmt.Sprintf("  %s %s", st.Index.Render(fmt.Sprintf("[%d]", n)), st.Label.Render(item.Label))
			if item.Description != "" {
				line += " " + st.Muted.Render(item.Description)
			}
			fmt.Fprintln(w, line)
		}
	}
}

func writeSelection(w io.Writer, st *Styles, sel *domain.Selection) {
	fmt.Fprintf(w, "%s %s (%s)\n", st.Success.Render("Selected:"), sel.Suggestion.Label, sel.SourceID)
	fmt.Fprintf(w, "  input: %s\n", sel.InputValue)
	if sel.URL != "" {
		fmt.Fprintf(w, "  url:   %s\n", st.Muted.Render(sel.URL))
	}
	fmt.Fprintf(w, "  open:  %t\n", sel.IsOpen)
}
