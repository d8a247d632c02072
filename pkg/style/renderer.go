package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/preload/pkg/errors"
)

// SlotInfo summarizes one slot for listings
type SlotInfo struct {
	Key   string
	Lines int
	Bytes int
}

// NewSlotInfo measures text for a listing row
func NewSlotInfo(key, text string) SlotInfo {
	lines := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		lines++
	}
	return SlotInfo{Key: key, Lines: lines, Bytes: len(text)}
}

// Renderer defines the interface for rendering CLI output
type Renderer interface {
	RenderSlotList(slots []SlotInfo) string
	RenderCheck(key string, present bool) string
	RenderError(err error) string
}

// NewRenderer returns the terminal renderer when color is true, plain otherwise
func NewRenderer(color bool) Renderer {
	if color {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderSlotList renders slots as a table
func (r *TerminalRenderer) RenderSlotList(slots []SlotInfo) string {
	if len(slots) == 0 {
		return MutedStyle.Render("No slots registered")
	}

	data := pterm.TableData{{"SLOT", "LINES", "BYTES"}}
	for _, s := range slots {
		data = append(data, []string{KeyStyle.Render(s.Key), strconv.Itoa(s.Lines), strconv.Itoa(s.Bytes)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return NewPlainRenderer().RenderSlotList(slots)
	}
	return TitleStyle.Render("Slots") + "\n\n" + strings.TrimRight(table, "\n")
}

// RenderCheck renders the presence of one slot
func (r *TerminalRenderer) RenderCheck(key string, present bool) string {
	if present {
		return fmt.Sprintf("%s %s", SuccessIndicator, KeyStyle.Render(key))
	}
	return fmt.Sprintf("%s %s %s", ErrorIndicator, KeyStyle.Render(key), MutedStyle.Render("(missing)"))
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			WarningStyle.Render(string(code)),
			ErrorStyle.Render(err.Error()))
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, ErrorStyle.Render(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderSlotList renders one tab separated line per slot
func (r *PlainRenderer) RenderSlotList(slots []SlotInfo) string {
	if len(slots) == 0 {
		return "No slots registered"
	}

	var b strings.Builder
	for i, s := range slots {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\t%d\t%d", s.Key, s.Lines, s.Bytes)
	}
	return b.String()
}

// RenderCheck renders the presence of one slot
func (r *PlainRenderer) RenderCheck(key string, present bool) string {
	if present {
		return "ok " + key
	}
	return "missing " + key
}

// RenderError renders an error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}
