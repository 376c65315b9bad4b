package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/hooklint/hooklint/internal/hook"
)

type Options struct {
	NoColor bool
	Out     io.Writer
}

// Renderer shows hooklint's own diagnostics on interactive runs. When
// stdout is not a terminal (the hook-framework case) it stays silent, so
// the wrapped tool's output is the only thing on the streams.
type Renderer struct {
	out     io.Writer
	isTTY   bool
	noColor bool
	styles  styles
}

type styles struct {
	info  lipgloss.Style
	skip  lipgloss.Style
	label lipgloss.Style
}

func NewRenderer(opts Options) *Renderer {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	profile := termenv.EnvColorProfile()
	if opts.NoColor || !isTTY {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)

	return &Renderer{
		out:     out,
		isTTY:   isTTY,
		noColor: opts.NoColor || profile == termenv.Ascii,
		styles: styles{
			info:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
			skip:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

func (r *Renderer) Info(message string) {
	if !r.isTTY {
		return
	}
	r.println(r.styles.info.Render(message))
}

func (r *Renderer) Skip(path string) {
	if !r.isTTY {
		return
	}
	r.println(r.styles.skip.Render("skip") + " " + path)
}

func (r *Renderer) Progress(label string, total int) hook.ProgressReporter {
	if !r.isTTY || total <= 0 {
		return noopProgress{}
	}
	return &progressReporter{
		out:   r.out,
		total: total,
		label: label,
		model: progress.New(
			progress.WithWidth(28),
			progress.WithDefaultGradient(),
		),
	}
}

func (r *Renderer) println(message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	fmt.Fprintln(r.out, message)
}

type progressReporter struct {
	out     io.Writer
	model   progress.Model
	total   int
	current int
	label   string
}

func (p *progressReporter) Increment(label string) {
	if label != "" {
		p.label = label
	}
	p.current++
	p.renderLine()
}

func (p *progressReporter) Done() {
	p.current = p.total
	p.renderLine()
}

func (p *progressReporter) renderLine() {
	percent := float64(p.current) / float64(p.total)
	bar := p.model.ViewAs(percent)
	line := fmt.Sprintf("%s %d/%d %s", bar, p.current, p.total, truncate(p.label, 64))
	fmt.Fprintln(p.out, line)
}

type noopProgress struct{}

func (n noopProgress) Increment(string) {}
func (n noopProgress) Done()            {}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	if max <= 3 {
		return value[:max]
	}
	return value[:max-3] + "..."
}
