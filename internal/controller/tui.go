package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/domain"
	m "ldform.dev/pkg/ldform/internal/model"
)

// pagerChrome is the number of lines the pager uses for its title and footer.
const pagerChrome = 4

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals. Tables that do not fit on
// screen open in a scrollable pager.
type TUI struct {
	cmd *cobra.Command
	// height overrides the detected terminal height when positive.
	height int
	run    func(model tea.Model, out io.Writer) error
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, run: runProgram}
}

func runProgram(model tea.Model, out io.Writer) error {
	_, err := tea.NewProgram(model, tea.WithOutput(out), tea.WithAltScreen()).Run()
	return err
}

func (p *TUI) terminalHeight() int {
	if p.height > 0 {
		return p.height
	}

	f, ok := p.cmd.OutOrStdout().(*os.File)
	if !ok {
		return 0
	}

	_, height, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}

	return height
}

// show prints body under title, paging it when it is taller than the terminal.
func (p *TUI) show(title, body string) error {
	out := p.cmd.OutOrStdout()

	height := p.terminalHeight()
	if height == 0 || strings.Count(body, "\n")+pagerChrome <= height {
		_, err := fmt.Fprintf(out, "%s\n\n%s", titleStyle.Render(title), body)
		return err
	}

	return p.run(newPagerModel(title, body), out)
}

func (p *TUI) warn(source string, warnings []domain.Warning) {
	for _, w := range warnings {
		line := "warning: " + w.String()
		if source != "" {
			line = "warning: " + source + ": " + w.String()
		}

		_, _ = fmt.Fprintln(p.cmd.ErrOrStderr(), warningStyle.Render(line))
	}
}

// DisplayDocument writes the document verbatim so it can be copied.
func (p *TUI) DisplayDocument(ctx context.Context, data []byte, warnings []domain.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.warn("", warnings)

	_, err := fmt.Fprintln(p.cmd.OutOrStdout(), string(data))

	return err
}

// DisplayBatch shows the batch summary.
func (p *TUI) DisplayBatch(ctx context.Context, items []domain.BatchItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, item := range items {
		p.warn(item.Source, item.Warnings)
	}

	return p.show("Batch build", renderBatchTable(items))
}

// DisplayDiff shows the differences with a coloured unified diff.
func (p *TUI) DisplayDiff(ctx context.Context, result domain.CompareResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := renderDiffTable(result)
	if result.Unified != "" {
		body += "\n" + colorUnified(result.Unified)
	}

	return p.show("Document comparison", body)
}

func colorUnified(diff string) string {
	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		text := strings.TrimSuffix(line, "\n")
		newline := line[len(text):]

		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			text = titleStyle.Render(text)
		case strings.HasPrefix(text, "@@"):
			text = hunkStyle.Render(text)
		case strings.HasPrefix(text, "+"):
			text = addedStyle.Render(text)
		case strings.HasPrefix(text, "-"):
			text = removedStyle.Render(text)
		}

		b.WriteString(text + newline)
	}

	return b.String()
}

// DisplayFields shows the field paths.
func (p *TUI) DisplayFields(ctx context.Context, fields []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show(fmt.Sprintf("Fields (%d)", len(fields)), renderFields(fields))
}

// DisplayCatalog shows the schema type table.
func (p *TUI) DisplayCatalog(ctx context.Context, catalog *m.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show("Schema types", renderCatalogTable(catalog))
}

// DisplaySchemaType shows the fields of one type.
func (p *TUI) DisplaySchemaType(ctx context.Context, st m.SchemaType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show("Schema type "+st.Name, renderSchemaType(st))
}

// DisplayUsers shows the account table.
func (p *TUI) DisplayUsers(ctx context.Context, users []m.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show("Users", renderUsersTable(users))
}

// DisplayPrompt writes the prompt verbatim.
func (p *TUI) DisplayPrompt(ctx context.Context, prompt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(p.cmd.OutOrStdout(), prompt)

	return err
}

// DisplayMessage prints a status line to stderr.
func (p *TUI) DisplayMessage(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(p.cmd.ErrOrStderr(), fmt.Sprintf(format, args...))
}

// pagerModel is a Bubble Tea model that scrolls a block of text.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChrome, 1)

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "\n  Loading..."
	}

	footer := helpStyle.Render(fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit", pm.viewport.ScrollPercent()*100))

	return titleStyle.Render(pm.title) + "\n\n" + pm.viewport.View() + "\n\n" + footer
}
