package commands

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/waozixyz/formview/render/term"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [form.xml]",
		Short: "Browse a form in the terminal",
		Long: `Compile a form and show it in a scrollable terminal view.

Keys: arrows/pgup/pgdown scroll, r recompiles the form, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := formPath(cmd, args)
			cfg := GetConfig(cmd.Context())
			load := func() (string, error) {
				root, err := compileForm(cmd, path)
				if err != nil {
					return "", err
				}
				return term.Render(root, term.Options{Width: cfg.Term.Width}), nil
			}

			m, err := newPreviewModel(path, load)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
}

// previewModel is the bubbletea model of the preview command.
type previewModel struct {
	path     string
	load     func() (string, error)
	content  string
	status   string
	failed   bool
	viewport viewport.Model
	ready    bool
}

// newPreviewModel loads the form once; a form that does not compile is an
// error before the UI starts.
func newPreviewModel(path string, load func() (string, error)) (previewModel, error) {
	content, err := load()
	if err != nil {
		return previewModel{}, err
	}
	return previewModel{path: path, load: load, content: content, status: path}, nil
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m = m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-1, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// reload recompiles the form. On failure the last good content stays.
func (m previewModel) reload() previewModel {
	content, err := m.load()
	if err != nil {
		m.failed = true
		m.status = firstLine(err.Error())
		return m
	}
	m.failed = false
	m.status = m.path + " (reloaded)"
	m.content = content
	if m.ready {
		m.viewport.SetContent(content)
	}
	return m
}

func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	style := statusStyle
	if m.failed {
		style = errorStyle
	}
	return m.viewport.View() + "\n" + style.Render(m.status)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
