package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

const maxEvents = 5

// button is an abstract input, mapped from terminal keys.
type button int

const (
	buttonNone    button = iota
	buttonConfirm        // route the typed destination, or retry an alert
	buttonBack           // pop, or dismiss an alert
	buttonRefresh
	buttonHome
	buttonModal // route the typed destination in the modal context
	buttonErase
	buttonQuit
)

var keyMapping = map[string]button{
	"enter":     buttonConfirm,
	"esc":       buttonBack,
	"ctrl+r":    buttonRefresh,
	"ctrl+x":    buttonHome,
	"tab":       buttonModal,
	"backspace": buttonErase,
	"ctrl+c":    buttonQuit,
}

func (c *CLI) tuiCommand() *cobra.Command {
	var pages string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Route destinations interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := themeFromConfig(c.Config.Theme)
			if err != nil {
				c.Logger.Warn("Ignoring theme override", "error", err)
			}

			host := &tuiHost{}
			app, err := c.newApp(cmd.Context(), host, newLoader(pages))
			if err != nil {
				return err
			}
			defer waypoint.Close()

			p := tea.NewProgram(newTUIModel(app, host, theme), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&pages, "pages", "", "directory of <path>.html files to load destinations from")

	return cmd
}

// tuiHost records host requests for the model to render. It is only touched from
// the bubbletea update loop.
type tuiHost struct {
	modalStyle router.ModalStyle
	alert      *router.Alert
	events     []string
}

func (h *tuiHost) PresentModal(style router.ModalStyle) {
	h.modalStyle = style
	h.event("presented modal (%s)", style)
}

func (h *tuiHost) DismissModal() {
	h.event("dismissed modal")
}

func (h *tuiHost) PresentTransient(screen router.TransientScreen, on router.StackKind) {
	if alert, ok := screen.(*router.Alert); ok {
		h.alert = alert
	}
	h.event("alert %s on %s", screen.Identifier(), on)
}

func (h *tuiHost) OpenExternal(destination string, on router.StackKind) {
	h.event("opened %s over %s", destination, on)
}

func (h *tuiHost) event(format string, args ...any) {
	h.events = append(h.events, fmt.Sprintf(format, args...))
	if len(h.events) > maxEvents {
		h.events = h.events[len(h.events)-maxEvents:]
	}
}

type tuiModel struct {
	app   *waypoint.Waypoint
	host  *tuiHost
	theme Theme
	input string
	width int
}

func newTUIModel(app *waypoint.Waypoint, host *tuiHost, theme Theme) tuiModel {
	return tuiModel{app: app, host: host, theme: theme}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		key := msg.String()
		pressed := keyMapping[key]
		if pressed == buttonQuit {
			return m, tea.Quit
		}
		if m.host.alert != nil {
			m.handleAlertInput(pressed)
			return m, nil
		}
		m.handleInput(pressed, key)
	}
	return m, nil
}

func (m *tuiModel) handleAlertInput(pressed button) {
	alert := m.host.alert
	switch pressed {
	case buttonConfirm:
		m.host.alert = nil
		if len(alert.Actions) > 0 {
			alert.Trigger(alert.Actions[0].Label)
		}
	case buttonBack:
		m.host.alert = nil
	}
}

func (m *tuiModel) handleInput(pressed button, key string) {
	switch pressed {
	case buttonConfirm:
		if dest := strings.TrimSpace(m.input); dest != "" {
			m.app.Route(dest)
			m.input = ""
		}
	case buttonModal:
		if dest := strings.TrimSpace(m.input); dest != "" {
			m.app.RouteProposal(m.app.Proposal(dest).WithContext(router.ContextModal))
			m.input = ""
		}
	case buttonBack:
		m.app.RouteProposal(router.NewProposal("").WithVerb(router.VerbPop))
	case buttonRefresh:
		m.app.RouteProposal(router.NewProposal("").WithVerb(router.VerbRefresh))
	case buttonHome:
		m.app.RouteProposal(router.NewProposal("").WithVerb(router.VerbClearAll))
	case buttonErase:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if isPrintable(key) {
			m.input += key
		}
	}
}

func isPrintable(key string) bool {
	if len(key) != 1 {
		return false
	}
	return key[0] >= 0x20 && key[0] < 0x7f
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.title().Render("waypoint"))
	b.WriteString("\n\n")

	c := m.app.Controller()
	primary := m.renderStack("main", c.Primary(), !c.ModalActive())
	if c.ModalActive() {
		modal := m.renderStack("modal ("+m.host.modalStyle.String()+")", c.Modal(), true)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, primary, " ", modal))
	} else {
		b.WriteString(primary)
	}
	b.WriteString("\n")

	if alert := m.host.alert; alert != nil {
		body := m.theme.title().Foreground(m.theme.AlertColor).Render(alert.Title)
		if alert.Message != "" {
			body += "\n" + m.theme.text().Render(alert.Message)
		}
		if len(alert.Actions) > 0 {
			body += "\n" + m.theme.hint().Render("⏎ "+alert.Actions[0].Label+"  esc dismiss")
		}
		b.WriteString(m.theme.alert().Render(body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.text().Render("› " + m.input))
	b.WriteString("\n\n")

	for _, e := range m.host.events {
		b.WriteString(m.theme.hint().Render("  " + e))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.hint().Render("⏎ route  tab modal  esc back  ctrl+r refresh  ctrl+x home  ctrl+c quit"))
	return b.String()
}

func (m tuiModel) renderStack(name string, screens []router.Screen, visible bool) string {
	lines := []string{m.theme.title().Render(name)}
	for i, s := range screens {
		style := m.theme.text()
		if i == len(screens)-1 {
			style = m.theme.top()
		}
		lines = append(lines, style.Render(screenLabel(s)))
	}
	return m.theme.stack(visible).Render(strings.Join(lines, "\n"))
}
