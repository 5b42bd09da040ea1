package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// ErrInvalidScript is returned for a script line that cannot be replayed.
var ErrInvalidScript = errors.New("invalid script")

// scriptCommands maps each script command to whether it takes an argument.
var scriptCommands = map[string]bool{
	"route":    true,
	"modal":    true,
	"replace":  true,
	"root":     true,
	"alert":    true,
	"external": true,
	"pop":      false,
	"refresh":  false,
	"clear":    false,
	"submit":   false,
	"retry":    false,
}

type step struct {
	line    int
	command string
	arg     string
}

func (s step) String() string {
	if s.arg == "" {
		return s.command
	}
	return s.command + " " + s.arg
}

func (c *CLI) replayCommand() *cobra.Command {
	var pages string

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a navigation script and print the stacks after each step",
		Long: `Replay reads a navigation script, one command per line, and prints both stacks
after every step. Use "-" to read the script from stdin.

Commands:
  route <dest>      navigate using path configuration properties
  modal <dest>      navigate in the modal context
  replace <dest>    replace the top of the destination stack
  root <dest>       replace the whole primary stack
  pop               go back one screen
  refresh           go back one screen and reload what remains visible
  clear             dismiss the modal and pop primary to its root
  alert <text>      present an alert over the visible stack
  external <dest>   open a destination outside the app
  submit            finish a form submission on the visible stack
  retry             retry the last failed load

Lines starting with # are comments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			steps, err := parseScript(r)
			if err != nil {
				return err
			}
			return c.replay(cmd.Context(), cmd.OutOrStdout(), steps, pages)
		},
	}

	cmd.Flags().StringVar(&pages, "pages", "", "directory of <path>.html files to load destinations from")

	return cmd
}

func parseScript(r io.Reader) ([]step, error) {
	var steps []step

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		command, arg, _ := strings.Cut(line, " ")
		command = strings.ToLower(command)
		arg = strings.TrimSpace(arg)

		takesArg, ok := scriptCommands[command]
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: line %d: unknown command %q", ErrInvalidScript, n, command)
		case takesArg && arg == "":
			return nil, fmt.Errorf("%w: line %d: %s needs an argument", ErrInvalidScript, n, command)
		case !takesArg && arg != "":
			return nil, fmt.Errorf("%w: line %d: %s takes no argument", ErrInvalidScript, n, command)
		}

		steps = append(steps, step{line: n, command: command, arg: arg})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func (c *CLI) replay(ctx context.Context, w io.Writer, steps []step, pages string) error {
	host := &scriptHost{w: w}
	app, err := c.newApp(ctx, host, newLoader(pages))
	if err != nil {
		return err
	}
	defer waypoint.Close()

	c.Logger.Debug("Replaying script", "steps", len(steps), "root", c.Config.Root)

	fmt.Fprintf(w, "start\n  %s\n", formatStacks(app.Controller()))
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(w, s)
		runStep(app, host, s)
		fmt.Fprintf(w, "  %s\n", formatStacks(app.Controller()))
	}

	stats := app.Session.Stats()
	fmt.Fprintf(w, "visits=%d reloads=%d loads=%d failures=%d retries=%d snapshot_hits=%d\n",
		stats.Visits, stats.Reloads, stats.Loads, stats.Failures, stats.Retries, stats.SnapshotHits)
	return nil
}

func runStep(app *waypoint.Waypoint, host *scriptHost, s step) {
	switch s.command {
	case "route":
		app.Route(s.arg)
	case "modal":
		app.RouteProposal(app.Proposal(s.arg).WithContext(router.ContextModal))
	case "replace":
		app.RouteProposal(app.Proposal(s.arg).WithVerb(router.VerbReplace))
	case "root":
		app.RouteProposal(app.Proposal(s.arg).WithVerb(router.VerbReplaceRoot))
	case "pop":
		app.RouteProposal(router.NewProposal("").WithVerb(router.VerbPop))
	case "refresh":
		app.RouteProposal(router.NewProposal("").WithVerb(router.VerbRefresh))
	case "clear":
		app.RouteProposal(router.NewProposal("").WithVerb(router.VerbClearAll))
	case "alert":
		app.Controller().PresentTransient(&router.Alert{Title: s.arg})
	case "external":
		app.OpenExternal(s.arg)
	case "submit":
		app.FormSubmissionFinished(app.Controller().Visible())
	case "retry":
		host.retry()
	}
}

// scriptHost prints host requests and keeps the last alert so it can be retried.
type scriptHost struct {
	w    io.Writer
	last *router.Alert
}

func (h *scriptHost) PresentModal(style router.ModalStyle) {
	fmt.Fprintf(h.w, "  present modal (%s)\n", style)
}

func (h *scriptHost) DismissModal() {
	fmt.Fprintln(h.w, "  dismiss modal")
}

func (h *scriptHost) PresentTransient(screen router.TransientScreen, on router.StackKind) {
	alert, ok := screen.(*router.Alert)
	if !ok {
		fmt.Fprintf(h.w, "  transient %s on %s\n", screen.Identifier(), on)
		return
	}
	h.last = alert
	if alert.Message != "" {
		fmt.Fprintf(h.w, "  alert on %s: %s: %s\n", on, alert.Title, alert.Message)
	} else {
		fmt.Fprintf(h.w, "  alert on %s: %s\n", on, alert.Title)
	}
}

func (h *scriptHost) OpenExternal(destination string, on router.StackKind) {
	fmt.Fprintf(h.w, "  open %s over %s\n", destination, on)
}

// retry runs the first action with a handler on the last alert.
func (h *scriptHost) retry() {
	if h.last == nil {
		fmt.Fprintln(h.w, "  nothing to retry")
		return
	}
	alert := h.last
	h.last = nil
	for _, action := range alert.Actions {
		if action.Handler != nil {
			alert.Trigger(action.Label)
			return
		}
	}
	fmt.Fprintln(h.w, "  nothing to retry")
}
