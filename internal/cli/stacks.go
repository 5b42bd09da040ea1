package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/session"
)

// screenLabel names a screen by its destination, or by its identifier when it
// has none.
func screenLabel(s router.Screen) string {
	if v, ok := s.(router.Visitable); ok {
		return v.Destination()
	}
	return s.Identifier()
}

func screenLabels(screens []router.Screen) []string {
	labels := make([]string, len(screens))
	for i, s := range screens {
		labels[i] = screenLabel(s)
	}
	return labels
}

// formatStacks renders both stacks on one line, e.g. "main=[/ /a] modal=[]".
func formatStacks(c *router.Controller) string {
	return fmt.Sprintf("main=[%s] modal=[%s]",
		strings.Join(screenLabels(c.Primary()), " "),
		strings.Join(screenLabels(c.Modal()), " "),
	)
}

// dirLoader loads a destination from <dir>/<path>.html; "/" maps to index.html.
type dirLoader struct {
	dir string
}

func (l dirLoader) Load(_ context.Context, v session.Visit) ([]byte, error) {
	p := v.Destination
	if u, err := url.Parse(v.Destination); err == nil {
		p = u.Path
	}

	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		name = "index"
	}
	return os.ReadFile(filepath.Join(l.dir, filepath.FromSlash(name)+".html"))
}

func newLoader(dir string) session.Loader {
	if dir == "" {
		return nil
	}
	return dirLoader{dir: dir}
}
