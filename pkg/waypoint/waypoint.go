// Package waypoint provides a dual-stack navigation router: it turns proposals
// (a destination plus presentation metadata) into pushes, pops, replacements and
// resets of a primary stack and a modal stack, and tells a content-loading session
// which screen became visible.
//
// Most applications only need New, which wires path configuration, a resolver,
// the hierarchy controller and a session together:
//
//	app, err := waypoint.New(waypoint.Options{
//	    Root:              router.NewVisitableScreen("https://example.com/"),
//	    PathConfiguration: "path-configuration.json",
//	    Host:              host,
//	    Loader:            loader,
//	})
//	app.Route("https://example.com/recipes")
//
// The core state machine lives in the router package.
package waypoint

import (
	"context"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/pathconfig"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/session"
)

// Options configures a navigator built by New.
type Options struct {
	Root              router.Screen             // Initial screen of the primary stack (required)
	Host              router.Host               // Presents/dismisses the modal container and alerts
	Loader            session.Loader            // Loads destinations; nil means visits are only recorded
	Resolver          router.Resolver           // Accept/reject policy; defaults to router.AcceptAll
	PathConfiguration string                    // Path to a .json, .toml or .yaml path configuration file
	Config            *pathconfig.Configuration // Already-loaded configuration; wins over PathConfiguration
	Context           context.Context           // Base context for loads; defaults to context.Background()
	Language          string                    // Language for localized alerts (e.g. "es")
	LogPath           string                    // Full path for log file including filename (creates parent directories)
	LogLevel          string                    // Internal log level: debug, info, warn, error
}

// Waypoint is a Navigator wired to a Session.
type Waypoint struct {
	*router.Navigator
	Session *session.Session
}

// New initializes logging and localization, then builds a Navigator with its
// session and hierarchy controller.
func New(options Options) (*Waypoint, error) {
	if options.Root == nil {
		return nil, ErrNoRootScreen
	}

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	switch {
	case os.Getenv(constants.LogLevelEnvVar) != "":
		internal.SetInternalLogLevel(internal.ParseLevel(os.Getenv(constants.LogLevelEnvVar)))
	case options.LogLevel != "":
		internal.SetInternalLogLevel(internal.ParseLevel(options.LogLevel))
	case constants.IsDevMode():
		internal.SetInternalLogLevel(slog.LevelDebug)
	default:
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.Language != "" {
		internal.SetLanguage(options.Language)
	} else if lang := os.Getenv(constants.LanguageEnvVar); lang != "" {
		internal.SetLanguage(lang)
	}

	cfg := options.Config
	if cfg == nil && options.PathConfiguration != "" {
		loaded, err := pathconfig.Load(options.PathConfiguration)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	ctx := options.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sess := session.New(ctx, options.Loader)
	nav := router.NewNavigator(options.Root, sess, options.Host,
		router.WithResolver(options.Resolver),
		router.WithPathConfiguration(cfg),
	)
	sess.Track(nav.Controller())
	sess.OnFailure(nav.VisitFailed)

	return &Waypoint{Navigator: nav, Session: sess}, nil
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogHandler sends every waypoint log record to h, e.g. a host application's
// own slog handler.
func SetLogHandler(h slog.Handler) {
	internal.SetLogHandler(h)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for the framework's own logs.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLanguage selects the language used for alerts the framework builds itself.
func SetLanguage(lang string) {
	internal.SetLanguage(lang)
}
