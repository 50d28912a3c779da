package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/internal/infrastructure/monitor"
	"github.com/fastygo/agrofocus/usecase"
	"github.com/fastygo/agrofocus/usecase/auth"
	"github.com/fastygo/agrofocus/usecase/dashboard"
	"github.com/fastygo/agrofocus/usecase/focus"
)

// FieldReader looks up a single field by id.
type FieldReader interface {
	Field(ctx context.Context, id string) (domain.Field, error)
}

// Deps wires the client together.
type Deps struct {
	Auth            *auth.UseCase
	Dashboard       *dashboard.Orchestrator
	Focus           *focus.Selector
	Fields          FieldReader
	Monitor         *monitor.Monitor
	RefreshInterval time.Duration
	In              io.Reader
	Out             io.Writer
	InputFd         int
	Logger          *zap.Logger
}

// App is the terminal dashboard client. Commands run one at a time.
type App struct {
	auth      *auth.UseCase
	dashboard *dashboard.Orchestrator
	focus     *focus.Selector
	fields    FieldReader
	monitor   *monitor.Monitor
	refresh   time.Duration

	prompt     *prompter
	out        io.Writer
	outMu      sync.Mutex
	dispatcher *usecase.Dispatcher
	logger     *zap.Logger

	view        domain.View
	displayName string
}

func New(deps Deps) *App {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.RefreshInterval <= 0 {
		deps.RefreshInterval = 30 * time.Second
	}
	a := &App{
		auth:       deps.Auth,
		dashboard:  deps.Dashboard,
		focus:      deps.Focus,
		fields:     deps.Fields,
		monitor:    deps.Monitor,
		refresh:    deps.RefreshInterval,
		prompt:     newPrompter(deps.In, deps.Out, deps.InputFd),
		out:        deps.Out,
		dispatcher: usecase.NewDispatcher(),
		logger:     deps.Logger,
		view:       domain.ViewLogin,
	}
	a.registerCommands()
	return a
}

// View returns the page the client is currently on.
func (a *App) View() domain.View {
	return a.view
}

// Run opens the dashboard (or the login page) and then reads commands
// until EOF, exit, or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.navigate(ctx, domain.Replace(domain.ViewDashboard))

	for {
		if ctx.Err() != nil {
			return nil
		}
		a.printf("agrofocus [%s]> ", a.view)
		line, err := a.prompt.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.println()
				return nil
			}
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		name, args := strings.ToLower(parts[0]), parts[1:]
		if name == "exit" || name == "quit" {
			a.println("Bye!")
			return nil
		}
		if err := a.Execute(ctx, name, args); err != nil {
			if errors.Is(err, usecase.ErrUnknownCommand) {
				a.println("Unknown command:", name, "(type help)")
				continue
			}
			a.logger.Debug("command failed", zap.String("command", name), zap.Error(err))
		}
	}
}

// Execute runs a single command by name.
func (a *App) Execute(ctx context.Context, name string, args []string) error {
	return a.dispatcher.ExecuteCommand(ctx, name, args)
}

// navigate performs a full-page redirect. Entering the dashboard re-runs
// the guard and the page load.
func (a *App) navigate(ctx context.Context, nav *domain.Navigation) {
	if nav == nil {
		return
	}
	a.logger.Debug("navigate", zap.String("to", string(nav.To)), zap.String("mode", string(nav.Mode)))
	if nav.To != domain.ViewDashboard {
		a.view = nav.To
		a.println(viewBanner(nav.To))
		return
	}

	guard := a.auth.Guard(ctx)
	if !guard.Allowed {
		a.view = guard.Redirect.To
		a.println(viewBanner(a.view))
		return
	}
	a.view = domain.ViewDashboard
	a.displayName = guard.DisplayName
	a.loadDashboard(ctx)
}

// protected runs the guard before h; without a session it redirects to login.
func (a *App) protected(h usecase.CommandHandler) usecase.CommandHandler {
	return func(ctx context.Context, args []string) error {
		guard := a.auth.Guard(ctx)
		if !guard.Allowed {
			a.view = guard.Redirect.To
			a.println("Please log in first.")
			a.println(viewBanner(a.view))
			return nil
		}
		a.displayName = guard.DisplayName
		if a.view != domain.ViewDashboard {
			a.view = domain.ViewDashboard
		}
		return h(ctx, args)
	}
}

func (a *App) loadDashboard(ctx context.Context) {
	results := a.dashboard.LoadPage(ctx)
	for _, r := range results {
		a.logger.Debug("region finished", zap.String("region", string(r.Region)), zap.String("status", string(r.Status)), zap.Duration("duration", r.Duration))
	}
	a.render(func(w io.Writer) {
		renderHeader(w, a.displayName, a.monitorState())
		renderFocus(w, a.focus.View())
		renderPage(w, a.dashboard.Page())
	})
}

func (a *App) monitorState() string {
	if a.monitor == nil {
		return ""
	}
	switch {
	case len(a.monitor.GetStatus().Components) == 0:
		return "checking"
	case a.monitor.IsOnline():
		return "online"
	default:
		return "degraded"
	}
}

func (a *App) render(fn func(w io.Writer)) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fn(a.out)
}

func (a *App) printf(format string, args ...interface{}) {
	a.render(func(w io.Writer) { fmt.Fprintf(w, format, args...) })
}

func (a *App) println(args ...interface{}) {
	a.render(func(w io.Writer) { fmt.Fprintln(w, args...) })
}

func viewBanner(v domain.View) string {
	switch v {
	case domain.ViewLogin:
		return "== Login == (commands: login, register, help)"
	case domain.ViewRegister:
		return "== Register == (commands: register, login, help)"
	default:
		return "== " + string(v) + " =="
	}
}
