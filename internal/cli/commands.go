package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/usecase"
	"github.com/fastygo/agrofocus/usecase/auth"
	"github.com/fastygo/agrofocus/usecase/dashboard"
)

func (a *App) registerCommands() {
	d := a.dispatcher
	d.RegisterCommand(usecase.Command{Name: "help", Usage: "show available commands", Handler: a.help}, "h", "?")
	d.RegisterCommand(usecase.Command{Name: "register", Usage: "create an account", Handler: a.register})
	d.RegisterCommand(usecase.Command{Name: "login", Usage: "sign in", Handler: a.login})
	d.RegisterCommand(usecase.Command{Name: "logout", Usage: "sign out and wipe local storage", Handler: a.logout})

	d.RegisterCommand(usecase.Command{Name: "dashboard", Usage: "reload the dashboard", Handler: a.protected(a.reloadDashboard)}, "d")
	d.RegisterCommand(usecase.Command{Name: "soil", Usage: "show or hide soil actions", Handler: a.protected(a.toggleSoil)})
	d.RegisterCommand(usecase.Command{Name: "focus", Usage: "focus <soil|water|crop|market>", Handler: a.protected(a.selectFocus)})
	d.RegisterCommand(usecase.Command{Name: "search", Usage: "search <text> filters alerts", Handler: a.protected(a.search)})
	d.RegisterCommand(usecase.Command{Name: "tile", Usage: "tile <crop|drip|sat> jumps to a card", Handler: a.protected(a.tile)})
	d.RegisterCommand(usecase.Command{Name: "field", Usage: "field <id> shows a field and centers the map", Handler: a.protected(a.field)})
	d.RegisterCommand(usecase.Command{Name: "status", Usage: "show API and storage health", Handler: a.protected(a.status)})
	d.RegisterCommand(usecase.Command{Name: "watch", Usage: "watch [interval] refreshes until Enter", Handler: a.protected(a.watch)})
}

func (a *App) help(_ context.Context, _ []string) error {
	a.render(func(w io.Writer) {
		fmt.Fprintln(w, "Available commands:")
		for _, c := range a.dispatcher.Commands() {
			fmt.Fprintf(w, "  %-10s %s\n", c.Name, c.Usage)
		}
		fmt.Fprintf(w, "  %-10s %s\n", "exit", "leave the program")
	})
	return nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	a.view = domain.ViewRegister
	var in auth.RegisterInput
	var err error
	if in.Name, err = a.prompt.ask("Name"); err != nil {
		return err
	}
	if in.Email, err = a.prompt.ask("Email"); err != nil {
		return err
	}
	if in.Password, err = a.prompt.askPassword("Password"); err != nil {
		return err
	}

	outcome, err := a.auth.Register(ctx, in)
	a.showOutcome(ctx, outcome)
	return err
}

func (a *App) login(ctx context.Context, _ []string) error {
	a.view = domain.ViewLogin
	var in auth.LoginInput
	var err error
	if in.Email, err = a.prompt.ask("Email"); err != nil {
		return err
	}
	if in.Password, err = a.prompt.askPassword("Password"); err != nil {
		return err
	}

	outcome, err := a.auth.Login(ctx, in)
	a.showOutcome(ctx, outcome)
	return err
}

func (a *App) logout(ctx context.Context, _ []string) error {
	outcome, err := a.auth.Logout(ctx)
	if err != nil {
		a.println("Logout failed:", err)
		return err
	}
	a.displayName = ""
	a.showOutcome(ctx, outcome)
	return nil
}

func (a *App) showOutcome(ctx context.Context, outcome domain.Outcome) {
	if outcome.Message != "" {
		a.println(outcome.Message)
	}
	a.navigate(ctx, outcome.Navigate)
}

func (a *App) reloadDashboard(ctx context.Context, _ []string) error {
	a.loadDashboard(ctx)
	return nil
}

func (a *App) toggleSoil(ctx context.Context, _ []string) error {
	st := a.dashboard.ToggleSoilActions(ctx)
	a.render(func(w io.Writer) {
		switch {
		case st.Visible:
			renderRegion(w, a.dashboard.Page(), dashboard.RegionSoilActions)
		case st.Status == dashboard.StatusFailed:
			fmt.Fprintln(w, "Soil actions are unavailable right now.")
		default:
			fmt.Fprintln(w, "Soil actions hidden.")
		}
	})
	return nil
}

func (a *App) selectFocus(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.println("usage: focus <soil|water|crop|market>")
		return nil
	}
	view, err := a.focus.Select(args[0])
	if err != nil {
		a.println("Unknown focus area:", args[0])
		return err
	}
	a.render(func(w io.Writer) { renderFocus(w, view) })
	return nil
}

func (a *App) search(_ context.Context, args []string) error {
	res := a.focus.Search(strings.Join(args, " "), a.dashboard.Page().Alerts())
	a.render(func(w io.Writer) { renderSearch(w, res) })
	return nil
}

func (a *App) tile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("usage: tile <crop|drip|sat>")
		return nil
	}
	id, ok := dashboard.TileRegion(strings.ToLower(args[0]))
	if !ok {
		a.println("Unknown tile:", args[0])
		return nil
	}
	if !a.dashboard.Page().Region(id).Done() {
		if _, err := a.dashboard.LoadRegion(ctx, id); err != nil {
			return err
		}
	}
	a.render(func(w io.Writer) { renderRegion(w, a.dashboard.Page(), id) })
	return nil
}

func (a *App) field(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("usage: field <id>")
		return nil
	}
	id := strings.ToLower(args[0])
	f, err := a.fields.Field(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFieldNotFound) {
			a.println(domain.ErrFieldNotFound.Message + ":", id)
		} else {
			a.println("Field lookup failed.")
		}
		return err
	}
	mapView, ok := domain.MapViewFor(id)
	if !ok {
		mapView = domain.DefaultMapView
	}
	a.render(func(w io.Writer) { renderField(w, f, mapView) })
	return nil
}

func (a *App) status(ctx context.Context, _ []string) error {
	if a.monitor == nil {
		a.println("No health probes configured.")
		return nil
	}
	st := a.monitor.Refresh(ctx)
	a.render(func(w io.Writer) { renderStatus(w, st) })
	return nil
}

// watch reloads the page-load regions on a schedule until Enter is pressed.
func (a *App) watch(ctx context.Context, args []string) error {
	interval := a.refresh
	if len(args) > 0 {
		d, err := time.ParseDuration(args[0])
		if err != nil || d <= 0 {
			a.println("usage: watch [interval], e.g. watch 30s")
			return nil
		}
		interval = d
	}
	// cron schedules have one second resolution
	if interval < time.Second {
		interval = time.Second
	}

	c := cron.New()
	if _, err := c.AddFunc("@every "+interval.String(), func() {
		a.loadDashboard(ctx)
	}); err != nil {
		return err
	}
	c.Start()
	a.logger.Info("watch started", zap.Duration("interval", interval))
	a.printf("Refreshing every %s. Press Enter to stop.\n", interval)

	enter := a.prompt.readLineAsync()
	select {
	case <-enter:
	case <-ctx.Done():
		a.prompt.handOff(enter)
	}

	<-c.Stop().Done()
	a.logger.Info("watch stopped")
	return nil
}
