package cli

import (
	"bytes"
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/internal/apiclient"
	"github.com/fastygo/agrofocus/internal/config"
	"github.com/fastygo/agrofocus/internal/infrastructure/monitor"
	"github.com/fastygo/agrofocus/internal/server"
	"github.com/fastygo/agrofocus/repository/credentials"
	"github.com/fastygo/agrofocus/repository/memory"
	"github.com/fastygo/agrofocus/repository/static"
	"github.com/fastygo/agrofocus/usecase/auth"
	"github.com/fastygo/agrofocus/usecase/dashboard"
	"github.com/fastygo/agrofocus/usecase/focus"
)

func newAPIClient(t *testing.T) *apiclient.Client {
	t.Helper()
	cfg := &config.Config{Context: config.ContextConfig{RequestTimeout: time.Second}}
	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = fasthttp.Serve(ln, server.Handler(cfg, static.NewFarmRepository(), nil)) }()
	t.Cleanup(func() { _ = ln.Close() })

	return apiclient.New(apiclient.Config{
		BaseURL:     "http://api.test",
		ReadTimeout: time.Second,
		Dial:        func(string) (net.Conn, error) { return ln.Dial() },
	}, nil)
}

func newTestApp(t *testing.T, kv *memory.Store, in io.Reader) (*App, *bytes.Buffer) {
	t.Helper()
	api := newAPIClient(t)
	store := credentials.NewStore(kv, nil)
	mon := monitor.New(time.Minute, nil,
		monitor.Probe{Name: "api", Check: func(ctx context.Context) error {
			_, err := api.Hello(ctx)
			return err
		}},
		monitor.Probe{Name: "storage", Check: kv.Ping},
	)

	out := &bytes.Buffer{}
	app := New(Deps{
		Auth:      auth.New(store, store, nil, nil),
		Dashboard: dashboard.New(api, nil),
		Focus:     focus.NewSelector(nil),
		Fields:    api,
		Monitor:   mon,
		In:        in,
		Out:       out,
		InputFd:   -1,
	})
	return app, out
}

func runScript(t *testing.T, kv *memory.Store, lines ...string) (*App, string) {
	t.Helper()
	app, out := newTestApp(t, kv, strings.NewReader(strings.Join(lines, "\n")+"\n"))
	require.NoError(t, app.Run(context.Background()))
	return app, out.String()
}

func TestProtectedCommandsRedirectToLogin(t *testing.T) {
	app, out := runScript(t, memory.NewStore(), "dashboard", "soil", "status")

	assert.Equal(t, 3, strings.Count(out, "Please log in first."))
	assert.Contains(t, out, "== Login ==")
	assert.NotContains(t, out, "Welcome,")
	assert.NotContains(t, out, "storage    ok")
	assert.NotContains(t, out, "checked at")
	assert.Equal(t, domain.ViewLogin, app.View())
}

func TestRegisterLoginAndBrowse(t *testing.T) {
	app, out := runScript(t, memory.NewStore(),
		"register", "A", "a@x.com", "p",
		"login", "a@x.com", "p",
		"soil",
		"focus crop",
		"search rice",
		"tile drip",
		"field north",
		"field nope",
		"status",
		"exit",
	)

	assert.Contains(t, out, "Registration successful")
	assert.Contains(t, out, "Welcome, A")
	assert.Contains(t, out, "Soil moisture & water stress")
	assert.Contains(t, out, "12.5 L/min")
	assert.Contains(t, out, "East Plot - Rice · High priority")
	assert.Contains(t, out, "Today's Focus: Crop Health")
	assert.Contains(t, out, ">> Jumped to alerts")
	assert.Contains(t, out, `Alerts matching "rice"`)
	assert.Contains(t, out, "[water] East Plot rice is below target moisture.")
	assert.Contains(t, out, "== Drip irrigation status ==")
	assert.Contains(t, out, "Map centered at 19.5000, 75.5000 (zoom 7)")
	assert.Contains(t, out, "Field not found: nope")
	assert.Contains(t, out, "storage    ok")
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, domain.ViewDashboard, app.View())
}

func TestWrongPasswordStaysOnLogin(t *testing.T) {
	app, out := runScript(t, memory.NewStore(),
		"register", "A", "a@x.com", "p",
		"login", "a@x.com", "nope",
	)

	assert.Contains(t, out, "Invalid email or password")
	assert.NotContains(t, out, "Welcome, A")
	assert.Equal(t, domain.ViewLogin, app.View())
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := memory.NewStore()
	runScript(t, kv, "register", "A", "a@x.com", "p", "login", "a@x.com", "p")

	app, out := runScript(t, kv)
	assert.Contains(t, out, "Welcome, A")
	assert.Equal(t, domain.ViewDashboard, app.View())
}

func TestLogoutWipesLocalStorage(t *testing.T) {
	kv := memory.NewStore()
	_, out := runScript(t, kv,
		"register", "A", "a@x.com", "p",
		"login", "a@x.com", "p",
		"logout",
		"dashboard",
	)

	assert.Contains(t, out, "Please log in first.")
	assert.Equal(t, 0, kv.Len())
}

func TestSoilToggleHidesOnSecondUse(t *testing.T) {
	_, out := runScript(t, memory.NewStore(),
		"register", "A", "a@x.com", "p",
		"login", "a@x.com", "p",
		"soil",
		"soil",
	)
	assert.Contains(t, out, "== Soil actions ==")
	assert.Contains(t, out, "Soil actions hidden.")
}

func TestUnknownCommandAndHelp(t *testing.T) {
	_, out := runScript(t, memory.NewStore(), "bogus", "help")
	assert.Contains(t, out, "Unknown command: bogus")
	assert.Contains(t, out, "watch")
	assert.Contains(t, out, "logout")
}

func TestWatchStopsOnEnter(t *testing.T) {
	_, out := runScript(t, memory.NewStore(),
		"register", "A", "a@x.com", "p",
		"login", "a@x.com", "p",
		"watch 10ms",
		"",
	)
	assert.Contains(t, out, "Refreshing every 1s. Press Enter to stop.")
}

func TestPasswordReadFromTerminal(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("p"), nil }

	_, out := runScript(t, memory.NewStore(),
		"register", "A", "a@x.com",
		"login", "a@x.com",
	)
	assert.Contains(t, out, "Registration successful")
	assert.Contains(t, out, "Welcome, A")
}

func TestShortSearchStillShowsMatches(t *testing.T) {
	_, out := runScript(t, memory.NewStore(),
		"register", "A", "a@x.com", "p",
		"login", "a@x.com", "p",
		"search ri",
	)
	assert.Contains(t, out, `Alerts matching "ri"`)
	assert.Contains(t, out, "[water] East Plot rice is below target moisture.")
	assert.NotContains(t, out, "South Plot maize")
	assert.NotContains(t, out, ">> Jumped to alerts")
}

func TestHeaderReflectsMonitorState(t *testing.T) {
	_, out := runScript(t, memory.NewStore(),
		"register", "A", "a@x.com", "p",
		"login", "a@x.com", "p",
		"status",
		"dashboard",
	)
	assert.Contains(t, out, "[api: checking]")
	assert.Contains(t, out, "[api: online]")
}

func TestCancelledWatchLeavesNextLineForPrompt(t *testing.T) {
	kv := memory.NewStore()
	require.NoError(t, credentials.NewStore(kv, nil).SetSession(context.Background(), domain.User{Name: "A", Email: "a@x.com"}))

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	app, out := newTestApp(t, kv, pr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.Execute(ctx, "watch", nil))
	assert.Contains(t, out.String(), "Press Enter to stop.")

	go func() { _, _ = io.WriteString(pw, "help\n") }()
	line, err := app.prompt.readLine()
	require.NoError(t, err)
	assert.Equal(t, "help", line)
}
