package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/internal/config"
	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/render"
	"github.com/homemanager/hmctl/session"
	"github.com/homemanager/hmctl/views"
)

// app wires the client, session manager, and renderer behind the
// command tree.
type app struct {
	config  config.Config
	log     zerolog.Logger
	client  *api.Client
	session *session.Manager
	render  *render.Renderer
}

func newApp(c config.Config, log zerolog.Logger) (*app, error) {
	store, err := session.NewFileStore(c.GetDataDir())
	if err != nil {
		return nil, errors.Wrapf(err, "[newApp] session.NewFileStore")
	}

	client := api.NewClient(c.GetAPIBaseURL(), c.GetHTTPTimeout(), nil, log)
	manager, err := session.NewManager(store, client.Auth, client.Users, log)
	if err != nil {
		return nil, errors.Wrapf(err, "[newApp] session.NewManager")
	}
	client.SetTokenSource(manager)

	color := term.IsTerminal(int(os.Stdout.Fd()))
	return &app{
		config:  c,
		log:     log,
		client:  client,
		session: manager,
		render:  render.NewRenderer(os.Stdout, render.DefaultTheme, color),
	}, nil
}

// tableOptions combines the configured table defaults with the page
// size the caller picked.
func (a *app) tableOptions(pageSize int) views.TableOptions {
	return views.TableOptions{
		PageSize:        pageSize,
		PageSizeOptions: a.config.GetPageSizeOptions(),
		MinSearchLength: a.config.GetMinSearchLength(),
	}
}

// requireAuth fails commands that need a logged-in session.
func (a *app) requireAuth() error {
	if !a.session.IsAuthenticated() {
		return errors.Wrapf(errors.ErrNotAuthenticated, "[app.requireAuth] run 'hmctl login' first")
	}
	return nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrapf(err, "[promptPassword] term.ReadPassword")
	}
	return string(password), nil
}
