// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-store-keeper/internal/adapter"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

type command struct {
	usage  string
	authed bool
	run    func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

type App struct {
	adapter adapter.ServerAdapter
	session Session

	out             io.Writer
	copyToClipboard func(string) error

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, session Session, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter:         serverAdapter,
		session:         session,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}

	a.commands = map[string]command{
		"version":        {usage: "print the server version", run: a.version},
		"register":       {usage: "create an account: -email -password [-copy]", run: a.register},
		"login":          {usage: "sign in: -email -password [-copy]", run: a.login},
		"logout":         {usage: "revoke the saved token", authed: true, run: a.logout},
		"reset-password": {usage: "change the password: -old -new", authed: true, run: a.resetPassword},
		"stores":         {usage: "list stores: [-q filter] [-page n]", authed: true, run: a.listStores},
		"create-store":   {usage: "create a store: -name", authed: true, run: a.createStore},
		"delete-store":   {usage: "delete a store: -id", authed: true, run: a.deleteStore},
		"items":          {usage: "list items: -store [-q filter] [-page n]", authed: true, run: a.listItems},
		"add-item":       {usage: "add an item: -store -name [-description]", authed: true, run: a.addItem},
		"delete-item":    {usage: "delete an item: -store -id", authed: true, run: a.deleteItem},
	}

	return a
}

// Run executes one subcommand. Commands that need a token load it from the
// session first.
func (a *App) Run(args []string) error {
	return a.RunContext(context.Background(), args)
}

func (a *App) RunContext(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printUsage()
		return nil
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if cmd.authed {
		token, err := a.session.Load()
		if err != nil {
			return err
		}
		if token == "" {
			return adapter.ErrNotLoggedIn
		}
		a.adapter.SetToken(token)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(ctx, fs, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(titleStyle.Render("usage: store-keeper <command> [flags]"))
	b.WriteByte('\n')
	for _, name := range names {
		fmt.Fprintf(&b, "  %-15s %s\n", name, helpStyle.Render(a.commands[name].usage))
	}
	fmt.Fprint(a.out, b.String())
}

func (a *App) success(format string, args ...any) {
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintError renders err the way the client reports failures.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error: "+err.Error()))
}
