package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pass-auth/internal/adapter"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/models"
)

// TokenEnvVariable holds the bearer token when -token is not given.
const TokenEnvVariable = "GOPASSAUTH_TOKEN"

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

type App struct {
	server adapter.ServerAdapter
	out    io.Writer
	logger *logger.Logger

	commands map[string]command
}

func NewApp(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		server: server,
		out:    out,
		logger: logger,
	}

	a.commands = map[string]command{
		"login":    {usage: "-user NAME -password PASSWORD", run: a.login},
		"logout":   {usage: "[-token TOKEN]", run: a.logout},
		"register": {usage: "-user NAME -password PASSWORD -email EMAIL -name NAME -surname SURNAME [-role User|Administrator] [-token TOKEN]", run: a.register},
		"remove":   {usage: "-id USER_ID [-token TOKEN]", run: a.remove},
		"me":       {usage: "[-token TOKEN]", run: a.me},
		"version":  {usage: "", run: a.version},
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(a.out)

	a.logger.Debug().Str("command", args[0]).Msg("running client command")
	return cmd.run(ctx, fs, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: client <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-9s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	userName := fs.String("user", "", "user name")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userName == "" || *password == "" {
		return fmt.Errorf("%w: -user and -password", ErrMissingFlag)
	}

	if _, err := a.server.Login(ctx, models.LoginRequest{UserName: *userName, Password: *password}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.server.Token())
	return nil
}

func (a *App) logout(ctx context.Context, fs *flag.FlagSet, args []string) error {
	a.tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.server.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) error {
	user := models.NewUser()
	fs.StringVar(&user.UserName, "user", "", "user name")
	fs.StringVar(&user.Password, "password", "", "password")
	fs.StringVar(&user.PasswordConfirm, "password-confirm", "", "password confirmation")
	fs.StringVar(&user.Email, "email", "", "e-mail address")
	fs.StringVar(&user.Name, "name", "", "first name")
	fs.StringVar(&user.Surname, "surname", "", "surname")
	role := fs.String("role", models.RoleUser.String(), "role: User or Administrator")
	a.tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := models.ParseRole(*role)
	if err != nil {
		return err
	}
	user.Role = r

	if _, err := a.server.Register(ctx, user); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "user %s registered\n", user.UserName)
	return nil
}

func (a *App) remove(ctx context.Context, fs *flag.FlagSet, args []string) error {
	userID := fs.String("id", "", "id of the user to remove")
	a.tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}

	if _, err := a.server.RemoveUser(ctx, *userID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "user %s removed\n", *userID)
	return nil
}

func (a *App) me(ctx context.Context, fs *flag.FlagSet, args []string) error {
	a.tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	me, err := a.server.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id: %s\nname: %s\nrole: %s\n", me.UserID, me.UserName, me.Role)
	return nil
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	v, err := a.server.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, v)
	return nil
}

// tokenFlag registers -token. Parsing it replaces the adapter's token; when
// the flag is absent the environment variable is used.
func (a *App) tokenFlag(fs *flag.FlagSet) {
	if env := strings.TrimSpace(os.Getenv(TokenEnvVariable)); env != "" {
		a.server.SetToken(env)
	}
	fs.Func("token", "bearer token (default $"+TokenEnvVariable+")", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("empty token")
		}
		a.server.SetToken(s)
		return nil
	})
}
