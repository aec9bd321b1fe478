// Package client implements the command-line front end of the user-accounts
// API on top of [adapter.AccountsClient].
package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/Raphalinho91/user-accounts/internal/adapter"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
)

// Usage lists the supported commands.
const Usage = `commands:
  signup <username> <password>
  login  <username> <password>
  list
  get    <id>
  update [-username name] [-password pass] <id>
  delete <id>
  health
  version`

// App runs one command per call and prints its JSON result.
type App struct {
	accounts adapter.AccountsClient
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(accounts adapter.AccountsClient, out io.Writer, logger *logger.Logger) *App {
	return &App{accounts: accounts, out: out, logger: logger}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given\n%s", ErrUsage, Usage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "signup":
		username, password, err := credentials(rest)
		if err != nil {
			return err
		}
		user, err := a.accounts.SignUp(ctx, username, password)
		if err != nil {
			return err
		}
		return a.print(user)

	case "login":
		username, password, err := credentials(rest)
		if err != nil {
			return err
		}
		login, err := a.accounts.LogIn(ctx, username, password)
		if err != nil {
			return err
		}
		return a.print(login)

	case "list":
		users, err := a.accounts.ListUsers(ctx)
		if err != nil {
			return err
		}
		return a.print(users)

	case "get":
		userID, err := parseUserID(rest)
		if err != nil {
			return err
		}
		user, err := a.accounts.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		return a.print(user)

	case "update":
		return a.update(ctx, rest)

	case "delete":
		userID, err := parseUserID(rest)
		if err != nil {
			return err
		}
		if err = a.accounts.DeleteUser(ctx, userID); err != nil {
			return err
		}
		return a.print(map[string]int64{"deleted": userID})

	case "health":
		if err := a.accounts.Health(ctx); err != nil {
			return err
		}
		return a.print(models.HealthResponse{Status: "ok"})

	case "version":
		version, err := a.accounts.Version(ctx)
		if err != nil {
			return err
		}
		return a.print(version)

	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("username", "", "new username")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	userID, err := parseUserID(fs.Args())
	if err != nil {
		return err
	}

	var req models.UpdateRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "username":
			req.Username = username
		case "password":
			req.Password = password
		}
	})

	user, err := a.accounts.UpdateUser(ctx, userID, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func credentials(args []string) (string, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("%w: expected <username> <password>", ErrUsage)
	}
	return args[0], args[1], nil
}

func parseUserID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected <id>", ErrUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", ErrUsage)
	}
	return id, nil
}
