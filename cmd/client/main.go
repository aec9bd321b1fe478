package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Raphalinho91/user-accounts/internal/adapter"
	"github.com/Raphalinho91/user-accounts/internal/client"
	"github.com/Raphalinho91/user-accounts/internal/logger"
)

const tokenEnv = "USER_ACCOUNTS_TOKEN"

func main() {
	log := logger.NewLogger("user-accounts-client")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Send()
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	serverAddress := fs.String("server", "http://localhost:3000", "user-accounts server address")
	token := fs.String("token", os.Getenv(tokenEnv), "access token for update/delete (env "+tokenEnv+")")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] <command> [args]\n\n%s\n\nflags:\n", os.Args[0], client.Usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	accounts, err := adapter.NewHTTPAccountsClient(*serverAddress, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create accounts client")
	}
	accounts.SetToken(*token)

	if err = client.NewApp(accounts, os.Stdout, log).Run(context.Background(), fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
