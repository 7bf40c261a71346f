// Command seed replaces the stored users with a fixed set of test accounts,
// optionally adding one entered interactively (-i).
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/seed"
	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	var interactive bool
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&interactive, "i", false, "also prompt for one extra user")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-i"})); err != nil {
		return err
	}

	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)

	m, err := repomanager.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer m.Close(ctx)

	if err := m.RunMigrations(ctx); err != nil {
		return err
	}

	creds := append([]seed.Credential(nil), seed.DefaultUsers...)
	if interactive {
		c, err := seed.PromptCredential(bufio.NewReader(os.Stdin), os.Stdout)
		if err != nil {
			return err
		}
		creds = append(creds, c)
	}

	_, err = seed.NewSeeder(m, os.Stdout, logger).Run(ctx, creds)
	return err
}
