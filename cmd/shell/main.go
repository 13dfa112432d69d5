package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/scottcagno/storage/pkg/logger"
	"github.com/scottcagno/storage/pkg/shell"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "shell",
		Usage:   "minimal interactive command shell",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prompt",
				Usage:   "text printed before each command line",
				Value:   "> ",
				EnvVars: []string{"SHELL_PROMPT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (trace, debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"SHELL_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "no-prompt",
				Usage:   "never print the prompt, even on a terminal",
				EnvVars: []string{"SHELL_NO_PROMPT"},
			},
		},
		Action: runShell,
	}
	return app.Run(args)
}

func runShell(cctx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger()
	if err := log.SetLevel(cctx.String("log-level")); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	log.Debugf("starting shell %s, interactive=%t", versioninfo.Short(), interactive)

	sh := shell.New(&shell.Config{
		Prompt:     cctx.String("prompt"),
		ShowPrompt: interactive && !cctx.Bool("no-prompt"),
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     log,
	})
	err := sh.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
