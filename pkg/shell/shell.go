// Package shell implements a small interactive command shell. Built-in
// commands are kept in an ordered map keyed by name; anything else is run
// as an external program.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/scottcagno/storage/pkg/generic/omap"
	"github.com/scottcagno/storage/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Command is a built-in command. args does not include the command name.
type Command func(sh *Shell, args []string) error

// Shell reads command lines and dispatches them. A Shell is not safe for
// concurrent use.
type Shell struct {
	conf     *Config
	log      *logger.Logger
	commands *omap.OrderedMap[string, Command]
	jobs     *errgroup.Group
	pending  int // background jobs started since the last Wait
}

// New returns a shell with the standard built-ins registered.
func New(conf *Config) *Shell {
	conf = checkConfig(conf)
	sh := &Shell{
		conf:     conf,
		log:      conf.Logger,
		commands: omap.NewOrdered[string, Command](),
		jobs:     new(errgroup.Group),
	}
	for _, b := range builtins {
		sh.commands.Insert(b.name, b.cmd)
	}
	return sh
}

func (sh *Shell) Stdout() io.Writer {
	return sh.conf.Stdout
}

func (sh *Shell) Stderr() io.Writer {
	return sh.conf.Stderr
}

// Register adds a built-in command. An existing command with the same
// name is left in place and ErrDuplicateCommand is returned.
func (sh *Shell) Register(name string, cmd Command) error {
	if name == "" || cmd == nil {
		return fmt.Errorf("shell: invalid command %q", name)
	}
	if _, ok := sh.commands.Insert(name, cmd); !ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	return nil
}

// Unregister removes a built-in command and reports whether it existed.
func (sh *Shell) Unregister(name string) bool {
	return sh.commands.Erase(name)
}

// Commands returns the names of the built-in commands in order.
func (sh *Shell) Commands() []string {
	names := make([]string, 0, sh.commands.Len())
	for name := range sh.commands.Keys() {
		names = append(names, name)
	}
	return names
}

// SplitLine breaks a command line into whitespace separated words.
func SplitLine(line string) []string {
	return strings.Fields(line)
}

// Execute runs a single command. The first word names a built-in or an
// external program; a trailing "&" runs an external program in the
// background.
func (sh *Shell) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	name, args := args[0], args[1:]
	if e, ok := sh.commands.Find(name); ok {
		sh.log.WithField("cmd", name).Debugf("builtin, %d args", len(args))
		return e.Value(sh, args)
	}
	return sh.spawn(ctx, name, args)
}

func (sh *Shell) spawn(ctx context.Context, name string, args []string) error {
	background := false
	if n := len(args); n > 0 && args[n-1] == "&" {
		background, args = true, args[:n-1]
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = sh.conf.Stdout
	cmd.Stderr = sh.conf.Stderr
	if f, ok := sh.conf.Stdin.(*os.File); ok && !background {
		cmd.Stdin = f
	}
	log := sh.log.WithField("cmd", name)
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrUnknownCommand
		}
		return err
	}
	if background {
		pid := cmd.Process.Pid
		log.Debugf("started in background, pid %d", pid)
		fmt.Fprintf(sh.conf.Stdout, "[%d]\n", pid)
		sh.pending++
		sh.jobs.Go(func() error {
			if err := cmd.Wait(); err != nil {
				log.Warnf("background job %d: %v", pid, err)
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
		return nil
	}
	if err := cmd.Wait(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			log.Debugf("exit status %d", exit.ExitCode())
			return nil
		}
		return err
	}
	return nil
}

// Wait blocks until every background job has finished and returns the
// first job failure, if any.
func (sh *Shell) Wait() error {
	err := sh.jobs.Wait()
	sh.jobs = new(errgroup.Group)
	sh.pending = 0
	return err
}

// Run reads and executes lines until exit is called, the input ends or ctx
// is cancelled. Command errors are printed and do not stop the loop.
// Before returning, Run waits for any background jobs; the first job
// failure is returned when the loop itself ended cleanly.
func (sh *Shell) Run(ctx context.Context) (err error) {
	defer func() {
		if sh.pending > 0 {
			sh.log.Debugf("waiting for %d background job(s)", sh.pending)
		}
		if werr := sh.Wait(); err == nil {
			err = werr
		}
	}()
	r := bufio.NewReader(sh.conf.Stdin)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if sh.conf.ShowPrompt {
			fmt.Fprint(sh.conf.Stdout, sh.conf.Prompt)
		}
		line, rerr := readLine(ctx, r)
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return rerr
		}
		args := SplitLine(line)
		if err := sh.Execute(ctx, args); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			fmt.Fprintf(sh.conf.Stderr, "%s: %v\n", args[0], err)
		}
		if rerr != nil {
			return nil
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line from r, giving up when ctx is done. An abandoned
// read stays parked on r until input arrives or r is closed, so r must not
// be read again after readLine returns a context error.
func readLine(ctx context.Context, r *bufio.Reader) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := r.ReadString('\n')
		done <- lineResult{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}
