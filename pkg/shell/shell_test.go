package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scottcagno/storage/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, input string) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	sh := New(&Config{
		ShowPrompt: true,
		Stdin:      strings.NewReader(input),
		Stdout:     &stdout,
		Stderr:     &stderr,
		Logger:     logger.New(io.Discard),
	})
	return sh, &stdout, &stderr
}

func run(t *testing.T, sh *Shell, line string) error {
	t.Helper()
	return sh.Execute(context.Background(), SplitLine(line))
}

func TestSplitLine(t *testing.T) {
	require.Equal(t, []string{"grep", "foo", "a.txt"}, SplitLine("  grep foo\ta.txt \n"))
	require.Empty(t, SplitLine("   \n"))
}

func TestShell_Commands(t *testing.T) {
	sh, _, _ := newTestShell(t, "")
	require.Equal(t, []string{
		"cat", "cd", "clear", "cp", "echo", "exit", "grep",
		"help", "ls", "mkdir", "mv", "rm", "touch", "wait",
	}, sh.Commands())
}

func TestShell_Register(t *testing.T) {
	sh, stdout, _ := newTestShell(t, "")
	hello := func(sh *Shell, args []string) error {
		_, err := io.WriteString(sh.Stdout(), "hello "+strings.Join(args, ",")+"\n")
		return err
	}
	require.NoError(t, sh.Register("hello", hello))
	require.ErrorIs(t, sh.Register("hello", hello), ErrDuplicateCommand)
	require.ErrorIs(t, sh.Register("echo", hello), ErrDuplicateCommand)
	require.Error(t, sh.Register("", hello))

	require.NoError(t, run(t, sh, "hello a b"))
	require.Equal(t, "hello a,b\n", stdout.String())

	// built-ins can be replaced after removing them
	require.True(t, sh.Unregister("echo"))
	require.False(t, sh.Unregister("echo"))
	require.NoError(t, sh.Register("echo", hello))
	stdout.Reset()
	require.NoError(t, run(t, sh, "echo x"))
	require.Equal(t, "hello x\n", stdout.String())
}

func TestShell_Echo(t *testing.T) {
	sh, stdout, _ := newTestShell(t, "")
	require.NoError(t, run(t, sh, "echo hello   world"))
	require.Equal(t, "hello world\n", stdout.String())
	require.NoError(t, run(t, sh, ""))
}

func TestShell_Help(t *testing.T) {
	sh, stdout, _ := newTestShell(t, "")
	require.NoError(t, run(t, sh, "help"))
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Equal(t, "Supported commands:", lines[0])
	require.Len(t, lines, len(sh.Commands())+1)
	require.Equal(t, "  cat", lines[1])
	require.Equal(t, "  wait", lines[len(lines)-1])
}

func TestShell_FileCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	sh, stdout, _ := newTestShell(t, "")

	require.NoError(t, run(t, sh, "mkdir sub"))
	require.DirExists(t, filepath.Join(dir, "sub"))
	require.NoError(t, run(t, sh, "touch a.txt"))
	require.FileExists(t, filepath.Join(dir, "a.txt"))
	require.NoError(t, os.WriteFile("a.txt", []byte("one\ntwo\nthree\n"), 0644))

	require.NoError(t, run(t, sh, "cp a.txt sub/b.txt"))
	require.NoError(t, run(t, sh, "mv sub/b.txt c.txt"))
	require.NoFileExists(t, filepath.Join(dir, "sub", "b.txt"))

	stdout.Reset()
	require.NoError(t, run(t, sh, "cat c.txt"))
	require.Equal(t, "one\ntwo\nthree\n", stdout.String())

	stdout.Reset()
	require.NoError(t, run(t, sh, "grep t a.txt"))
	require.Equal(t, "two\nthree\n", stdout.String())

	stdout.Reset()
	require.NoError(t, run(t, sh, "ls"))
	require.Equal(t, "a.txt  c.txt  sub  \n", stdout.String())

	require.NoError(t, run(t, sh, "rm a.txt c.txt"))
	require.NoFileExists(t, filepath.Join(dir, "a.txt"))

	require.NoError(t, run(t, sh, "cd sub"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, "sub", filepath.Base(wd))
}

func TestShell_ArgumentErrors(t *testing.T) {
	sh, _, _ := newTestShell(t, "")
	for _, line := range []string{"mkdir", "touch", "rm", "cp a", "mv a", "cat", "cat -n", "grep foo"} {
		require.ErrorIs(t, run(t, sh, line), ErrMissingOperand, line)
	}
	require.ErrorIs(t, run(t, sh, "cd a b"), ErrTooManyArgs)
	require.Error(t, run(t, sh, "ls -z"))
	require.ErrorIs(t, run(t, sh, "exit"), ErrExit)
}

func TestShell_UnknownCommand(t *testing.T) {
	sh, _, _ := newTestShell(t, "")
	require.ErrorIs(t, run(t, sh, "no-such-command-anywhere"), ErrUnknownCommand)
}

func TestShell_External(t *testing.T) {
	if _, err := exec.LookPath("printf"); err != nil {
		t.Skip("printf not available")
	}
	sh, stdout, _ := newTestShell(t, "")
	require.NoError(t, run(t, sh, "printf external"))
	require.Equal(t, "external", stdout.String())
}

func TestShell_Background(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	sh, stdout, _ := newTestShell(t, "")
	require.NoError(t, run(t, sh, "true &"))
	require.NoError(t, run(t, sh, "wait"))
	require.True(t, strings.HasPrefix(stdout.String(), "["))

	// waiting with no jobs returns immediately
	require.NoError(t, run(t, sh, "wait"))
}

func TestShell_Run(t *testing.T) {
	input := "echo hello\nno-such-command-anywhere\n\nexit\necho after\n"
	sh, stdout, stderr := newTestShell(t, input)
	require.NoError(t, sh.Run(context.Background()))
	require.Equal(t, "> hello\n> > > ", stdout.String())
	require.Equal(t, "no-such-command-anywhere: command not found\n", stderr.String())
}

func TestShell_RunEOF(t *testing.T) {
	sh, stdout, _ := newTestShell(t, "echo last")
	sh.conf.ShowPrompt = false
	require.NoError(t, sh.Run(context.Background()))
	require.Equal(t, "last\n", stdout.String())
}

func TestShell_RunCancelled(t *testing.T) {
	sh, stdout, _ := newTestShell(t, "echo never\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sh.Run(ctx), context.Canceled)
	require.Empty(t, stdout.String())
}

func TestShell_RunCancelledWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	sh := New(&Config{
		Stdin:  pr,
		Stdout: io.Discard,
		Stderr: io.Discard,
		Logger: logger.New(io.Discard),
	})
	ran := make(chan struct{})
	require.NoError(t, sh.Register("ready", func(*Shell, []string) error {
		close(ran)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- sh.Run(ctx) }()

	_, err := io.WriteString(pw, "ready\n")
	require.NoError(t, err)
	<-ran
	// no more input is coming, so Run is parked on the pipe
	cancel()

	select {
	case err := <-errc:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestShell_RunWaitsForJobs(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "slow.sh")
	require.NoError(t, os.WriteFile(script, []byte("sleep 0.2\ntouch \"$1\"\n"), 0644))
	marker := filepath.Join(dir, "done")

	sh, _, _ := newTestShell(t, "sh "+script+" "+marker+" &\nexit\n")
	require.NoError(t, sh.Run(context.Background()))
	require.FileExists(t, marker)
}

func TestShell_RunReportsFailedJob(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	sh, _, _ := newTestShell(t, "false &\n")
	err := sh.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "false")
}
