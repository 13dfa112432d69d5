package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/scottcagno/storage/pkg/filesystem"
)

var builtins = []struct {
	name string
	cmd  Command
}{
	{"cd", cd},
	{"ls", ls},
	{"mkdir", mkdir},
	{"touch", touch},
	{"rm", rm},
	{"cp", cp},
	{"mv", mv},
	{"echo", echo},
	{"cat", cat},
	{"grep", grep},
	{"help", help},
	{"exit", exit},
	{"wait", wait},
	{"clear", clearScreen},
}

func cd(sh *Shell, args []string) error {
	if len(args) > 1 {
		return ErrTooManyArgs
	}
	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = home
	}
	return os.Chdir(dir)
}

// ls accepts the flags -a, -l, -t and -S in any combination
func ls(sh *Shell, args []string) error {
	var opts filesystem.ListOptions
	var dirs []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			dirs = append(dirs, arg)
			continue
		}
		for _, c := range arg[1:] {
			switch c {
			case 'a':
				opts.All = true
			case 'l':
				opts.Long = true
			case 't':
				opts.SortModTime = true
			case 'S':
				opts.SortSize = true
			default:
				return fmt.Errorf("invalid option -- '%c'", c)
			}
		}
	}
	if len(dirs) == 0 {
		dirs = append(dirs, ".")
	}
	for _, dir := range dirs {
		if len(dirs) > 1 {
			fmt.Fprintf(sh.Stdout(), "%s:\n", dir)
		}
		if err := filesystem.List(sh.Stdout(), dir, opts); err != nil {
			return err
		}
	}
	return nil
}

func mkdir(sh *Shell, args []string) error {
	if len(args) == 0 {
		return ErrMissingOperand
	}
	return filesystem.Mkdir(args...)
}

func touch(sh *Shell, args []string) error {
	if len(args) == 0 {
		return ErrMissingOperand
	}
	return filesystem.Touch(args...)
}

func rm(sh *Shell, args []string) error {
	if len(args) == 0 {
		return ErrMissingOperand
	}
	return filesystem.Remove(args...)
}

func cp(sh *Shell, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected source and destination", ErrMissingOperand)
	}
	return filesystem.Copy(args[0], args[1])
}

func mv(sh *Shell, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected source and destination", ErrMissingOperand)
	}
	return filesystem.Move(args[0], args[1])
}

func echo(sh *Shell, args []string) error {
	_, err := fmt.Fprintln(sh.Stdout(), strings.Join(args, " "))
	return err
}

func cat(sh *Shell, args []string) error {
	showLines := false
	if len(args) > 0 && args[0] == "-n" {
		showLines, args = true, args[1:]
	}
	if len(args) == 0 {
		return ErrMissingOperand
	}
	return filesystem.Cat(sh.Stdout(), showLines, args...)
}

func grep(sh *Shell, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected pattern and file", ErrMissingOperand)
	}
	return filesystem.Grep(sh.Stdout(), args[0], args[1:]...)
}

func help(sh *Shell, args []string) error {
	w := sh.Stdout()
	fmt.Fprintln(w, "Supported commands:")
	sh.commands.Range(func(name string, _ *Command) bool {
		fmt.Fprintf(w, "  %s\n", name)
		return true
	})
	return nil
}

func exit(sh *Shell, args []string) error {
	return ErrExit
}

func wait(sh *Shell, args []string) error {
	return sh.Wait()
}

func clearScreen(sh *Shell, args []string) error {
	_, err := fmt.Fprint(sh.Stdout(), "\033[2J\033[1;1H")
	return err
}
