package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scottcagno/storage/pkg/search"
)

// Grep writes every line of the named files that contains pattern. When
// more than one file is searched, lines are prefixed with the file name.
// Unreadable files are skipped; all errors are returned joined.
func Grep(w io.Writer, pattern string, paths ...string) error {
	s := search.NewKnuthMorrisPratt()
	var errs []error
	for _, path := range paths {
		prefix := ""
		if len(paths) > 1 {
			prefix = path + ":"
		}
		if err := grepFile(w, s, pattern, path, prefix); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func grepFile(w io.Writer, s search.Searcher, pattern, path, prefix string) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()
	err = eachLine(fd, func(line string) {
		if search.Contains(s, line, pattern) {
			fmt.Fprintf(w, "%s%s\n", prefix, line)
		}
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
