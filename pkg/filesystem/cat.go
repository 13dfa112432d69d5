package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Cat copies each named file to w. A file that cannot be opened is
// skipped and the remaining files are still written; all errors are
// returned joined.
func Cat(w io.Writer, showLines bool, paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := catFile(w, showLines, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func catFile(w io.Writer, showLines bool, path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()
	return cat(w, fd, showLines)
}

func cat(w io.Writer, r io.Reader, showLines bool) error {
	if !showLines {
		_, err := io.Copy(w, r)
		return err
	}
	ln := 1
	return eachLine(r, func(line string) {
		fmt.Fprintf(w, "%6d  %s\n", ln, line)
		ln++
	})
}

// eachLine calls fn with every line of r, trailing "\n" or "\r\n"
// removed. Lines may be of any length.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			fn(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
