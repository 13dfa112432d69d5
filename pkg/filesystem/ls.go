package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// ListOptions control the output of List
type ListOptions struct {
	All         bool // include entries starting with a dot
	Long        bool // one entry per line with mode and size
	SortModTime bool // newest first
	SortSize    bool // largest first
}

// List writes the entries of dir to w. Entries are sorted by name unless
// one of the sort options is set.
func List(w io.Writer, dir string, opts ListOptions) error {
	if dir == "" {
		dir = "."
	}
	des, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var listing []fs.DirEntry
	for _, de := range des {
		if opts.All || !strings.HasPrefix(de.Name(), ".") {
			listing = append(listing, de)
		}
	}
	if opts.SortSize {
		By(size).Sort(listing)
	}
	if opts.SortModTime {
		By(modtime).Sort(listing)
	}
	for _, de := range listing {
		fmt.Fprint(w, fmtEntry(de, opts.Long))
	}
	if !opts.Long && len(listing) > 0 {
		fmt.Fprintln(w)
	}
	return nil
}

func fmtEntry(de fs.DirEntry, long bool) string {
	if !long {
		return fmt.Sprintf("%s  ", de.Name())
	}
	fi, err := de.Info()
	if err != nil {
		return fmt.Sprintf("?????????? %10s %s\n", "?", de.Name())
	}
	return fmt.Sprintf("%s %10d %s %s\n", fi.Mode(), fi.Size(), fi.ModTime().Format("Jan _2 15:04"), de.Name())
}

// info ignores entries removed between ReadDir and Info
func info(de fs.DirEntry) fs.FileInfo {
	fi, err := de.Info()
	if err != nil {
		return nil
	}
	return fi
}

var size = func(d1, d2 fs.DirEntry) bool {
	d1i, d2i := info(d1), info(d2)
	if d1i == nil || d2i == nil {
		return d1i != nil
	}
	return d1i.Size() > d2i.Size()
}

var modtime = func(d1, d2 fs.DirEntry) bool {
	d1i, d2i := info(d1), info(d2)
	if d1i == nil || d2i == nil {
		return d1i != nil
	}
	return d1i.ModTime().After(d2i.ModTime())
}

type dirEntrySorter struct {
	entries []fs.DirEntry
	by      func(e1, e2 fs.DirEntry) bool
}

func (des *dirEntrySorter) Len() int {
	return len(des.entries)
}

func (des *dirEntrySorter) Swap(i, j int) {
	des.entries[i], des.entries[j] = des.entries[j], des.entries[i]
}

func (des *dirEntrySorter) Less(i, j int) bool {
	return des.by(des.entries[i], des.entries[j])
}

type By func(e1, e2 fs.DirEntry) bool

// Sort is stable, so entries that compare equal keep their name order
func (by By) Sort(entries []fs.DirEntry) {
	des := &dirEntrySorter{
		entries: entries,
		by:      by,
	}
	sort.Stable(des)
}
