package filesystem

import (
	"errors"
	"io"
	"os"
)

// Mkdir creates each directory, continuing past failures
func Mkdir(dirs ...string) error {
	var errs []error
	for _, dir := range dirs {
		if err := os.Mkdir(dir, os.ModePerm); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Touch creates each file if it does not exist
func Touch(files ...string) error {
	var errs []error
	for _, file := range files {
		fd, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err = fd.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Remove removes each file or empty directory
func Remove(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Copy copies the contents of src to dst, creating or truncating dst
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Move renames src to dst
func Move(src, dst string) error {
	return os.Rename(src, dst)
}
