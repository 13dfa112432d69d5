package omap

import "errors"

var (
	ErrKeyNotFound = errors.New("omap: key not found")
)
