package main

import (
	"io"
	"os"
	"time"

	svg2png "github.com/alnah/go-svg2png"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and converter pool construction.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	NewPool func(size int, opts ...svg2png.Option) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		NewPool: newConverterPool,
	}
}
