package main

import (
	"context"

	svg2png "github.com/alnah/go-svg2png"
)

// CLIConverter is the interface for a single-file SVG converter.
type CLIConverter interface {
	Convert(ctx context.Context, svg []byte) (*svg2png.ConvertResult, error)
}

// Compile-time interface implementation checks.
var (
	_ CLIConverter = (*svg2png.Converter)(nil)
	_ Pool         = (*converterPool)(nil)
)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// converterPool adapts svg2png.ConverterPool to the Pool interface.
type converterPool struct {
	pool *svg2png.ConverterPool
}

// newConverterPool creates a lazily populated pool of size converters.
func newConverterPool(size int, opts ...svg2png.Option) Pool {
	return &converterPool{pool: svg2png.NewConverterPool(size, opts...)}
}

func (p *converterPool) Acquire() (CLIConverter, error) {
	conv, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (p *converterPool) Release(c CLIConverter) {
	if conv, ok := c.(*svg2png.Converter); ok {
		p.pool.Release(conv)
	}
}

func (p *converterPool) Size() int { return p.pool.Size() }

func (p *converterPool) Close() error { return p.pool.Close() }
