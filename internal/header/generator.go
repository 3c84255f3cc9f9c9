package header

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oszuidwest/zwfm-pagegen/internal/util"
)

// Sentinel errors for header generation.
var (
	// ErrInvalidUsage is returned when no input file is given.
	ErrInvalidUsage = errors.New("missing argument - filename")

	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrIO is returned when reading the input or writing the header fails.
	ErrIO = errors.New("i/o failure")
)

// Result describes a generated header.
type Result struct {
	InputPath      string // Path of the source page as given
	OutputPath     string // Absolute path of the written header
	FileName       string // Base name of the written header
	Symbol         string // Name of the byte array
	InputSize      int    // Uncompressed size in bytes
	CompressedSize int    // Length of the byte array
}

// Generator writes page headers into a fixed output directory.
type Generator struct {
	outputDir string

	// Now returns the time stamped into generated headers.
	Now func() time.Time
}

// NewGenerator returns a Generator that writes into outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		outputDir: outputDir,
		Now:       time.Now,
	}
}

// OutputDir returns the directory headers are written to.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// Generate compresses the file at inputPath and writes it as
// page_<base>.h into the output directory, replacing any existing file.
func (g *Generator) Generate(inputPath string) (*Result, error) {
	if inputPath == "" {
		return nil, ErrInvalidUsage
	}

	info, err := os.Stat(inputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}
	if err != nil {
		return nil, ioFailure("stat input", err)
	}
	if info.IsDir() {
		return nil, ioFailure("read input", fmt.Errorf("%s is a directory", inputPath))
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, ioFailure("read input", err)
	}

	payload, err := Compress(raw)
	if err != nil {
		return nil, ioFailure("compress input", err)
	}

	base := BaseName(inputPath)
	safeBase := MakeCIdentifier(base)

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, ioFailure("create output directory", err)
	}

	fileName := "page_" + base + ".h"
	outputPath, err := filepath.Abs(filepath.Join(g.outputDir, fileName))
	if err != nil {
		return nil, ioFailure("resolve output path", err)
	}

	if err := writeHeader(outputPath, Page{SafeBase: safeBase, Payload: payload}, g.Now()); err != nil {
		return nil, err
	}

	slog.Debug("header written", "path", outputPath, "input_bytes", len(raw), "compressed_bytes", len(payload))

	return &Result{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		FileName:       fileName,
		Symbol:         SymbolName(safeBase),
		InputSize:      len(raw),
		CompressedSize: len(payload),
	}, nil
}

// writeHeader renders p into path, truncating any previous content.
func writeHeader(path string, p Page, generatedAt time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return ioFailure("create header", err)
	}

	if err := Render(f, p, generatedAt); err != nil {
		_ = f.Close()
		return ioFailure("write header", err)
	}

	if err := f.Close(); err != nil {
		return ioFailure("close header", err)
	}
	return nil
}

// BaseName returns the file name of path without its final extension.
// Leading dots do not start an extension, so ".page" stays ".page".
func BaseName(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if strings.Trim(stem, ".") == "" {
		return name
	}
	return stem
}

func ioFailure(operation string, err error) error {
	return fmt.Errorf("%w: %w", ErrIO, util.WrapError(operation, err))
}
