package generator

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrInvalidCount = errors.New("line count must be positive")
	ErrOutput       = errors.New("output destination failure")
)

// Stats describes a finished generation
type Stats struct {
	Lines    int64
	Bytes    int64
	Checksum string // hex SHA-256 of the written bytes, set by WriteFile
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Generate writes count lines from g to w in generation order. The first
// write error aborts the run. progress may be nil.
func Generate(w io.Writer, g Generator, count int64, progress Progress) (Stats, error) {
	if count <= 0 {
		return Stats{}, ErrInvalidCount
	}

	cw := &countingWriter{w: w}
	for i := int64(0); i < count; i++ {
		if err := g.WriteLine(cw); err != nil {
			return Stats{Lines: i, Bytes: cw.n}, fmt.Errorf("%w: line %d: %w", ErrOutput, i+1, err)
		}
		if progress != nil {
			_ = progress.Add(1)
		}
	}

	return Stats{Lines: count, Bytes: cw.n}, nil
}

// WriteFile truncates (or creates) path and fills it with count lines from g.
// The file is closed on every path; its checksum is returned in Stats.
// An invalid count fails before path is touched.
func WriteFile(path string, g Generator, count int64, progress Progress) (stats Stats, err error) {
	if count <= 0 {
		return Stats{}, ErrInvalidCount
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Stats{}, fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutput, cerr)
		}
	}()

	hash := sha256.New()
	buf := bufio.NewWriter(file)
	stats, err = Generate(io.MultiWriter(buf, hash), g, count, progress)
	if err != nil {
		return stats, err
	}
	if err := buf.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrOutput, err)
	}

	stats.Checksum = hex.EncodeToString(hash.Sum(nil))
	return stats, nil
}

// ChecksumFile returns the hex SHA-256 of the file at path.
func ChecksumFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
