package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dashdoc"
)

// CopyFile copies src to dst byte for byte, creating parent directories and
// keeping the permission bits. The copy is read back and checked against the
// xxHash of the source; a mismatch is reported as EINTERNAL. It returns the
// hash as a hex string.
func CopyFile(src, dst string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", err
	}

	h := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, h), in); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	sum := formatSum(h.Sum64())
	if err := verifyFile(dst, sum); err != nil {
		return "", err
	}
	return sum, nil
}

// HashFile returns the xxHash of a file's content as a hex string.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return formatSum(h.Sum64()), nil
}

// WriteFile writes content to path, creating parent directories, and checks
// the written file against the xxHash of content. It returns the hash as a
// hex string.
func WriteFile(path, content string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}

	sum := formatSum(xxhash.Sum64String(content))
	if err := verifyFile(path, sum); err != nil {
		return "", err
	}
	return sum, nil
}

// verifyFile returns EINTERNAL if the content of path does not hash to want.
func verifyFile(path, want string) error {
	got, err := HashFile(path)
	if err != nil {
		return fmt.Errorf("failed to verify %s: %w", path, err)
	}
	if got != want {
		return dashdoc.Errorf(dashdoc.EINTERNAL, "%s has hash %s after write, want %s", path, got, want)
	}
	return nil
}

func formatSum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
