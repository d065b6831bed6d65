package embedding

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/maja42/packer"
	"github.com/maja42/packer/internal"
)

// PrintlnFunc is used for logging the embedding progress.
type PrintlnFunc func(format string, args ...interface{})

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Embed embeds the payloads of a manifest into the package located at dir.
//
// For every payload, the source path is read from the configured environment variable (resolved via lookup).
// The source is copied verbatim into the package directory, afterwards the accessor source is (re-)generated.
// All copies and the generated source are staged first and only moved into place if every payload resolved;
// on failure the package directory is left untouched.
//
// lookup (optional) resolves environment variables. Defaults to os.LookupEnv.
//
// logger (optional) is used to report the progress during embedding.
//
// Any returned error denotes a broken build configuration; the package must not be built.
func Embed(dir string, m *Manifest, lookup LookupFunc, logger PrintlnFunc) error {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}

	sources, toc, err := prepare(dir, m, lookup)
	if err != nil {
		return err
	}
	src, err := internal.Source(m.Package, toc)
	if err != nil {
		return fmt.Errorf("generate source: %w", err)
	}

	var staged []stagedFile
	defer func() {
		for _, f := range staged {
			_ = os.Remove(f.tmp) // no-op after a successful commit
		}
	}()

	for i, e := range toc {
		logger("Embedding %q from %q (%d bytes)", e.File, sources[i], e.Size)
		f, err := stageCopy(filepath.Join(dir, e.File), sources[i], e.Size)
		if err != nil {
			return fmt.Errorf("embed %q: %w", e.Accessor, err)
		}
		if f != nil {
			staged = append(staged, *f)
		}
	}

	logger("Writing %s (%d payloads, %d bytes)", internal.SourceFile, len(toc), toc.Size())
	f, err := stageData(filepath.Join(dir, internal.SourceFile), src)
	if err != nil {
		return fmt.Errorf("write source: %w", err)
	}
	if f != nil {
		staged = append(staged, *f)
	}

	return commit(staged)
}

// Check verifies that the package located at dir is up to date with the configured payload sources.
// Nothing is modified. A *packer.BuildErr is returned if an embedded copy or the generated source is outdated.
//
// See Embed for more information.
func Check(dir string, m *Manifest, lookup LookupFunc, logger PrintlnFunc) error {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}

	sources, toc, err := prepare(dir, m, lookup)
	if err != nil {
		return err
	}
	src, err := internal.Source(m.Package, toc)
	if err != nil {
		return fmt.Errorf("generate source: %w", err)
	}

	for i, e := range toc {
		logger("Checking %q against %q", e.File, sources[i])
		want, err := os.ReadFile(sources[i])
		if err != nil {
			return fmt.Errorf("read %q: %w", e.Accessor, err)
		}
		if err := compareFile(filepath.Join(dir, e.File), want); err != nil {
			return err
		}
	}

	logger("Checking %s", internal.SourceFile)
	return compareFile(filepath.Join(dir, internal.SourceFile), src)
}

// prepare validates the manifest and resolves all payload sources.
// Returns the source paths and the TOC, both in manifest order.
func prepare(dir string, m *Manifest, lookup LookupFunc) ([]string, internal.TOC, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if m == nil {
		return nil, nil, packer.NewBuildErr("missing manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate manifest: %w", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("package directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, packer.NewBuildErr("package directory %q is not a directory", dir)
	}

	sources := make([]string, 0, len(m.Payloads))
	toc := make(internal.TOC, 0, len(m.Payloads))
	for _, e := range m.Payloads {
		path, size, err := resolve(e, lookup)
		if err != nil {
			return nil, nil, fmt.Errorf("accessor %q: %w", e.Accessor, err)
		}
		sources = append(sources, path)
		toc = append(toc, internal.Entry{
			Accessor: e.Accessor,
			File:     e.File,
			Size:     size,
		})
	}
	return sources, toc, nil
}

// resolve returns the source path and size of a payload.
func resolve(e Entry, lookup LookupFunc) (string, int64, error) {
	path, ok := lookup(e.Env)
	if !ok {
		return "", 0, packer.NewBuildErr("environment variable %q not set", e.Env)
	}
	if path == "" {
		return "", 0, packer.NewBuildErr("environment variable %q is empty", e.Env)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}
	if info.IsDir() {
		return "", 0, packer.NewBuildErr("cannot embed directory %q", path)
	}
	if !info.Mode().IsRegular() {
		return "", 0, packer.NewBuildErr("cannot embed non-regular file %q", path)
	}
	return path, info.Size(), nil
}

// stagedFile is a temporary file waiting to replace dst.
type stagedFile struct {
	dst string
	tmp string
}

// checkTarget ensures that path is either missing or a regular file that can be replaced.
func checkTarget(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, packer.NewBuildErr("cannot replace %q (not a regular file)", path)
	}
	return info, nil
}

// stageCopy copies the source file next to dst and verifies the number of copied bytes.
// Returns nil if both paths refer to the same file.
func stageCopy(dst, src string, size int64) (*stagedFile, error) {
	dstInfo, err := checkTarget(dst)
	if err != nil {
		return nil, err
	}

	in, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	if srcInfo, err := in.Stat(); err == nil && dstInfo != nil && os.SameFile(srcInfo, dstInfo) {
		return nil, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".embed-*")
	if err != nil {
		return nil, err
	}
	f := &stagedFile{dst: dst, tmp: tmp.Name()}

	n, err := io.Copy(tmp, in)
	if cErr := tmp.Close(); err == nil {
		err = cErr
	}
	if err == nil && n != size {
		err = packer.NewBuildErr("source %q changed during embedding (%d bytes instead of %d)", src, n, size)
	}
	if err == nil {
		err = os.Chmod(f.tmp, 0644)
	}
	if err != nil {
		_ = os.Remove(f.tmp)
		return nil, err
	}
	return f, nil
}

// stageData writes data next to path, unless path already has the given content.
func stageData(path string, data []byte) (*stagedFile, error) {
	if _, err := checkTarget(path); err != nil {
		return nil, err
	}
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return nil, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".embed-*")
	if err != nil {
		return nil, err
	}
	f := &stagedFile{dst: path, tmp: tmp.Name()}

	_, err = tmp.Write(data)
	if cErr := tmp.Close(); err == nil {
		err = cErr
	}
	if err == nil {
		err = os.Chmod(f.tmp, 0644)
	}
	if err != nil {
		_ = os.Remove(f.tmp)
		return nil, err
	}
	return f, nil
}

// commit moves all staged files into place.
// If a file cannot be moved, the already replaced files are restored.
func commit(staged []stagedFile) error {
	type replaced struct {
		dst    string
		backup string // empty if dst did not exist before
	}
	var done []replaced

	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			if done[i].backup == "" {
				_ = os.Remove(done[i].dst)
			} else {
				_ = os.Rename(done[i].backup, done[i].dst)
			}
		}
	}

	for _, f := range staged {
		r := replaced{dst: f.dst}
		if _, err := os.Lstat(f.dst); err == nil {
			r.backup = f.tmp + ".orig"
			if err := os.Rename(f.dst, r.backup); err != nil {
				rollback()
				return err
			}
		}
		if err := os.Rename(f.tmp, f.dst); err != nil {
			if r.backup != "" {
				_ = os.Rename(r.backup, f.dst)
			}
			rollback()
			return err
		}
		done = append(done, r)
	}

	for _, r := range done {
		if r.backup != "" {
			_ = os.Remove(r.backup)
		}
	}
	return nil
}

// compareFile ensures that the file at path has the given content.
func compareFile(path string, want []byte) error {
	have, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return packer.NewBuildErr("%q is missing", path)
	}
	if err != nil {
		return err
	}
	if !bytes.Equal(have, want) {
		return packer.NewBuildErr("%q is out of date", path)
	}
	return nil
}
