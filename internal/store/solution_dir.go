package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/MKhiriev/go-exercism-backup/models"
)

// SolutionDirectories manipulates solution directories on a billy
// filesystem rooted at the backup output directory.
//
// A solution directory holds the solution's files, the iterations
// directory (one numbered subdirectory per iteration) and the state
// directory. Content is always fully replaced, never patched.
type SolutionDirectories struct {
	fs            billy.Filesystem
	iterationsDir string
}

// NewSolutionDirectories returns a SolutionDirectories over fs using
// iterationsDir as the name of the per-solution iterations directory.
func NewSolutionDirectories(fs billy.Filesystem, iterationsDir string) *SolutionDirectories {
	return &SolutionDirectories{fs: fs, iterationsDir: iterationsDir}
}

// SolutionDir returns the directory of solution relative to the root.
func (d *SolutionDirectories) SolutionDir(solution models.Solution) string {
	return d.fs.Join(solution.Track.Name, solution.Exercise.Name)
}

// IterationsDir returns the iterations directory of the solution in dir.
func (d *SolutionDirectories) IterationsDir(dir string) string {
	return d.fs.Join(dir, d.iterationsDir)
}

// IterationDir returns the directory of iteration idx of the solution in dir.
func (d *SolutionDirectories) IterationDir(dir string, idx int) string {
	return d.fs.Join(dir, d.iterationsDir, strconv.Itoa(idx))
}

// Exists reports whether dir exists.
func (d *SolutionDirectories) Exists(dir string) (bool, error) {
	info, err := d.fs.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	return true, nil
}

// Create creates dir and its parents. It succeeds if dir already exists.
func (d *SolutionDirectories) Create(dir string) error {
	if err := d.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// Purge removes the content of dir except the iterations and state
// directories, then makes sure dir exists.
func (d *SolutionDirectories) Purge(dir string) error {
	entries, err := d.fs.ReadDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == d.iterationsDir || name == StateDirName {
			continue
		}
		if err = util.RemoveAll(d.fs, d.fs.Join(dir, name)); err != nil {
			return fmt.Errorf("remove %s: %w", d.fs.Join(dir, name), err)
		}
	}

	return d.Create(dir)
}

// WriteFile writes the content of r to the remote relative path file inside
// dir, creating missing parent directories and replacing any existing file.
func (d *SolutionDirectories) WriteFile(dir, file string, r io.Reader) error {
	segments, err := SafePathSegments(file)
	if err != nil {
		return err
	}
	target := d.fs.Join(append([]string{dir}, segments...)...)

	if err = d.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create parent of %s: %w", target, err)
	}

	f, err := d.fs.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}

	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", target, err)
	}
	return nil
}

// WriteIterationFiles writes the submission files of iteration idx.
func (d *SolutionDirectories) WriteIterationFiles(dir string, idx int, files []models.SubmissionFile) error {
	iterationDir := d.IterationDir(dir, idx)
	if err := d.Create(iterationDir); err != nil {
		return err
	}

	for _, file := range files {
		if err := d.WriteFile(iterationDir, file.Filename, strings.NewReader(file.Content)); err != nil {
			return err
		}
	}
	return nil
}

// LocalIterations returns the indices of the iterations backed up in dir,
// ascending. Entries of the iterations directory that are not directories
// named by a decimal number are ignored.
func (d *SolutionDirectories) LocalIterations(dir string) ([]int, error) {
	entries, err := d.fs.ReadDir(d.IterationsDir(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list iterations of %s: %w", dir, err)
	}

	indices := make([]int, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		idx, err := strconv.ParseUint(entry.Name(), 10, 31)
		if err != nil {
			continue
		}
		indices = append(indices, int(idx))
	}
	slices.Sort(indices)

	return indices, nil
}

// RemoveIteration deletes the backup of iteration idx.
func (d *SolutionDirectories) RemoveIteration(dir string, idx int) error {
	if err := util.RemoveAll(d.fs, d.IterationDir(dir, idx)); err != nil {
		return fmt.Errorf("remove iteration %d of %s: %w", idx, dir, err)
	}
	return nil
}

// CleanUpIterations removes the iterations directory of dir if it is empty.
// A missing or non-empty directory is not an error.
func (d *SolutionDirectories) CleanUpIterations(dir string) error {
	iterationsDir := d.IterationsDir(dir)

	entries, err := d.fs.ReadDir(iterationsDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("list %s: %w", iterationsDir, err)
	}
	if len(entries) > 0 {
		return nil
	}

	err = d.fs.Remove(iterationsDir)
	if err == nil || errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST) {
		return nil
	}
	return fmt.Errorf("remove %s: %w", iterationsDir, err)
}

// SafePathSegments splits a remote relative file path on "/" and rejects
// paths that are absolute or climb out of their directory.
func SafePathSegments(file string) ([]string, error) {
	if file == "" || path.IsAbs(file) || strings.HasPrefix(file, `\`) || hasDriveLetter(file) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafePath, file)
	}

	var segments []string
	for _, segment := range strings.Split(file, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			return nil, fmt.Errorf("%w: %q", ErrUnsafePath, file)
		}
		segments = append(segments, segment)
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsafePath, file)
	}
	return segments, nil
}

func hasDriveLetter(p string) bool {
	return len(p) >= 2 && p[1] == ':' &&
		(('a' <= p[0] && p[0] <= 'z') || ('A' <= p[0] && p[0] <= 'Z'))
}
