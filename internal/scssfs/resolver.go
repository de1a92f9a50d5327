// Package scssfs is the filesystem collaborator for "@import": given the
// file an import appears in and the specifier it names, it tries the five
// conventional candidate names in order and returns the first one that
// exists, reading it fully before closing the handle (file reads are
// read-fully-then-close, never streamed, since a stylesheet is evaluated
// as a whole unit).
package scssfs

import (
	"os"
	"path/filepath"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssast"
)

// Resolver implements internal/scssparser.Importer against the real
// filesystem, rooted at whatever directory each importing file lives in.
type Resolver struct {
	// RootDir, when set, replaces the directory of an importing file whose
	// pretty path has no directory part (e.g. "inline.scss" given to
	// pkg/scss.CompileString).
	RootDir string
}

// candidates returns the five paths the import resolution order tries,
// in priority order, for a specifier resolved against dir.
func candidates(dir, spec string) []string {
	base := filepath.Join(dir, spec)
	dirName, fileName := filepath.Split(base)
	partial := filepath.Join(dirName, "_"+fileName)
	return []string{
		base,
		base + ".scss",
		filepath.Join(base, "index.scss"),
		partial + ".scss",
		filepath.Join(partial, "index.scss"),
	}
}

func (r *Resolver) Resolve(fromPrettyPath, spec string) (*logger.Source, error) {
	dir := filepath.Dir(fromPrettyPath)
	if r.RootDir != "" && dir == "." {
		dir = r.RootDir
	}
	for _, candidate := range candidates(dir, spec) {
		contents, err := os.ReadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, scssast.NewError(scssast.IoError, logger.Range{}, err.Error())
		}
		return &logger.Source{PrettyPath: candidate, Contents: string(contents)}, nil
	}
	return nil, scssast.NewError(scssast.IoError, logger.Range{}, "could not resolve import \""+spec+"\" from \""+fromPrettyPath+"\"")
}

// ReadEntry reads the initial stylesheet given to the compiler, the same
// read-fully-then-close way Resolve reads an imported one.
func ReadEntry(path string) (*logger.Source, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, scssast.NewError(scssast.IoError, logger.Range{}, err.Error())
	}
	return &logger.Source{PrettyPath: path, Contents: string(contents)}, nil
}
