package fsx

import (
	"fmt"
	"io/fs"

	"github.com/sagikazarmark/probes/pkg/iox"
)

// ReadFileLines reads the non-empty, non-comment lines of a file in [fs.FS].
func ReadFileLines(fsys fs.FS, name string) ([]string, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return iox.ReadLines(file)
}
