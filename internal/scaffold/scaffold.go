// Package scaffold materializes a task-tracking workspace: a fixed set of
// directories plus four rendered files, all derived from one Config value and
// the date of invocation.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/taskforge/internal/config"
)

// Result lists what a Materialize call wrote, relative to the base path.
type Result struct {
	BasePath string
	Dirs     []string
	Files    []string
}

// taskDirs are the workspace directories, in creation order. Parents precede
// children so MkdirAll never has to create more than one level implicitly.
var taskDirs = []string{
	"tasks",
	filepath.Join("tasks", "backlog"),
	filepath.Join("tasks", "active"),
	filepath.Join("tasks", "completed"),
}

// Materialize creates the workspace directories and renders the configuration
// file, task index, example task, and README under basePath. The date is
// taken from now exactly once so all four outputs agree even across a
// midnight rollover. The operation is not transactional: on error, whatever
// was already written stays in place.
func Materialize(cfg config.Config, basePath string, now time.Time) (*Result, error) {
	date := now.Format("2006-01-02")
	res := &Result{BasePath: basePath}

	for _, dir := range taskDirs {
		if err := os.MkdirAll(filepath.Join(basePath, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create %s directory: %w", dir, err)
		}
		res.Dirs = append(res.Dirs, dir)
	}

	configYAML, err := renderConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}

	files := []struct {
		rel     string
		content string
	}{
		{config.FileName, configYAML},
		{filepath.Join("tasks", "INDEX.md"), renderIndex(cfg, date)},
		{filepath.Join("tasks", "completed", "TASK-000-project-setup.md"), renderExampleTask(cfg, date)},
		{filepath.Join("tasks", "README.md"), renderReadme(cfg)},
	}

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(basePath, f.rel), []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.rel, err)
		}
		res.Files = append(res.Files, f.rel)
	}

	return res, nil
}
