package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved absolute directories for one process. Resolved
// once at startup; nothing else in the process mutates global path state.
type Paths struct {
	ExecutableDir string
	RawDir        string
	CleanedDir    string
	CSVDir        string
	ReturnsDir    string
	LogsDir       string
}

// ResolvePaths resolves the configured directories to absolute paths.
// Relative paths are taken against the executable directory so the tool
// behaves the same regardless of the operator's working directory.
func ResolvePaths(cfg *Config) (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}
	exeDir := filepath.Dir(exe)

	resolve := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(exeDir, dir)
	}

	return &Paths{
		ExecutableDir: exeDir,
		RawDir:        resolve(cfg.Paths.RawDir),
		CleanedDir:    resolve(cfg.Paths.CleanedDir),
		CSVDir:        resolve(cfg.Paths.CSVDir),
		ReturnsDir:    resolve(cfg.Paths.ReturnsDir),
		LogsDir:       resolve(cfg.Paths.LogsDir),
	}, nil
}

// GetLogPath returns the path of a log file inside the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureLogsDir creates the logs directory if missing. Output directories
// are deliberately not created here: a missing output directory is a
// configuration error the run must report, not silently repair.
func (p *Paths) EnsureLogsDir() error {
	if err := os.MkdirAll(p.LogsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}
