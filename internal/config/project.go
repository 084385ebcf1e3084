package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/fieldcarbon/internal/logging"
)

// ProjectDirName is the project-local settings directory.
const ProjectDirName = ".fieldcarbon"

// ResolveProjectDir finds the project-local .fieldcarbon directory. It
// checks, in order:
//  1. flagValue (--project-dir)
//  2. FIELDCARBON_PROJECT_DIR
//  3. the nearest ancestor of startDir containing a .fieldcarbon directory
//
// The returned path is absolute, or empty when no project is found. The
// directory is never created here.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir := os.Getenv("FIELDCARBON_PROJECT_DIR"); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}
	if startDir == "" {
		return ""
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	home, _ := GetConfigDir()
	for {
		candidate := filepath.Join(dir, ProjectDirName)
		// The global config directory is not a project.
		if candidate != home {
			if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithProjectDir returns base with projectDir/config.yaml shallow-merged
// on top, then environment overrides reapplied. A missing or broken overlay
// leaves base as is; the latter is logged.
func NewWithProjectDir(ctx context.Context, base *Config, projectDir string) *Config {
	if projectDir == "" {
		return base
	}
	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return base
	}

	merged := *base
	if err := ShallowMergeYAML(&merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global settings")
		return base
	}
	merged.ApplyEnv(os.LookupEnv)
	return &merged
}

// toAbsProjectDir makes dir absolute and appends .fieldcarbon unless it
// already ends with it.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}
	if filepath.Base(abs) == ProjectDirName {
		return abs
	}
	return filepath.Join(abs, ProjectDirName)
}
