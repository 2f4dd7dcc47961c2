package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const debounceDuration = 500 * time.Millisecond

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Builds the site and rebuilds it when inputs change",
	Long: `The watch command performs an initial build, then watches the content,
layouts and static directories plus the config file, and runs the build
again shortly after the last change. Stop it with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Performing initial build...")
		if err := runBuildProcess(cmd); err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		for _, root := range []string{appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir} {
			if root == "" || !isDir(root) {
				logger.Info("Directory not found, not watching", "dir", root)
				continue
			}
			logger.Info("Watching directory tree", "dir", root)
			err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					logger.Warn("Error walking directory", "path", path, "error", err)
					return nil
				}
				if d.IsDir() {
					if err := watcher.Add(path); err != nil {
						logger.Warn("Failed to watch directory", "path", path, "error", err)
					}
				}
				return nil
			})
			if err != nil {
				logger.Warn("Error during initial directory walk", "dir", root, "error", err)
			}
		}
		configFile := cfgFile
		if configFile == "" {
			configFile = "config.yaml"
		}
		if _, err := os.Stat(configFile); err == nil {
			if err := watcher.Add(configFile); err != nil {
				logger.Warn("Failed to watch config file", "file", configFile, "error", err)
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		var mu sync.Mutex
		return watchLoop(ctx, watcher, func() {
			mu.Lock()
			defer mu.Unlock()
			logger.Info("Rebuilding site due to changes...")
			if err := initializeConfig(cmd); err != nil {
				logger.Error("Reloading config failed", "error", err)
				return
			}
			if err := runBuildProcess(cmd); err != nil {
				logger.Error("Rebuild failed", "error", err)
				return
			}
			logger.Info("Site rebuilt successfully")
		})
	},
}

// watchLoop debounces watcher events into rebuild calls until ctx ends.
// Directories created while watching are added to the watcher. On return no
// rebuild is pending or running.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, rebuild func()) error {
	var (
		buildTimer *time.Timer
		inFlight   sync.WaitGroup
	)
	cancelPending := func() {
		if buildTimer != nil && buildTimer.Stop() {
			inFlight.Done()
		}
	}
	defer func() {
		cancelPending()
		inFlight.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Change detected", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				logger.Info("New directory created, adding to watcher", "dir", event.Name)
				if err := watcher.Add(event.Name); err != nil {
					logger.Warn("Error adding new directory to watcher", "dir", event.Name, "error", err)
				}
			}

			cancelPending()
			inFlight.Add(1)
			buildTimer = time.AfterFunc(debounceDuration, func() {
				defer inFlight.Done()
				rebuild()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		}
	}
}

// Helper function to check if a path is a directory
func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
