package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// runWatch runs the script once, then re-runs it on every write to the
// file, until interrupted. Grounded on the teacher corpus's use of
// fsnotify for filesystem-change-triggered re-execution.
func runWatch(path string, useColor bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	fmt.Fprintf(os.Stderr, "watching %s for changes (Ctrl+C to exit)\n", path)
	if _, err := runFile(path, useColor); err != nil {
		fmt.Fprintln(os.Stderr, colorize("Error: ", colorRed, useColor)+err.Error())
	}

	target := filepath.Clean(path)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "\n--- re-running %s ---\n", path)
			if _, err := runFile(path, useColor); err != nil {
				fmt.Fprintln(os.Stderr, colorize("Error: ", colorRed, useColor)+err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, colorize("watch error: ", colorRed, useColor)+err.Error())
		}
	}
}
