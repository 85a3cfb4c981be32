package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-render a scene whenever it changes",
		Long: `Render a scene, then watch the scene file and skeleton.yaml in the same
directory and render again after every change. Errors are reported and the
watch continues. Press Ctrl+C to stop.

Accepts the same flags as render.`,
		Usage: "skeleton watch <scene.yaml> [-o out.png] [-t 300ms] [--dark]",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: skeleton watch <scene.yaml> [-o out.png] [-t 300ms] [--dark]", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch directories rather than files; editors often replace the file
	// on save, which drops a watch on the file itself.
	watched := watchedFiles(opts)
	dirs := make(map[string]bool)
	for _, f := range watched {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	renderOnce(opts)
	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)...\n", opts.scene)

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr)
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(ev, watched) {
				continue
			}
			timer = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.ReportError("watch", errors.KindHost, err)
		case <-timer:
			timer = nil
			renderOnce(opts)
		}
	}
}

// watchedFiles returns the absolute paths whose changes trigger a render.
func watchedFiles(opts renderOptions) []string {
	files := []string{opts.scene}
	if opts.config != "" {
		files = append(files, opts.config)
	} else {
		files = append(files, filepath.Join(filepath.Dir(opts.scene), skeleton.ConfigFileName))
	}
	for i, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			files[i] = abs
		}
	}
	return files
}

func isRelevant(ev fsnotify.Event, watched []string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	for _, f := range watched {
		if f == name {
			return true
		}
	}
	return false
}

// renderOnce renders and reports failures instead of returning them, so a
// broken intermediate save does not end the watch.
func renderOnce(opts renderOptions) {
	defer errors.RecoverWithCallback("watch.render", func(any) {
		fmt.Fprintln(os.Stderr, "Render aborted; waiting for the next change.")
	})
	if err := renderScene(opts); err != nil {
		errors.ReportError("watch.render", errors.KindRender, err)
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] Wrote %s\n", time.Now().Format("15:04:05"), opts.output)
}
