package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"zc/pkg/config"
	"zc/pkg/transpiler"
	"zc/pkg/watcher"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	// Everything we do not recognize is forwarded to the C compiler;
	// other .z sources on the command line are assumed to have been
	// transpiled already and are renamed to their .c counterparts.
	watch := false
	var ccArgs []string
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-watch":
			watch = true
		case strings.HasSuffix(arg, ".z"):
			if arg == cfg.Entry {
				continue
			}
			ccArgs = append(ccArgs, strings.TrimSuffix(arg, ".z")+".c")
		default:
			ccArgs = append(ccArgs, arg)
		}
	}

	if err := build(cfg, ccArgs); err != nil {
		if !watch {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		slog.Error("build failed", "err", err)
	}
	if !watch {
		return
	}

	w, err := watcher.New(cfg.Watch.Debounce, cfg.Watch.Exclude, func(paths []string) {
		slog.Info("rebuilding", "changed", paths)
		if err := build(cfg, ccArgs); err != nil {
			slog.Error("build failed", "err", err)
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "watch error:", err)
		os.Exit(1)
	}
	defer w.Close()
	if err := w.Watch("."); err != nil {
		fmt.Fprintln(os.Stderr, "watch error:", err)
		os.Exit(1)
	}
	slog.Info("watching for changes", "entry", cfg.Entry)
	select {}
}

// build transpiles the entry file, writes the generated C next to it, and
// hands the result to the configured C compiler.
func build(cfg *config.Config, ccArgs []string) error {
	src, err := os.ReadFile(cfg.Entry)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cfg.Entry, err)
	}

	code, err := transpiler.Compile(string(src))
	if err != nil {
		return err
	}
	if cfg.Debug {
		fmt.Println(code)
	}

	cFile := strings.TrimSuffix(cfg.Entry, ".z") + ".c"
	if err := os.WriteFile(cFile, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cFile, err)
	}

	args := append(append([]string{}, ccArgs...), cFile)
	out, err := exec.Command(cfg.Compiler, args...).CombinedOutput()
	if len(out) > 0 {
		fmt.Printf("%s:\n%s", cfg.Compiler, out)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", cfg.Compiler, err)
	}
	return nil
}
