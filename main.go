// Package main implements the turbo CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NicholasLYang/turbo/internal/cache"
	"github.com/NicholasLYang/turbo/internal/except"
	"github.com/NicholasLYang/turbo/internal/turbopath"
	"github.com/NicholasLYang/turbo/internal/workspace"
)

// init initializes the default logger.
func init() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile("turbo/log")
		if err != nil {
			errs = append(errs, err)
			fp = "turbo.log"
		}
	}

	var handler slog.Handler
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		handler = slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		errs = append(errs, err)
		var writer io.Writer = os.Stderr
		if term.IsTerminal(int(os.Stderr.Fd())) {
			handler = slog.NewTextHandler(writer, &slog.HandlerOptions{Level: slog.LevelWarn})
		} else {
			handler = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
		}
	}

	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.ErrAttr(errors.Join(errs...)))
	}
}

func main() {
	var rootFlag string

	projectRoot := func() (turbopath.ProjectRoot, error) {
		abs, err := filepath.Abs(rootFlag)
		if err != nil {
			return turbopath.ProjectRoot{}, err
		}
		root, err := turbopath.ParseAbsoluteSystemPath(abs)
		if err != nil {
			return turbopath.ProjectRoot{}, err
		}
		return turbopath.NewProjectRoot(root), nil
	}

	workspacesCmd := &cobra.Command{
		Use:   "workspaces",
		Short: "List workspace member directories",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := projectRoot()
			if err != nil {
				return err
			}
			pm, err := workspace.Detect(root)
			if err != nil {
				return err
			}
			globs, err := workspace.LoadGlobs(root, pm)
			if err != nil {
				return err
			}
			matcher, err := workspace.NewMatcher(globs)
			if err != nil {
				return err
			}
			members, err := workspace.FindMembers(root, matcher)
			if err != nil {
				return err
			}
			for _, member := range members {
				fmt.Println(member.String()) //nolint:forbidigo
			}
			return nil
		},
	}

	hashCmd := &cobra.Command{
		Use:   "hash TASK [PATH...]",
		Short: "Derive the cache key for a task and its input files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root, err := projectRoot()
			if err != nil {
				return err
			}
			var inputs []turbopath.AnchoredPath
			for _, arg := range args[1:] {
				fp, err := filepath.Abs(arg)
				if err != nil {
					return err
				}
				abs, err := turbopath.ParseAbsoluteSystemPath(fp)
				if err != nil {
					return err
				}
				input, err := root.Relativize(abs)
				if err != nil {
					return err
				}
				inputs = append(inputs, input)
			}
			fmt.Println(cache.Key(args[0], inputs)) //nolint:forbidigo
			return nil
		},
	}

	resolveCmd := &cobra.Command{
		Use:   "resolve PATH",
		Short: "Resolve a project-relative path against the project root",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root, err := projectRoot()
			if err != nil {
				return err
			}
			p, err := turbopath.ParseAnchoredPath(args[0])
			if err != nil {
				return err
			}
			fmt.Println(root.Resolve(p).String()) //nolint:forbidigo
			return nil
		},
	}

	rootCmd := &cobra.Command{Use: "turbo", SilenceUsage: true}
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", ".", "project root directory")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.AddCommand(workspacesCmd, hashCmd, resolveCmd)

	_ = rootCmd.Execute()
}
