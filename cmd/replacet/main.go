package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"github.com/wvell/replacet"
	"github.com/wvell/replacet/syntax"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	fs      afero.Fs
	cfg     replacet.Config
	logger  *slog.Logger
	verbose bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:   "replacet",
		Short: "Inline react-i18next translations at build time",
		Long: `replacet replaces the t calls and Trans components of react-i18next with the
values from the JSON namespace files, so the translations ship as plain code.

Namespace files are read from <root>/<base-dir>/<namespace>.json, or from
<root>/<base-dir>/<locale>/<namespace>.json when a locale is set.

Configuration is read from replacet.toml, then REPLACET_ROOT, REPLACET_BASE_DIR and
REPLACET_LOCALE (a .env file is loaded when present), then the flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", defaultConfigFile, "The TOML configuration file.")
	flags.String("root", "", "The directory base-dir is relative to. Defaults to the working directory.")
	flags.String("base-dir", "", "The directory that contains the namespace files.")
	flags.String("locale", "", "Read namespace files from the locale sub directory of base-dir, e.g. en or en-US.")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log namespace loads.")

	root.AddCommand(a.transformCmd(), a.checkCmd(), a.keysCmd())

	return root
}

func (a *app) transformCmd() *cobra.Command {
	var write, strict bool

	cmd := &cobra.Command{
		Use:   "transform [files...]",
		Short: "Inline the translations of the given modules",
		Long: `transform prints every module with its translations inlined, or rewrites the files
in place with --write. Lookups that fail are logged and leave the call untouched, use
--strict to fail on the first one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.transformAll(cmd, args, strict)
			if err != nil {
				return err
			}

			for _, res := range results {
				if write {
					if err := afero.WriteFile(a.fs, res.file.Name, []byte(res.file.String()), 0o644); err != nil {
						return fmt.Errorf("writing %s: %w", res.file.Name, err)
					}
					continue
				}

				if _, err := res.file.WriteTo(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the files in place instead of printing them.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first lookup that can not be inlined.")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Report the translations that can not be inlined",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.transformAll(cmd, args, false)
			if err != nil {
				return err
			}

			count := 0
			for _, res := range results {
				for _, d := range res.diagnostics {
					fmt.Fprintln(cmd.OutOrStdout(), d.Error())
					count++
				}
			}

			if count > 0 {
				return fmt.Errorf("%d translations can not be inlined", count)
			}

			return nil
		},
	}
}

func (a *app) keysCmd() *cobra.Command {
	var missing, unused bool

	cmd := &cobra.Command{
		Use:   "keys [dir]",
		Short: "List the translation keys used in a source tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			keys, err := replacet.KeysFromSourceCode(a.fs, dir)
			if err != nil {
				return err
			}

			if missing || unused {
				if err := a.loadConfig(cmd); err != nil {
					return err
				}
			}

			switch {
			case missing:
				keys = a.missingKeys(keys)
			case unused:
				if keys, err = a.unusedKeys(keys); err != nil {
					return err
				}
			}

			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&missing, "missing", false, "Only list the keys that are not present in the namespace files.")
	cmd.Flags().BoolVar(&unused, "unused", false, "List the keys of the namespace files that are not used in the source tree instead.")
	cmd.MarkFlagsMutuallyExclusive("missing", "unused")

	return cmd
}

// missingKeys returns the keys that do not resolve against the namespace files.
func (a *app) missingKeys(keys []string) []string {
	cache := replacet.NewCache(a.fs, a.cfg.ResourceDir(), a.logger)

	var missing []string
	for _, key := range keys {
		namespace, path := replacet.SplitKey(key, nil)

		if err := cache.AddFile(namespace); err != nil {
			a.logger.Debug("namespace not loaded", "namespace", namespace, "err", err)
			missing = append(missing, key)
			continue
		}

		if _, err := cache.Get(namespace, path); err != nil {
			missing = append(missing, key)
		}
	}

	return missing
}

// unusedKeys returns the keys of the namespace files that do not appear in used.
func (a *app) unusedKeys(used []string) ([]string, error) {
	dir := a.cfg.ResourceDir()

	namespaces, err := replacet.NamespacesFromDir(a.fs, dir)
	if err != nil {
		return nil, err
	}

	names := maps.Keys(namespaces)
	slices.Sort(names)

	cache := replacet.NewCache(a.fs, dir, a.logger)

	var unused []string
	for _, namespace := range names {
		if err := cache.AddFile(namespace); err != nil {
			return nil, err
		}

		keys, err := cache.Keys(namespace)
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			key = namespace + replacet.NamespaceSeparator + key
			if !slices.Contains(used, key) {
				unused = append(unused, key)
			}
		}
	}

	return unused, nil
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.fs, cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

type result struct {
	file        *syntax.File
	diagnostics []replacet.Diagnostic
}

// transformAll transforms the files concurrently. It stops starting new files once one
// fails and returns the results in the order of names.
func (a *app) transformAll(cmd *cobra.Command, names []string, strict bool) ([]result, error) {
	if err := a.loadConfig(cmd); err != nil {
		return nil, err
	}

	results := make([]result, len(names))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range names {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			res, err := a.transformFile(name, strict)
			if err != nil {
				return err
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *app) transformFile(name string, strict bool) (res result, err error) {
	src, err := afero.ReadFile(a.fs, name)
	if err != nil {
		return res, err
	}

	f, err := syntax.Parse(name, src)
	if err != nil {
		return res, err
	}

	collector := replacet.NewCollector(a.logger)
	var sink replacet.Sink = collector
	if strict {
		sink = replacet.PanicSink{}

		defer func() {
			r := recover()
			if r == nil {
				return
			}

			d, ok := r.(replacet.Diagnostic)
			if !ok {
				panic(r)
			}
			err = d
		}()
	}

	tr, err := replacet.NewTransformer(a.cfg,
		replacet.WithFs(a.fs),
		replacet.WithLogger(a.logger),
		replacet.WithSink(sink),
	)
	if err != nil {
		return res, err
	}

	if err := tr.Transform(f); err != nil {
		return res, err
	}

	return result{file: f, diagnostics: collector.Diagnostics}, nil
}
