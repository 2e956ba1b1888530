package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/appengine"
	"github.com/bft-labs/appengine/internal/cliconfig"
	"github.com/bft-labs/appengine/internal/hello"
	"github.com/bft-labs/appengine/pkg/engine"
	"github.com/bft-labs/appengine/pkg/factory"
	"github.com/bft-labs/appengine/pkg/lifecycle"
	"github.com/bft-labs/appengine/pkg/log"
	"github.com/bft-labs/appengine/pkg/trace"
)

const longHelp = `Greet the world through the appengine lifecycle.

Everything after the first non-flag argument, or after --, is handed to the
engine unchanged. Configure via $HOME/.appengine/config.toml, APPENGINE_*
environment variables, or flags; flags win.`

var exampleUsage = strings.TrimSpace(`
  hello
  hello --read-key=false -- --name gopher
  printf 'a\nb\n' | hello --read-input --read-key=false
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	code, err := execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hello:", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// execute runs the root command and returns the engine's exit code.
func execute(argv []string, in io.Reader, out, errOut io.Writer) (int, error) {
	code := engine.ExitSuccess
	root := newRootCmd(in, out, errOut, &code)
	root.SetArgs(argv)
	if err := root.Execute(); err != nil {
		return engine.ExitFailure, err
	}
	return code, nil
}

func newRootCmd(in io.Reader, out, errOut io.Writer, code *int) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "hello [flags] [--] [engine args...]",
		Short:         "Greet the world through the appengine lifecycle",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := resolveConfig(cmd, &cfg, cfgPath)
			if err != nil {
				return err
			}

			logger := log.NewZerologAdapterWithLogger(cliconfig.NewLogger(errOut, cfg.Level()))
			logger.Debug("configuration", log.Any("config", cfg), log.String("file", cfgFile))

			e, err := resolveEngine(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Watch && cfgFile != "" {
				w, err := cliconfig.Watch(ctx, cfgFile, cfg.WatchDebounce, logger, func(fc cliconfig.FileConfig) {
					lvl, err := zerolog.ParseLevel(strings.ToLower(fc.LogLevel))
					if fc.LogLevel == "" || err != nil {
						return
					}
					cliconfig.SetLevel(lvl)
					logger.Info("log level changed", log.String("level", lvl.String()))
				})
				if err != nil {
					logger.Warn("config watch disabled", log.Err(err))
				} else {
					defer w.Close()
				}
			}

			if args == nil {
				args = []string{}
			}
			*code, err = e.RunWithStreams(args, in, out, errOut)
			return err
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	// Stop at the first engine argument so its flags reach the engine.
	root.Flags().SetInterspersed(false)

	bindFlags(root.Flags(), &cfg, &cfgPath)

	return root
}

func bindFlags(fs *pflag.FlagSet, cfg *cliconfig.Config, cfgPath *string) {
	fs.StringVar(cfgPath, "config", "", "path to config file (default: $HOME/.appengine/config.toml)")
	fs.BoolVar(&cfg.ReadInput, "read-input", cfg.ReadInput, "feed standard input to the engine line by line")
	fs.BoolVar(&cfg.ReadKey, "read-key", cfg.ReadKey, "wait for a keypress before exiting")
	fs.StringVar(&cfg.Usage, "usage", cfg.Usage, "override the usage message printed on invalid arguments")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostics level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every hook call with its duration")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the log level when the config file changes")
	fs.DurationVar(&cfg.WatchDebounce, "watch-debounce", cfg.WatchDebounce, "delay before a changed config file is reloaded")
}

// resolveConfig layers the config file and environment under the flags the
// user set. It returns the config file in effect, or "" if there is none.
func resolveConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) (string, error) {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return "", fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return "", err
		}
	} else {
		cfgFile = ""
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return cfgFile, nil
}

// resolveEngine obtains the hello engine through the selector and applies
// the per-invocation settings to it.
//
// The engine is a process-wide singleton: the logger, phase observer and
// trace interceptor are fixed by the first call in a process. Streams are
// passed to every run and the flags below are reset on every call.
func resolveEngine(cfg cliconfig.Config, logger *log.ZerologAdapter) (*hello.Engine, error) {
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithEventEmitter(lifecycle.EventEmitterFunc(func(prev, cur lifecycle.Phase, reason string) {
			logger.Debug("phase", log.String("from", prev.String()), log.String("to", cur.String()), log.String("reason", reason))
		})),
	}
	if cfg.Trace {
		opts = append(opts, engine.WithInterceptors(trace.New(logger).Interceptor()))
	}

	err := appengine.Register(func() *hello.Engine { return hello.New(opts...) })
	if err != nil && !errors.Is(err, factory.ErrAlreadyRegistered) {
		return nil, err
	}

	e, err := appengine.For[*hello.Engine](appengine.DefaultConsole)
	if err != nil {
		return nil, err
	}
	h, ok := e.(*hello.Engine)
	if !ok || h == nil {
		return nil, fmt.Errorf("no engine for %s", appengine.DefaultConsole)
	}

	h.SetShouldReadInput(cfg.ReadInput)
	h.SetShouldReadKey(cfg.ReadKey)
	usage := cfg.Usage
	if usage == "" {
		usage = hello.Usage()
	}
	h.SetUsageMessage(usage)
	return h, nil
}
