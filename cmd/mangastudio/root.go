package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mangastudio/internal/common/fsutil"
	"mangastudio/internal/config"
)

// rootOptions is shared by every subcommand. cfg is resolved in
// PersistentPreRunE: environment defaults, then the settings file.
type rootOptions struct {
	configPath  string
	logLevel    string
	projectRoot string
	cfg         config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "mangastudio",
		Short: "Validate manga studio model assets",
		Long: "mangastudio checks that the model assets declared in config/models.json exist on disk\n" +
			"with the layout their family expects, estimates shots for a synopsis and serves the\n" +
			"validation report over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Defaults(os.Getenv)
			if opts.configPath != "" {
				fileCfg, err := config.Load(opts.configPath)
				if err != nil {
					return &exitError{code: exitManifest, err: err}
				}
				cfg = config.Merge(cfg, fileCfg)
			}
			if opts.logLevel != "" {
				cfg.LogLevel = strings.ToLower(opts.logLevel)
			}
			if opts.projectRoot != "" {
				cfg.ProjectRoot = opts.projectRoot
			}
			if cfg.ProjectRoot != "" {
				root, err := fsutil.ExpandHome(cfg.ProjectRoot)
				if err != nil {
					return &exitError{code: exitManifest, err: err}
				}
				if !fsutil.DirExists(root) {
					return &exitError{code: exitManifest, err: fmt.Errorf("project root is not a directory: %s", root)}
				}
				cfg.ProjectRoot = root
			}
			opts.cfg = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Settings file (.yaml, .json or .toml)")
	cmd.PersistentFlags().StringVar(&opts.projectRoot, "project-root", "", "Project root holding config/models.json (default: working directory)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from MANGA_LOG_LEVEL or info)")

	cmd.AddCommand(newModelsCmd(opts))
	cmd.AddCommand(newEstimateCmd())
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newCompletionCmd())
	return cmd
}

// newLogger builds the process logger. Console output is for humans at a
// terminal; serve logs JSON lines.
func newLogger(w io.Writer, level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
