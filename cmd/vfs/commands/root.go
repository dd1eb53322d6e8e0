// Package commands implements the vfs command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/logging"
)

// Version information injected at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// flags that override the environment when set.
type globalFlags struct {
	store       string
	storePath   string
	stateKey    string
	codec       string
	compression string
	home        string
	patternMode string
	logLevel    string
	dev         bool
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "vfs",
		Short: "AgentOS virtual namespace",
		Long: `vfs hosts an in-memory hierarchical namespace with a working directory,
Unix-style permissions and persistent state.

Every flag can also be set through the environment (VFS_STORE, VFS_STORE_PATH,
VFS_CODEC, LOG_LEVEL, ...). Flags win over the environment.

Use "vfs [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.store, "store", "", "state store: memory, file or badger (env VFS_STORE)")
	pf.StringVar(&flags.storePath, "store-path", "", "directory for the file or badger store (env VFS_STORE_PATH)")
	pf.StringVar(&flags.stateKey, "state-key", "", "key the state blob is saved under (env VFS_STATE_KEY)")
	pf.StringVar(&flags.codec, "codec", "", "state encoding: json, yaml or toml (env VFS_CODEC)")
	pf.StringVar(&flags.compression, "compression", "", "state compression: none, gzip or zstd (env VFS_COMPRESSION)")
	pf.StringVar(&flags.home, "home", "", "directory ~ expands to (env VFS_HOME)")
	pf.StringVar(&flags.patternMode, "pattern-mode", "", "find pattern syntax: lite, regex or doublestar (env VFS_PATTERN_MODE)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	pf.BoolVar(&flags.dev, "dev", false, "development logging (env LOG_DEV)")

	root.AddCommand(
		newServeCmd(flags),
		newExecCmd(flags),
		newSnapshotCmd(flags),
		newVersionCmd(),
	)
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	set := func(name string, dst *string, value string) {
		if cmd.Flags().Changed(name) {
			*dst = value
		}
	}
	set("store", &cfg.Persistence.Store, flags.store)
	set("store-path", &cfg.Persistence.Path, flags.storePath)
	set("state-key", &cfg.Persistence.Key, flags.stateKey)
	set("codec", &cfg.Persistence.Codec, flags.codec)
	set("compression", &cfg.Persistence.Compression, flags.compression)
	set("home", &cfg.Namespace.Home, flags.home)
	set("pattern-mode", &cfg.Namespace.PatternMode, flags.patternMode)
	set("log-level", &cfg.Logging.Level, flags.logLevel)
	if cmd.Flags().Changed("dev") {
		cfg.Logging.Development = flags.dev
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
}
