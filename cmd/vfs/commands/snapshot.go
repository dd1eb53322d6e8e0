package commands

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/client"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/server"
	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/persistence"
)

func newSnapshotCmd(flags *globalFlags) *cobra.Command {
	var format, remote string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the persisted namespace",
		Long: `Restore the namespace from the configured store and print it, uncompressed,
in the persisted wire shape. With --server the live tree of a running server
is printed instead.

Examples:
  vfs snapshot
  vfs snapshot --format yaml --store badger --store-path /var/lib/vfs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := persistence.CodecByName(format)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if remote != "" {
				data, err := client.New(remote, client.DefaultConfig(), logger.Logger).Snapshot(cmd.Context(), codec.Name())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			n, err := server.OpenNamespace(cfg, logger.Logger, nil)
			if err != nil {
				return err
			}
			defer n.Close()

			return n.Provider.Engine(func(e *ns.Engine) error {
				data, err := persistence.Export(e.State(), codec)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "json", "output format (json|yaml|toml)")
	cmd.Flags().StringVar(&remote, "server", "", "fetch the live tree from a server at this URL")
	return cmd
}
