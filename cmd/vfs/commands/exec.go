package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/client"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/server"
	nsprovider "github.com/GriffinCanCode/AgentOS/vfs/internal/providers/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/service"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/id"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/types"
)

// ErrToolFailed is returned after printing a result with success=false.
var ErrToolFailed = errors.New("tool failed")

func newExecCmd(flags *globalFlags) *cobra.Command {
	var rawParams, remote string

	cmd := &cobra.Command{
		Use:   "exec <tool> [key=value...]",
		Short: "Run one namespace tool against the persisted state",
		Long: `Run a single tool and print its JSON result. The tool may be given with or
without the "namespace." prefix. Parameters come from key=value arguments,
from --params as a JSON object, or both (arguments win).

Examples:
  vfs exec ls
  vfs exec mkdir path=/tmp/work
  vfs exec write path=notes.txt content="hello world"
  vfs exec rm path=/tmp/work recursive=true
  vfs exec find --params '{"path":"/","pattern":"*.txt"}'
  vfs exec ls path=/ --server http://localhost:8000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams, args[1:])
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

			toolID := args[0]
			if !strings.Contains(toolID, ".") {
				toolID = nsprovider.ServiceID + "." + toolID
			}
			requestID := id.NewRequestID().String()

			var result *types.Result
			if remote != "" {
				c := client.New(remote, client.DefaultConfig(), logger.Logger)
				result, err = c.Execute(cmd.Context(), toolID, params, requestID)
			} else {
				result, err = executeLocal(cmd.Context(), cfg, logger.Logger, toolID, params, requestID)
			}
			if err != nil {
				return err
			}

			out, err := sonic.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if !result.Success {
				return ErrToolFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rawParams, "params", "", "tool parameters as a JSON object")
	cmd.Flags().StringVar(&remote, "server", "", "run against a server at this URL instead of the local store")
	return cmd
}

func executeLocal(ctx context.Context, cfg *config.Config, logger *zap.Logger, toolID string, params map[string]interface{}, requestID string) (*types.Result, error) {
	n, err := server.OpenNamespace(cfg, logger, nil)
	if err != nil {
		return nil, err
	}
	defer n.Close()

	registry := service.NewRegistry()
	if err := registry.Register(n.Provider); err != nil {
		return nil, err
	}
	return registry.Execute(ctx, toolID, params, &types.Context{RequestID: requestID})
}

// parseParams merges a JSON object with key=value pairs. Values from pairs
// stay strings; the provider accepts "true"/"false" for boolean parameters.
func parseParams(raw string, pairs []string) (map[string]interface{}, error) {
	params := map[string]interface{}{}
	if raw != "" {
		if err := sonic.UnmarshalString(raw, &params); err != nil {
			return nil, fmt.Errorf("invalid --params: %w", err)
		}
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: want key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}
