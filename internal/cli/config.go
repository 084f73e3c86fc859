package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ledgerctl/internal/wire"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change preferences",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configTierCmd())
	cmd.AddCommand(configDevModeCmd())
	cmd.AddCommand(configSetRootCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wire.Store()

			fmt.Printf("Config file: %s\n", store.Path())
			fmt.Printf("Active project: %s\n", store.ActiveProjectName())
			fmt.Printf("Artifacts root: %s\n", store.ArtifactsRoot())
			fmt.Printf("Tier: %s\n", store.Tier())
			fmt.Printf("Dev mode: %v\n", store.DevMode())
			return nil
		},
	}
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(wire.Store().Path())
			return nil
		},
	}
}

func configTierCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tier [FREE|PRO|PREMIUM]",
		Short: "Show or set the access tier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wire.Store()

			if len(args) == 0 {
				fmt.Println(store.Tier())
				return nil
			}

			if err := store.SetTier(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Tier: %s\n", store.Tier())
			return nil
		},
	}
}

func configDevModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dev-mode [on|off]",
		Short: "Show or set developer mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wire.Store()

			if len(args) == 0 {
				if store.DevMode() {
					fmt.Println("on")
				} else {
					fmt.Println("off")
				}
				return nil
			}

			switch args[0] {
			case "on":
				store.SetDevMode(true)
			case "off":
				store.SetDevMode(false)
			default:
				return fmt.Errorf("invalid dev-mode value %q (want on or off)", args[0])
			}

			fmt.Printf("✓ Dev mode: %s\n", args[0])
			return nil
		},
	}
}

func configSetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-root [path]",
		Short: "Point the active project at a new root",
		Long: `Reinterpret the given path as the active project's new project root
and re-derive its artifacts root. Without an active project the legacy
top-level artifacts root is written directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wire.Store()
			store.SetArtifactsRoot(args[0])

			fmt.Printf("✓ Artifacts root: %s\n", store.ArtifactsRoot())
			return nil
		},
	}
}
