package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultProfile   = "local"
	defaultConfigDir = "configs"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "scopebench",
		Short: "Benchmark scope-guard error reporting",
		Long: `scopebench sums a dataset four ways, each reporting an out-of-range read
differently: a comma-ok result, an error value, a recovered panic, and a
panic noted by an on-failure scope guard. A clean run stays in range; a
fault run reads past the end.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", profileFromEnv(), "config profile (env APP_PROFILE)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", defaultConfigDir, "directory holding base.yaml and {profile}.yaml")

	root.AddCommand(
		newRunCmd(opts),
		newInteractiveCmd(opts),
		newServeCmd(opts),
	)
	return root
}

func profileFromEnv() string {
	if p := os.Getenv("APP_PROFILE"); p != "" {
		return p
	}
	return defaultProfile
}
