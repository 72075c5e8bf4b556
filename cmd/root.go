package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YelzhanWeb/aquave/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aquave",
	Short: "Mood-driven cocktail storefront",
	Long: `aquave serves the AQUAVÉ storefront: visitors pick a mood, browse matching
drinks, watch their drink being prepared, tune the ambiance and check out.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: defaults and AQUAVE_* env only)")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("catalog-source", "", "catalog source: builtin, file or postgres")
	flags.String("catalog-path", "", "YAML catalog for the file source")
	flags.String("events", "", "event driver: log, rabbitmq, kafka or none")

	rootCmd.AddCommand(
		newStorefrontCmd(),
		newBrowseCmd(),
		newSubscriberCmd(),
		newSeedCmd(),
	)
}

// loadConfig layers the shared flags and any command flags in extra over the config file
func loadConfig(cmd *cobra.Command, extra ...config.Option) (*config.Config, error) {
	flags := cmd.Flags()
	opts := []config.Option{
		config.BindFlag("logging.level", flags.Lookup("log-level")),
		config.BindFlag("catalog.source", flags.Lookup("catalog-source")),
		config.BindFlag("catalog.path", flags.Lookup("catalog-path")),
		config.BindFlag("events.driver", flags.Lookup("events")),
	}
	return config.Load(cfgFile, append(opts, extra...)...)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
