// Package cmd provides the entrypoint for the qr-link-opener cli.
package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/isometry/qr-link-opener/internal/config"
	"github.com/isometry/qr-link-opener/internal/helpers"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilePath = "config.yaml"

var (
	configFilePath string
	logger         = helpers.NewNoopLogger()
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for the qr-link-opener. Without a subcommand it serves scans.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "qr-link-opener",
		Short:        "Open the destination of QR-code scans in the default browser",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = newLogger(cmd.OutOrStdout())
		},
		RunE: runServe,
	}

	// Configuration loading & defaults
	if err := preloadConfig(os.Args[1:]); err != nil {
		panic(err)
	}

	// Root command flags
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", configFilePath, "path to the configuration file")

	// Dynamic flags
	setupDynamicFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		cmdServe(),
		cmdOpen(),
	)

	return cmd
}

func newLogger(w io.Writer) *slog.Logger {
	return helpers.NewLogger(w, config.Global.Logging.Verbosity, config.Global.Logging.CallerTrace)
}

// preloadConfig reads --config ahead of the real flag parsing, so that the file's values become the
// defaults of the flags bound to them.
func preloadConfig(args []string) error {
	fs := pflag.NewFlagSet("preload", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, "")
	_ = fs.Parse(args)

	return errors.Join(
		config.LoadFromFile(configFilePath),
		config.SetDefaults(),
	)
}

func setupDynamicFlags(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
	bindEnvMap(cmd, svcEnvMapString)
	bindEnvMap(cmd, svcEnvMapDuration)
}
