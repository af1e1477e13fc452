package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hengadev/bytex"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfgFile string
	verbose bool

	cfg    bytex.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bytex",
		Short: "Convert bytes, hex text and documents",
		Long: `bytex renders stdin as hex text and back, computes digests, and
converts documents between JSON, YAML, TOML and CBOR.

Defaults come from BYTEX_* environment variables (or a .env file in the
working directory) unless --config names a YAML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file (default: environment)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newHexCmd(a),
		newHashCmd(a),
		newConvertCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = bytex.LoadConfigFile(a.cfgFile)
	} else {
		a.cfg, err = bytex.LoadConfigFromEnvironment()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.verbose {
		a.cfg.LogLevel = "debug"
	}

	a.logger = a.cfg.Logger(cmd.ErrOrStderr(), "cli")
	a.logger.Debug("configuration loaded",
		"endian", a.cfg.Endian.String(),
		"hex_mode", a.cfg.HexMode.String(),
		"digest", a.cfg.Digest.String(),
	)
	return nil
}
