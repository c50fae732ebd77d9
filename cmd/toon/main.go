package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logger = logrus.New()
	cfg    = viper.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "toon",
		Short: "Encode and decode Token-Oriented Object Notation documents",
	}
	root.PersistentFlags().String("config", "", "config file (default $HOME/.toon.yaml)")
	root.PersistentFlags().Bool("no-color", false, "disable colorized diagnostics")
	cfg.BindPFlag("no-color", root.PersistentFlags().Lookup("no-color"))

	cobra.OnInitialize(func() {
		if path, _ := root.PersistentFlags().GetString("config"); path != "" {
			cfg.SetConfigFile(path)
		} else {
			cfg.SetConfigName(".toon")
			cfg.AddConfigPath("$HOME")
		}
		cfg.SetEnvPrefix("TOON")
		cfg.AutomaticEnv()
		if err := cfg.ReadInConfig(); err != nil {
			logger.Debugf("no config file loaded: %v", err)
		}
	})

	root.AddCommand(newEncodeCmd(), newDecodeCmd())
	return root
}
