// Copyright Fouinot Research, 2026. All rights reserved.

// Package main is the entry point for the idmp-extract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the idmp-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "idmp-extract",
	Short: "Extract measurement columns from IDMP station data files",
	Long: `idmp-extract reads the fixed-format tab-separated data files published by
the IDMP station at Vaulx-en-Velin, near Lyon (FR), selects records by
month, day, and hour, and writes the requested measurement columns as a
new tab-separated table.

A station file can cover a year (vlx03.txt), a month (vlx98QC_3.txt), or
a day (vlx14QC_12_30.txt). Data and format documentation are available
at http://idmp.entpe.fr/.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./idmp-extract.yaml or ~/.config/idmp-extract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("idmp-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "idmp-extract"))
		}
	}

	viper.SetEnvPrefix("IDMP_EXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
