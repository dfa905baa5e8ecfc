package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/fouinot/idmp-extract/internal/catalog"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List all valid parameter codes",
	Long: `Params lists every parameter code the station files carry, with its
description. The extract and store commands match codes
case-insensitively against this list.`,
	RunE: runParams,
}

func init() {
	paramsCmd.Flags().Bool("yaml", false, "output the catalog as YAML, including column positions")

	rootCmd.AddCommand(paramsCmd)
}

func runParams(cmd *cobra.Command, args []string) error {
	entries := catalog.Entries()

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling catalog: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Println("Valid parameters:")
	for _, p := range entries {
		fmt.Printf("  %-5s %s\n", p.Code, p.Description)
	}
	return nil
}
