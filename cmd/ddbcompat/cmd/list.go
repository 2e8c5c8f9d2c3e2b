/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suparena/ddbcompat/registry"

	// Populate the check catalog.
	_ "github.com/suparena/ddbcompat/checks"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered compatibility checks",
	Long: `List prints every check in the catalog with its markers.

Checks marked "very slow" only run with --run-very-slow; checks marked
"emulator only" are skipped when targeting real DynamoDB.`,
	Run: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	for _, c := range registry.List() {
		markers := ""
		if c.VerySlow {
			markers += " [very slow]"
		}
		if c.EmulatorOnly {
			markers += " [emulator only]"
		}
		cmd.Printf("%s%s\n    %s\n", c.Name, markers, c.Description)
	}
}
