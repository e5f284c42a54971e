package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chomp/internal/config"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema <kind>",
	Short: "Print the JSON Schema of a YAML document",
	Long: fmt.Sprintf(`Print the JSON Schema for one of the YAML documents chomp reads,
for editor completion and validation.

Kinds: %s

Examples:
  chomp schema config
  chomp schema level --out level.schema.json`, strings.Join(config.SchemaKinds(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.SchemaKinds(),
	RunE:      runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&flagSchemaOut, "out", "o", "", "Write to a file instead of stdout")
}

func runSchema(_ *cobra.Command, args []string) error {
	data, err := config.SchemaJSON(args[0])
	if err != nil {
		return err
	}

	if flagSchemaOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(flagSchemaOut, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("cannot write schema: %w", err)
	}
	logger.Info("schema written", "kind", args[0], "path", flagSchemaOut)
	return nil
}
