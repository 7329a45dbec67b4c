package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica el esquema de la tabla clientes",
	Long: `Crea la tabla clientes, sus restricciones de unicidad e índices
si no existen. Es idempotente.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, backend, _, err := conectar(ctx)
	if err != nil {
		return err
	}
	defer backend.Close()

	if err := backend.Migrate(ctx); err != nil {
		return fmt.Errorf("migrar: %w", err)
	}
	cmd.Printf("Esquema aplicado (%s)\n", cfg.DB.Driver)
	return nil
}
