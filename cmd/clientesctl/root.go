package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Clientes-api/internal/infrastructure/store"
	"github.com/jhoicas/Clientes-api/pkg/config"
	"github.com/jhoicas/Clientes-api/pkg/logger"
)

var (
	// Reemplazables en tests.
	loadConfig = config.Load
	openStore  = store.Open
)

var rootCmd = &cobra.Command{
	Use:           "clientesctl",
	Short:         "Herramientas de operación del registro de clientes",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// conectar carga la configuración y abre el backend configurado.
func conectar(ctx context.Context) (*config.Config, *store.Backend, *logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	backend, err := openStore(ctx, cfg.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, backend, log, nil
}
