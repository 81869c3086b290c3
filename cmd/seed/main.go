// seed carga el catálogo inicial de productos en el almacenamiento configurado.
// Los productos cuyo nombre ya existe se omiten, por lo que puede ejecutarse varias veces.
//
// Uso: go run ./cmd/seed [ruta/catalogo.json]
// Sin argumento usa el catálogo de ferretería incorporado. El JSON es una lista de
// objetos con la forma de POST /api/products.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/application/usecase"
	"github.com/jhoicas/inventario-pyme/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-pyme/pkg/config"
	"github.com/jhoicas/inventario-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	catalog := usecase.DefaultCatalog()
	if len(os.Args) > 1 {
		catalog, err = readCatalog(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("path", os.Args[1]).Msg("leer catálogo")
		}
	}

	ctx := context.Background()
	if cfg.Store.Backend == config.BackendMemory {
		log.Warn().Msg("STORE_BACKEND=memory: el catálogo se descarta al terminar")
	}
	store, err := backend.Open(ctx, *cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	res, err := usecase.NewSeedUseCase(store.Products).Seed(ctx, catalog)
	if res != nil {
		for _, name := range res.Created {
			log.Info().Str("product", name).Msg("producto creado")
		}
		for _, name := range res.Skipped {
			log.Debug().Str("product", name).Msg("producto ya existe")
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("carga de catálogo interrumpida")
		store.Close()
		os.Exit(1)
	}
	log.Info().Int("created", len(res.Created)).Int("skipped", len(res.Skipped)).Msg("catálogo cargado")
}

func readCatalog(path string) ([]dto.CreateProductRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []dto.CreateProductRequest
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("JSON inválido: %w", err)
	}
	return out, nil
}
