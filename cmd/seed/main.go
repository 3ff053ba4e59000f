package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/seed"
	"portfolio-backend/internal/store"
	"portfolio-backend/pkg/config"
	"portfolio-backend/pkg/logger"
)

func main() {
	skipConfirm := flag.Bool("y", false, "Skip confirmation prompt")
	datasetsDir := flag.String("datasets", "", "Datasets directory (overrides DATASETS_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database reset and seed...")

	if !*skipConfirm {
		log.Warn("WARNING: This will DELETE ALL DATA from MongoDB and Neo4j!")
		log.Warn("This action cannot be undone.")
		// Prompt goes to stdout, not the log.
		fmt.Print("Are you sure you want to continue? (yes/no): ")
		var response string
		fmt.Scanln(&response)
		if response != "yes" && response != "y" {
			log.Info("Aborted.")
			os.Exit(0)
		}
	}

	dir := cfg.DatasetsDir
	if *datasetsDir != "" {
		dir = *datasetsDir
	}

	ctx := context.Background()

	mongo, err := store.NewMongo(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongo.Close(ctx)

	neo, err := store.NewNeo4j(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	defer neo.Close(ctx)

	seeder := seed.NewSeeder(mongo, graph.NewRepository(neo.Driver()), dir)
	summary, err := seeder.Run(ctx)
	if err != nil {
		log.Fatal("Seed failed", zap.Error(err))
	}

	for collection, count := range summary.Documents {
		log.Info("Collection seeded",
			zap.String("collection", collection),
			zap.Int("documents", count),
		)
	}
	log.Info("Database reset and seed completed successfully!",
		zap.Int64("nodes", summary.Nodes),
		zap.Int64("edges", summary.Edges),
	)
}
