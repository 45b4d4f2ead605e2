package main

import (
	"context"
	"log"

	"github.com/shoplab/graphrec/internal/config"
	"github.com/shoplab/graphrec/internal/etl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pipeline := etl.New(cfg)
	if err := pipeline.Run(context.Background()); err != nil {
		log.Fatalf("ETL failed: %v", err)
	}

	log.Println("ETL completed successfully")
}
