// Command import seeds the rooms table from the campus Buildings API. Each
// argument is a building record number; every room that looks like a
// bathroom is upserted and the building's bathroom count updated.
//
//	import 1005092 1000066
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/flushfinder/flushfinder/internal/config"
	"github.com/flushfinder/flushfinder/internal/database"
	"github.com/flushfinder/flushfinder/internal/importer"
)

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		log.Fatal("usage: import <building_record_number> [...]")
	}
	cfg := config.LoadImport()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}
	client := importer.NewClient(cfg.CampusAPIBase, cfg.CampusClientID, cfg.CampusClientSecret)
	token, err := client.Token(ctx)
	if err != nil {
		log.Fatalf("campus api: %v", err)
	}

	imp := importer.NewImporter(db, client)
	total := 0
	for _, brn := range os.Args[1:] {
		n, err := imp.ImportBuilding(ctx, token, brn)
		if err != nil {
			log.Fatalf("import %s: %v", brn, err)
		}
		total += n
	}
	log.Printf("imported %d bathrooms across %d buildings", total, len(os.Args)-1)
}
