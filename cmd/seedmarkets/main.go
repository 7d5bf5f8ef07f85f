package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"wholesale_go/internal/catalog"
	"wholesale_go/internal/domain"
	"wholesale_go/internal/infra"
	"wholesale_go/internal/infra/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seedmarkets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", infra.DefaultConfigPath, "path to the YAML config file (optional)")
	dbPath := fs.String("db", "", "SQLite database to write (defaults to catalog.db_path)")
	file := fs.String("file", "", "YAML market file to import (defaults to the bundled markets)")
	prune := fs.Bool("prune", false, "delete stored markets that are not in the imported set")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	cfg, err := infra.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	slog.SetDefault(infra.NewLogger(cfg))

	target := *dbPath
	if target == "" {
		target = cfg.Catalog.DBPath
	}
	if target == "" {
		fmt.Fprintln(stderr, "error: no database given; set -db or catalog.db_path")
		return 2
	}

	var profiles map[string]domain.MarketProfile
	if *file != "" {
		profiles, err = catalog.LoadFile(*file)
	} else {
		profiles, err = catalog.LoadBundled()
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	store, err := storage.NewStorage(target)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer store.Close()

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := store.UpsertProfile(profiles[name]); err != nil {
			slog.Error("Failed to upsert market", slog.String("market", name), slog.Any("error", err))
			fmt.Fprintf(stderr, "error: %s: %v\n", name, err)
			return 1
		}
		fmt.Fprintf(stdout, "seeded %s\n", name)
	}

	if *prune {
		stored, err := store.LoadProfiles()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		for name := range stored {
			if _, ok := profiles[name]; ok {
				continue
			}
			if err := store.DeleteProfile(name); err != nil {
				slog.Error("Failed to delete market", slog.String("market", name), slog.Any("error", err))
				fmt.Fprintf(stderr, "error: %s: %v\n", name, err)
				return 1
			}
			fmt.Fprintf(stdout, "pruned %s\n", name)
		}
	}
	slog.Info("✨ Market seeding completed", slog.Int("markets", len(names)), slog.String("db", target))
	return 0
}
