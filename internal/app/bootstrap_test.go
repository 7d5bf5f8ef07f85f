package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wholesale_go/internal/catalog"
	"wholesale_go/internal/domain"
	"wholesale_go/internal/estimator"
	"wholesale_go/internal/infra"
	"wholesale_go/internal/infra/storage"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestInitialize_Bundled(t *testing.T) {
	testChdir(t, t.TempDir())

	b := NewBootstrap()
	if err := b.Initialize(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if b.Catalog.Len() == 0 {
		t.Fatal("bundled catalog is empty")
	}
	est, err := b.Service.Estimate(context.Background(), domain.NewPropertyRequest("Dallas, TX", 1600, 3, 2))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if est.RecommendedOffer > est.MaximumAllowableOffer {
		t.Errorf("offer %v above MAO %v", est.RecommendedOffer, est.MaximumAllowableOffer)
	}
}

func TestInitialize_File(t *testing.T) {
	testChdir(t, t.TempDir())

	markets := filepath.Join(t.TempDir(), "markets.yaml")
	if err := os.WriteFile(markets, []byte(`
"Only, OK":
  price_per_sqft_turnkey: 100
  demand_index: 1
  condition_adjustment: {light_rehab: 0.8}
`), 0644); err != nil {
		t.Fatalf("write markets: %v", err)
	}

	b := NewBootstrap()
	if err := b.Initialize(writeConfig(t, "catalog:\n  source: file\n  path: "+markets+"\n")); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if got := b.Service.Markets(); len(got) != 1 || got[0] != "Only, OK" {
		t.Errorf("Markets() = %v, want [Only, OK]", got)
	}
}

func TestInitialize_SQLite(t *testing.T) {
	testChdir(t, t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "markets.db")

	store, err := storage.NewStorage(dbPath)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	profiles, _ := catalog.LoadBundled()
	for _, p := range profiles {
		if err := store.UpsertProfile(p); err != nil {
			t.Fatalf("UpsertProfile failed: %v", err)
		}
	}
	store.Close()

	b := NewBootstrap()
	if err := b.Initialize(writeConfig(t, "catalog:\n  source: sqlite\n  db_path: "+dbPath+"\n")); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if b.Catalog.Len() != len(profiles) {
		t.Errorf("catalog has %d markets, want %d", b.Catalog.Len(), len(profiles))
	}

	// Same inputs give the same estimate whichever source the profiles came from.
	req := domain.NewPropertyRequest("Austin, TX", 1800, 3, 2)
	fromDB, err := b.Estimator.Estimate(req)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	bundled, err := estimator.NewDefault()
	if err != nil {
		t.Fatalf("NewDefault failed: %v", err)
	}
	if want, _ := bundled.Estimate(req); fromDB != want {
		t.Errorf("sqlite estimate %+v differs from bundled %+v", fromDB, want)
	}
}

func TestLoadProfiles_EmptySQLite(t *testing.T) {
	cfg := infra.DefaultConfig()
	cfg.Catalog.Source = infra.SourceSQLite
	cfg.Catalog.DBPath = filepath.Join(t.TempDir(), "empty.db")

	if _, err := LoadProfiles(cfg); err == nil {
		t.Error("expected error for empty database")
	}
}

func TestLoadProfiles_UnknownSource(t *testing.T) {
	cfg := infra.DefaultConfig()
	cfg.Catalog.Source = "ftp"

	_, err := LoadProfiles(cfg)
	var ce *domain.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}

func TestInitialize_InvalidConfig(t *testing.T) {
	testChdir(t, t.TempDir())

	b := NewBootstrap()
	if err := b.Initialize(writeConfig(t, "catalog:\n  source: file\n")); err == nil {
		t.Error("expected error for file source without path")
	}
}
