package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wholesale_go/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MarketRecord is the table row for one market profile.
// Adjustment tables are stored as JSON columns.
type MarketRecord struct {
	Name                   string                          `gorm:"primaryKey"`
	PricePerSqFtTurnkey    float64                         `gorm:"not null"`
	ConditionAdjustment    map[domain.Condition]float64    `gorm:"serializer:json"`
	PropertyTypeAdjustment map[domain.PropertyType]float64 `gorm:"serializer:json"`
	RenovationCostPerSqFt  map[domain.Condition]float64    `gorm:"serializer:json"`
	ClosingCostRate        float64
	HoldingCostRate        float64
	WholesaleFeeRate       float64
	HoldingMonths          float64
	DemandIndex            float64 `gorm:"not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (MarketRecord) TableName() string {
	return "market_profiles"
}

func recordFromProfile(p domain.MarketProfile) MarketRecord {
	return MarketRecord{
		Name:                   p.Name,
		PricePerSqFtTurnkey:    p.PricePerSqFtTurnkey,
		ConditionAdjustment:    p.ConditionAdjustment,
		PropertyTypeAdjustment: p.PropertyTypeAdjustment,
		RenovationCostPerSqFt:  p.RenovationCostPerSqFt,
		ClosingCostRate:        p.ClosingCostRate,
		HoldingCostRate:        p.HoldingCostRate,
		WholesaleFeeRate:       p.WholesaleFeeRate,
		HoldingMonths:          p.HoldingMonths,
		DemandIndex:            p.DemandIndex,
	}
}

// Profile converts the row back to a domain profile
func (r MarketRecord) Profile() domain.MarketProfile {
	return domain.MarketProfile{
		Name:                   r.Name,
		PricePerSqFtTurnkey:    r.PricePerSqFtTurnkey,
		ConditionAdjustment:    r.ConditionAdjustment,
		PropertyTypeAdjustment: r.PropertyTypeAdjustment,
		RenovationCostPerSqFt:  r.RenovationCostPerSqFt,
		ClosingCostRate:        r.ClosingCostRate,
		HoldingCostRate:        r.HoldingCostRate,
		WholesaleFeeRate:       r.WholesaleFeeRate,
		HoldingMonths:          r.HoldingMonths,
		DemandIndex:            r.DemandIndex,
	}
}

// Storage keeps market profiles in SQLite
type Storage struct {
	db *gorm.DB
}

// NewStorage opens (or creates) the SQLite database at dbPath
func NewStorage(dbPath string) (*Storage, error) {
	// Ensure directory exists
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create DB directory: %w", err)
		}
	}
	return open(sqlite.Open(dbPath))
}

func open(dialector gorm.Dialector) (*Storage, error) {
	// Connect to SQLite (Pure Go)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&MarketRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close releases the underlying connection pool
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UpsertProfile creates or replaces a market profile
func (s *Storage) UpsertProfile(p domain.MarketProfile) error {
	if p.Name == "" {
		return errors.New("market name is required")
	}
	rec := recordFromProfile(p)
	return s.db.Save(&rec).Error
}

// GetProfile retrieves a market by name. A missing market returns nil, nil.
func (s *Storage) GetProfile(name string) (*domain.MarketProfile, error) {
	var rec MarketRecord
	err := s.db.First(&rec, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Not found is not an error
	}
	if err != nil {
		return nil, err
	}
	p := rec.Profile()
	return &p, nil
}

// LoadProfiles returns every stored market keyed by name
func (s *Storage) LoadProfiles() (map[string]domain.MarketProfile, error) {
	var recs []MarketRecord
	if err := s.db.Order("name").Find(&recs).Error; err != nil {
		return nil, err
	}

	result := make(map[string]domain.MarketProfile, len(recs))
	for _, rec := range recs {
		result[rec.Name] = rec.Profile()
	}
	return result, nil
}

// DeleteProfile removes a market
func (s *Storage) DeleteProfile(name string) error {
	return s.db.Where("name = ?", name).Delete(&MarketRecord{}).Error
}
