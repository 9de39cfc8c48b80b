package seed

import (
	"errors"

	"github.com/baetin/monsfer-api/src/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var defaultBgColors = []models.BgColorModel{
	{Name: "White", HexcodeID: 1},
	{Name: "Black", HexcodeID: 2},
	{Name: "Red", HexcodeID: 3},
	{Name: "Navy", HexcodeID: 4},
	{Name: "Pastel Pink", HexcodeID: 5},
}

var defaultFontColors = []models.FontColorModel{
	{Name: "Black", HexcodeID: intPtr(2)},
	{Name: "White", HexcodeID: intPtr(1)},
	{Name: "Gold"},
}

// Seed inserts the default palette rows that do not exist yet, matched by name.
// It returns the number of rows created.
func Seed(db *gorm.DB, log zerolog.Logger) (int, error) {
	created := 0

	log.Info().Msg("Checking default background colors...")
	for _, color := range defaultBgColors {
		ok, err := createIfMissing(db, &color, "bgcolor_name = ?", color.Name)
		if err != nil {
			return created, err
		}
		if ok {
			log.Info().Str("bgcolor", color.Name).Msg("background color created")
			created++
		} else {
			log.Debug().Str("bgcolor", color.Name).Msg("background color already exists, skipping")
		}
	}

	log.Info().Msg("Checking default font colors...")
	for _, color := range defaultFontColors {
		ok, err := createIfMissing(db, &color, "fontcolor_name = ?", color.Name)
		if err != nil {
			return created, err
		}
		if ok {
			log.Info().Str("fontcolor", color.Name).Msg("font color created")
			created++
		} else {
			log.Debug().Str("fontcolor", color.Name).Msg("font color already exists, skipping")
		}
	}

	if created > 0 {
		log.Info().Int("created", created).Msg("Finished seeding defaults")
	} else {
		log.Info().Msg("All defaults already exist")
	}
	return created, nil
}

func createIfMissing[T any](db *gorm.DB, record *T, query string, args ...any) (bool, error) {
	var existing T
	err := db.Where(query, args...).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := db.Create(record).Error; err != nil {
		return false, err
	}
	return true, nil
}

func intPtr(n int) *int { return &n }
