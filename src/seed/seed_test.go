package seed

import (
	"testing"

	"github.com/baetin/monsfer-api/src/config"
	"github.com/baetin/monsfer-api/src/db"
	"github.com/baetin/monsfer-api/src/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Idempotent(t *testing.T) {
	gdb, err := db.Connect(&config.Config{DBDriver: "sqlite", LogLevel: "disabled"}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, gdb.Create(&models.BgColorModel{Name: "Red", HexcodeID: 3}).Error)

	created, err := Seed(gdb, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, len(defaultBgColors)-1+len(defaultFontColors), created)

	created, err = Seed(gdb, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, created)

	var bgColors int64
	require.NoError(t, gdb.Model(&models.BgColorModel{}).Count(&bgColors).Error)
	assert.EqualValues(t, len(defaultBgColors), bgColors)

	var fontColors []models.FontColorModel
	require.NoError(t, gdb.Find(&fontColors).Error)
	assert.Len(t, fontColors, len(defaultFontColors))
}
