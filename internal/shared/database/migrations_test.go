package database

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"002_seed_planets.sql":   {Data: []byte("INSERT ...")},
		"001_create_planets.sql": {Data: []byte("CREATE ...")},
		"README.md":              {Data: []byte("docs")},
	}

	files, err := migrationFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_planets.sql", "002_seed_planets.sql"}, files)
}

func TestMigrationFilesRepository(t *testing.T) {
	files, err := migrationFiles(os.DirFS("../../../migrations"))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
