package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--env-file", t.TempDir() + "/missing.env"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, Version+"\n", out.String())
}

func TestMigrateNeedsPostgres(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"migrate", "up", "--env-file", t.TempDir() + "/missing.env"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "migrations need STORE_DRIVER=postgres")
}

func TestLoadCatalogFromFile(t *testing.T) {
	_, err := loadCatalog(t.TempDir() + "/missing.yaml")
	assert.ErrorContains(t, err, "read catalog")

	catalog, err := loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, catalog.PaymentModes, 5)
}
