package sqlstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSchemaEmbedded(t *testing.T) {
	files, err := CreateTableFiles.ReadDir(".")
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".sql") {
			names = append(names, f.Name())
		}
	}
	assert.Contains(t, names, "00001_init.sql")
}

func TestInitSchemaAllowsRepeatedAnonymousUsers(t *testing.T) {
	raw, err := CreateTableFiles.ReadFile("00001_init.sql")
	require.NoError(t, err)

	// the uniqueness guarantee only holds for real external identities;
	// anonymous rows all carry an empty external_id
	assert.Contains(t, string(raw),
		"ON sathi_user (platform, external_id) WHERE external_id <> ''")
}
