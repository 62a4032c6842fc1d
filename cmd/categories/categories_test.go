package categories_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/gastos-bot/cmd/categories"
	"fjacquet/gastos-bot/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
	root.Register(categories.Cmd)
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GASTOS_DATABASE_URL", "")
	t.Setenv("GASTOS_CATALOG_FILE", "")
	return dir
}

func execute(t *testing.T) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs([]string{"categories", "--log-level", "error"})
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestCategoriesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categories", categories.Cmd.Use)
	assert.Contains(t, categories.Cmd.Short, "subcategories")
	assert.NotNil(t, categories.Cmd.RunE)
}

func TestCategoriesCommand_Seed(t *testing.T) {
	isolate(t)

	out, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], " 1. Comida"))
	assert.Contains(t, lines[0], "palabras clave")
	assert.Contains(t, lines[12], "Gastos imprevistos")
	assert.Contains(t, lines[12], "comodín")
	assert.Contains(t, lines[13], "Otros no clasificados")
}

func TestCategoriesCommand_CatalogOverride(t *testing.T) {
	dir := isolate(t)
	catalogFile := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogFile, []byte(`categories:
  - name: Deportes
    keywords: [gimnasio, pileta, club]
  - name: Otros no clasificados
    keywords: []
`), 0o600))
	t.Setenv("GASTOS_CATALOG_FILE", catalogFile)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, " 1. Deportes                 3 palabras clave\n 2. Otros no clasificados    comodín\n", out)
}
