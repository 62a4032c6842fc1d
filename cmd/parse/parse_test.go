package parse_test

import (
	"bytes"
	"testing"

	"fjacquet/gastos-bot/cmd/parse"
	"fjacquet/gastos-bot/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
	root.Register(parse.Cmd)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GASTOS_DATABASE_URL", "")

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs(append(append([]string{"parse"}, args...), "--log-level", "error"))
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestParseCommand_Metadata(t *testing.T) {
	assert.Equal(t, "parse [message]", parse.Cmd.Use)
	assert.Contains(t, parse.Cmd.Short, "Parse an expense message")
	assert.Contains(t, parse.Cmd.Long, "Example")
	assert.NotNil(t, parse.Cmd.RunE)
}

func TestParseCommand_Run(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "quoted message with payment method",
			args:     []string{"12500 supermercado. débito"},
			expected: "Monto: 12.500,00 ARS\nDescripción: supermercado\nMedio de pago: Tarjeta de débito\n",
		},
		{
			name:     "unquoted words are joined",
			args:     []string{"20000", "cena", "con", "amigos"},
			expected: "Monto: 20.000,00 ARS\nDescripción: cena con amigos\nMedio de pago: Efectivo\n",
		},
		{
			name:     "no amount",
			args:     []string{"almuerzo"},
			expected: "Monto: -\nDescripción: Gasto sin descripción\nMedio de pago: Efectivo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestParseCommand_RequiresMessage(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)
}
