package dataprocessing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentipulse/internal/errors"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_LoadCSV(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(nil)

	path := writeTempFile(t, "trades.csv",
		"Account,Coin,Execution Price,Size USD,Side\n"+
			"0xabc,BTC,42000.5,1000,BUY\n"+
			"0xdef,ETH,2200,500,SELL\n")

	table, err := loader.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.True(t, table.HasColumn("Execution Price"))
	assert.Equal(t, "42000.5", table.Cell(0, "Execution Price"))
	assert.Equal(t, "SELL", table.Cell(1, "Side"))
}

func TestLoader_LoadCSV_BOMHeader(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(nil)

	path := writeTempFile(t, "sentiment.csv",
		"\ufefftimestamp,value,classification\n"+
			"1672531200,25,Fear\n")

	table, err := loader.Load(ctx, path)
	require.NoError(t, err)
	assert.True(t, table.HasColumn("timestamp"))
}

func TestLoader_LoadCSV_RaggedRows(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(nil)

	path := writeTempFile(t, "ragged.csv",
		"a,b,c\n"+
			"1,2\n"+
			"1,2,3,4\n")

	table, err := loader.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "", table.Cell(0, "c"))
	assert.Equal(t, "3", table.Cell(1, "c"))
}

func TestLoader_FileNotFound(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(nil)

	_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeLoad))
}

func TestLoader_EmptyFile(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(nil)

	path := writeTempFile(t, "empty.csv", "")

	_, err := loader.Load(ctx, path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeLoad))
	assert.Contains(t, err.Error(), "header row required")
}
