package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "cli")
	require.NoError(t, generate(dir))

	for _, name := range []string{
		"pricectl.md",
		"pricectl_quote.md",
		"pricectl_estimates_export.md",
		"pricectl_market_refresh.md",
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotContains(t, string(data), "Auto generated by spf13/cobra", name)
	}
}
