// Package catalogtest loads the embedded catalog for tests.
package catalogtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/TextMaple_Go/internal/catalog"
)

// Default returns the embedded catalog and fails tb when it does not resolve
func Default(tb testing.TB) *catalog.Catalog {
	tb.Helper()
	c, err := catalog.Default()
	require.NoError(tb, err)
	return c
}
