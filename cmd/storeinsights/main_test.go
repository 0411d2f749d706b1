package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/Bhaskar-Gayen/Shopify-store-analyzer/cmd/storeinsights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("returns an error when no command is given", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		defer m.Close()

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help without opening the database", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		defer m.Close()

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "analyze")
		assert.Contains(t, stdout.String(), "serve")
	})

	t.Run("list runs end to end against a fresh database", func(t *testing.T) {
		t.Setenv("STOREINSIGHTS_DB", filepath.Join(t.TempDir(), "insights.db"))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		defer m.Close()

		err := m.Run(context.Background(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No analyses found")
	})

	t.Run("rejects an unknown command", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		defer m.Close()

		err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)

		require.Error(t, err)
	})
}
