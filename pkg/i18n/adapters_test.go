package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciobenjamin700/regexm/pkg/i18n"
)

func TestMapAdapter_Load(t *testing.T) {
	t.Parallel()

	data, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data)
}

func TestFSAdapter_Load(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml":    {Data: []byte("en:\n  greeting: Hello\n")},
		"locales/pt-BR.yml":  {Data: []byte("pt-BR:\n  greeting: Olá\n")},
		"locales/README.md":  {Data: []byte("# not a catalog")},
		"locales/nested/x.y": {Data: []byte("ignored")},
	}

	t.Run("loads every supported file", func(t *testing.T) {
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales")
		require.NotNil(t, adapter)

		data, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["greeting"])
		assert.Equal(t, "Olá", data["pt-BR"]["greeting"])
	})

	t.Run("feeds a translator", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
		require.NoError(t, err)
		assert.Equal(t, "Olá", tr.T("pt-BR", "greeting"))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "missing").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("no catalogs", func(t *testing.T) {
		empty := fstest.MapFS{"locales/README.md": {Data: []byte("x")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), empty, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("broken catalog", func(t *testing.T) {
		broken := fstest.MapFS{"locales/en.yaml": {Data: []byte("en: [unterminated")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), broken, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancelled)
	})

	t.Run("nil arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
	})
}
