package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relato/pkg/config"
	"github.com/dmitrymomot/relato/pkg/form"
)

func TestConfig_Environment(t *testing.T) {
	t.Run("defaults match DefaultConfig", func(t *testing.T) {
		var cfg form.Config
		require.NoError(t, config.ForceReload(&cfg))
		assert.Equal(t, form.DefaultConfig(), cfg)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RELATO_STRICT", "true")
		t.Setenv("RELATO_MIN_AGE", "16")
		t.Setenv("RELATO_MAX_PHOTO_BYTES", "1048576")
		t.Setenv("RELATO_TIMEZONE", "America/Manaus")

		var cfg form.Config
		require.NoError(t, config.ForceReload(&cfg))
		assert.True(t, cfg.Strict)
		assert.Equal(t, 16, cfg.MinAge)
		assert.Equal(t, int64(1<<20), cfg.MaxPhotoBytes)
		assert.Equal(t, "America/Manaus", cfg.Timezone)

		_, err := form.New(form.NewMemoryForm().Bindings(), form.WithConfig(cfg))
		assert.NoError(t, err)
	})

	t.Run("rejected by validate tags", func(t *testing.T) {
		t.Setenv("RELATO_MIN_AGE", "130")

		var cfg form.Config
		err := config.ForceReload(&cfg)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
