package provider

import (
	"testing"

	"github.com/numrent/numrent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	daisy := NewDaisySMS(Config{})
	pool := NewSMSPool(Config{})
	tiger := NewTigerSMS(Config{})
	fivesim := NewFiveSim(Config{})

	registry := NewRegistry(daisy, pool, tiger, fivesim)

	t.Run("Resolves canonical IDs", func(t *testing.T) {
		for _, name := range []string{"us_server", "smspool", "tigersms", "5sim"} {
			adapter, err := registry.Get(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, adapter.ID())
		}
	})

	t.Run("Resolves aliases", func(t *testing.T) {
		adapter, err := registry.Get("daisysms")
		require.NoError(t, err)
		assert.Equal(t, "us_server", adapter.ID())

		adapter, err = registry.Get("server1")
		require.NoError(t, err)
		assert.Equal(t, "smspool", adapter.ID())

		adapter, err = registry.Get("server2")
		require.NoError(t, err)
		assert.Equal(t, "5sim", adapter.ID())
	})

	t.Run("Unknown provider", func(t *testing.T) {
		_, err := registry.Get("nosuch")
		assert.ErrorIs(t, err, domain.ErrUnknownProvider)
	})

	t.Run("All preserves registration order", func(t *testing.T) {
		all := registry.All()
		require.Len(t, all, 4)
		assert.Equal(t, "us_server", all[0].ID())
		assert.Equal(t, "5sim", all[3].ID())
	})
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+13475550123", normalizePhone("13475550123"))
	assert.Equal(t, "+13475550123", normalizePhone("+13475550123"))
	assert.Equal(t, "", normalizePhone(""))
}
