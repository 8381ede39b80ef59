package config

import (
	"testing"
	"time"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.TablePrefix = "demo_"

	v, err := cfg.GetValue("database.table_prefix")
	require.NoError(t, err)
	assert.Equal(t, "demo_", v)

	v, err = cfg.GetValue(TablePrefixKey)
	require.NoError(t, err)
	assert.Equal(t, "demo_", v)

	v, err = cfg.GetValue("catalog.timeout")
	require.NoError(t, err)
	assert.Equal(t, "10s", v)

	_, err = cfg.GetValue("nope")
	assert.ErrorIs(t, err, errors.ErrUnknownConfigKey)
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, c *Config)
		wantErr error
	}{
		{
			name:  "table prefix alias",
			key:   TablePrefixKey,
			value: "pa_",
			check: func(t *testing.T, c *Config) { assert.Equal(t, "pa_", c.Database.TablePrefix) },
		},
		{
			name:  "timeout",
			key:   "catalog.timeout",
			value: "3s",
			check: func(t *testing.T, c *Config) { assert.Equal(t, 3*time.Second, c.Catalog.Timeout) },
		},
		{
			name:  "host",
			key:   "portal.host",
			value: "api.example.com",
			check: func(t *testing.T, c *Config) { assert.Equal(t, "api.example.com", c.Portal.Host) },
		},
		{
			name:    "unknown key",
			key:     "settings.color",
			value:   "true",
			wantErr: errors.ErrUnknownConfigKey,
		},
		{
			name:    "invalid value is rolled back",
			key:     "settings.log_level",
			value:   "loud",
			wantErr: errors.ErrConfigValidation,
			check:   func(t *testing.T, c *Config) { assert.Equal(t, "info", c.Settings.LogLevel) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.SetValue(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}

	cfg := DefaultConfig()
	assert.Error(t, cfg.SetValue("catalog.timeout", "soon"))
}

func TestToMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.DSN = "root:secret@tcp(db)/portal"

	m := cfg.ToMap()
	assert.Len(t, m, len(Keys()))
	assert.Equal(t, "********", m["database.dsn"])
	assert.Equal(t, DefaultCatalogURL, m["catalog.url"])
	assert.NotContains(t, m, TablePrefixKey)
}
