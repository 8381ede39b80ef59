package config

import (
	"fmt"
	"time"

	"github.com/glorpus-work/plugport/pkg/errors"
)

// TablePrefixKey is the key the installer reads the table prefix from.
const TablePrefixKey = "dbs.tables.__default__.prefix"

type field struct {
	key    string
	secret bool
	get    func(c *Config) string
	set    func(c *Config, v string) error
}

func stringField(key string, ptr func(c *Config) *string) field {
	return field{
		key: key,
		get: func(c *Config) string { return *ptr(c) },
		set: func(c *Config, v string) error {
			*ptr(c) = v
			return nil
		},
	}
}

// fields lists the settable keys in display order.
var fields = []field{
	stringField("portal.app_root", func(c *Config) *string { return &c.Portal.AppRoot }),
	stringField("portal.host", func(c *Config) *string { return &c.Portal.Host }),
	stringField("portal.engine_version", func(c *Config) *string { return &c.Portal.EngineVersion }),
	stringField("portal.framework_version", func(c *Config) *string { return &c.Portal.FrameworkVersion }),
	stringField("catalog.url", func(c *Config) *string { return &c.Catalog.URL }),
	stringField("catalog.promo_url", func(c *Config) *string { return &c.Catalog.PromoURL }),
	{
		key: "catalog.timeout",
		get: func(c *Config) string { return c.Catalog.Timeout.String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid duration for catalog.timeout: %s", v)
			}
			c.Catalog.Timeout = d
			return nil
		},
	},
	stringField("database.driver", func(c *Config) *string { return &c.Database.Driver }),
	func() field {
		f := stringField("database.dsn", func(c *Config) *string { return &c.Database.DSN })
		f.secret = true
		return f
	}(),
	stringField("database.table_prefix", func(c *Config) *string { return &c.Database.TablePrefix }),
	stringField("settings.output_format", func(c *Config) *string { return &c.Settings.OutputFormat }),
	stringField("settings.log_level", func(c *Config) *string { return &c.Settings.LogLevel }),
}

func lookup(key string) (field, bool) {
	if key == TablePrefixKey {
		key = "database.table_prefix"
	}
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// GetValue returns a configuration value by key. TablePrefixKey is accepted
// as an alias of database.table_prefix.
func (c *Config) GetValue(key string) (string, error) {
	f, ok := lookup(key)
	if !ok {
		return "", errors.ErrUnknownConfigKeyWithName(key)
	}
	return f.get(c), nil
}

// SetValue sets a configuration value by key and revalidates the result.
func (c *Config) SetValue(key, value string) error {
	f, ok := lookup(key)
	if !ok {
		return errors.ErrUnknownConfigKeyWithName(key)
	}

	previous := f.get(c)
	if err := f.set(c, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		_ = f.set(c, previous)
		return errors.Wrap(errors.ErrConfigValidation, err.Error())
	}
	return nil
}

// Keys returns the settable keys in display order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.key)
	}
	return keys
}

// ToMap returns every key with its value, secrets masked.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(fields))
	for _, f := range fields {
		v := f.get(c)
		if f.secret && v != "" {
			v = "********"
		}
		result[f.key] = v
	}
	return result
}
