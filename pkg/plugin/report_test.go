package plugin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	var r Report
	assert.Equal(t, "", r.Last())

	r.Addf("installing %s", "demo")
	r.Add(fmt.Errorf("boom"))
	r.Append(Report{"a", "b"})

	assert.Equal(t, Report{"installing demo", "boom", "a", "b"}, r)
	assert.Equal(t, "b", r.Last())
	assert.Equal(t, "installing demo\nboom\na\nb", r.String())
}

func TestLayout(t *testing.T) {
	l := NewLayout("/srv/app")
	assert.Equal(t, "/srv/app/plugins", l.PluginsDir())
	assert.Equal(t, "/srv/app/data", l.DataDir())
	assert.Equal(t, "/srv/app/plugins/demo.zip", l.ArchivePath("demo"))
	assert.Equal(t, "/srv/app/plugins/demo.json", l.ManifestPath("demo"))
	assert.Equal(t, "/srv/app/data/demo.sql", l.MigrationPath("demo"))
	assert.Equal(t, "plugins/demo.zip", RelArchivePath("demo"))
}
