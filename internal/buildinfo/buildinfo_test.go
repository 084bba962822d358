package buildinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/victorsapucaia/molic/internal/buildinfo"
)

func TestTemplate(t *testing.T) {
	old := buildinfo.Version
	t.Cleanup(func() { buildinfo.Version = old })

	buildinfo.Version = "v1.2.3"
	assert.Contains(t, buildinfo.Template(), "{{.Name}} version v1.2.3")
	assert.Contains(t, buildinfo.String(), "version: v1.2.3")
}
