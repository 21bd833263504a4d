package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/maxviazov/studio-backoffice/internal/handler"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

type openAPIParam struct {
	Ref    string `yaml:"$ref"`
	Name   string `yaml:"name"`
	Schema struct {
		Enum []string `yaml:"enum"`
	} `yaml:"schema"`
}

type openAPIDoc struct {
	Paths map[string]struct {
		Get struct {
			Parameters []openAPIParam `yaml:"parameters"`
		} `yaml:"get"`
	} `yaml:"paths"`
}

// The served document must describe every mounted resource and its allow-list.
func TestOpenAPI_CoversEveryResource(t *testing.T) {
	w := serve(newEngine(stubPinger{}), http.MethodGet, "/openapi.yaml")
	require.Equal(t, http.StatusOK, w.Code)

	var doc openAPIDoc
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &doc))

	for _, def := range resource.All() {
		base := handler.APIV1Prefix + handler.AdminPrefix + "/" + def.Name
		list, ok := doc.Paths[base]
		require.True(t, ok, "missing %s", base)
		_, ok = doc.Paths[base+"/{id}"]
		assert.True(t, ok, "missing %s/{id}", base)

		params := map[string]openAPIParam{}
		for _, p := range list.Get.Parameters {
			if p.Name != "" {
				params[p.Name] = p
			}
		}
		for _, f := range def.Filters {
			p, ok := params[f.Key]
			if assert.True(t, ok, "%s: filter %s undocumented", def.Name, f.Key) && len(f.OneOf) > 0 {
				assert.Equal(t, f.OneOf, p.Schema.Enum, "%s: %s enum", def.Name, f.Key)
			}
		}
		assert.Len(t, params, len(def.Filters), "%s documents filters it does not accept", def.Name)
	}
}
