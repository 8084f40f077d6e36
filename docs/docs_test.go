package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Social Feed API", doc.Info.Title)
	for path, methods := range map[string][]string{
		"/auth/signup":         {"post"},
		"/feeds":               {"get", "post"},
		"/feeds/{id}":          {"get", "put", "delete"},
		"/feeds/{id}/like":     {"post", "delete"},
		"/feeds/{id}/comments": {"get", "post"},
		"/users/{id}/follow":   {"post", "delete"},
		"/me/profile":          {"get", "patch"},
		"/upload":              {"post"},
	} {
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}
	assert.Contains(t, doc.Definitions, "social_feed_internal_domain_feed_model.CreateFeedParams")
}
