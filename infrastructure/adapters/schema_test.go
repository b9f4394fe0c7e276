package adapters

import (
	"encoding/json"
	"seo-blog-generator/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor_StrictObject(t *testing.T) {
	schema := schemaFor(domain.TopicKeywords{})

	raw, err := json.Marshal(schema)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "object", decoded["type"])
	assert.Equal(t, false, decoded["additionalProperties"])
	assert.ElementsMatch(t,
		[]interface{}{"topic", "primary_keyword", "secondary_keywords", "search_intent"},
		decoded["required"])
	assert.Same(t, schema, schemaFor(domain.TopicKeywords{}))
}

func TestSchemaInstruction(t *testing.T) {
	assert.Equal(t, "Respond with a single JSON object.", schemaInstruction(nil))
	assert.Contains(t, schemaInstruction(domain.FinalBlog{}), "Polished_Blog")
}
