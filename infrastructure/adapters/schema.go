package adapters

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
)

var schemaCache sync.Map // reflect type name -> *jsonschema.Schema

// schemaFor reflects a strict JSON schema from a sample value of the
// expected answer type.
func schemaFor(sample interface{}) *jsonschema.Schema {
	key := fmt.Sprintf("%T", sample)
	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*jsonschema.Schema)
	}
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(sample)
	schemaCache.Store(key, schema)
	return schema
}

// schemaInstruction spells the schema out for models without native
// structured output.
func schemaInstruction(sample interface{}) string {
	if sample == nil {
		return "Respond with a single JSON object."
	}
	b, err := json.Marshal(schemaFor(sample))
	if err != nil {
		return "Respond with a single JSON object."
	}
	return "Respond with a single JSON object that matches this JSON schema:\n" + string(b)
}
