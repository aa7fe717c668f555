package persist

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// snapshotSchema guards the shape of persisted blobs before they are merged
// into live state. Sections are typed loosely; detailed decoding errors
// surface during unmarshalling.
const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "glassRecords": {"type": "array"},
    "content": {"type": "object"},
    "mediaLibrary": {"type": "array"},
    "forms": {"type": "array"},
    "pages": {"type": "array"},
    "activity": {"type": "array"},
    "analytics": {"type": "object"}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("snapshot.json", strings.NewReader(snapshotSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("snapshot.json")
	})
	return compiledSchema, schemaErr
}
