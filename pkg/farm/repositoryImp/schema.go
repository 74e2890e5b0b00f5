package repositoryImp

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// savedFarmsSchema is the shape of the persisted farm list:
// [{name,type,boundary?,center?}] with [lat,lng] pairs.
const savedFarmsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "type"],
    "properties": {
      "name": {"type": "string"},
      "type": {"type": "string"},
      "boundary": {
        "type": ["array", "null"],
        "items": {"$ref": "#/definitions/point"}
      },
      "center": {
        "oneOf": [{"$ref": "#/definitions/point"}, {"type": "null"}]
      }
    }
  },
  "definitions": {
    "point": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 2,
      "maxItems": 2
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(savedFarmsSchema)

func validateStored(raw string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
