package preset

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/doomforge/ngplus/internal/errors"
)

// Schema renders the JSON schema of the preset document, for editor
// integration and preset linting.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	s := reflector.ReflectFromType(reflect.TypeOf(Preset{}))
	if s == nil {
		return nil, errors.Internal("failed to reflect preset schema")
	}
	s.Title = "Loadout Preset"
	s.Description = "A complete starting-loadout selection consumed by the ngplus CLI."

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal preset schema")
	}
	return append(data, '\n'), nil
}
