package schema

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBase = "https://www.bazarovyregal.cz/schemas/"

var errNoType = errors.New("block has no @type")

// Validator checks JSON-LD blocks against the bundled schema for their @type.
type Validator struct {
	schemas map[string]*jsonschema.Schema
	printer *message.Printer
}

// NewValidator compiles every bundled schema.
func NewValidator() (*Validator, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to list bundled schemas: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	var types []string
	for _, e := range entries {
		b, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema '%s': %w", e.Name(), err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("schema '%s' is not valid JSON: %w", e.Name(), err)
		}
		if err := compiler.AddResource(schemaBase+e.Name(), doc); err != nil {
			return nil, fmt.Errorf("failed to add schema '%s': %w", e.Name(), err)
		}
		types = append(types, strings.TrimSuffix(e.Name(), ".json"))
	}

	v := &Validator{
		schemas: make(map[string]*jsonschema.Schema, len(types)),
		printer: message.NewPrinter(language.English),
	}
	for _, t := range types {
		sch, err := compiler.Compile(schemaBase + t + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema for %s: %w", t, err)
		}
		v.schemas[t] = sch
	}
	return v, nil
}

// Types lists the @type values with a bundled schema.
func (v *Validator) Types() []string {
	return slices.Sorted(maps.Keys(v.schemas))
}

// Validate parses one block and checks it. It returns the block's @type.
// Types without a bundled schema pass once they parse and name a type.
func (v *Validator) Validate(raw []byte) (string, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	obj, ok := inst.(map[string]any)
	if !ok {
		return "", errors.New("block is not a JSON object")
	}
	typ, _ := obj["@type"].(string)
	if typ == "" {
		return "", errNoType
	}
	sch, ok := v.schemas[typ]
	if !ok {
		return typ, nil
	}
	if err := sch.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return typ, fmt.Errorf("%s: %s", typ, strings.Join(v.details(ve), "; "))
		}
		return typ, fmt.Errorf("%s: %w", typ, err)
	}
	return typ, nil
}

// details flattens a validation error tree into "path: message" leaves.
func (v *Validator) details(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := "$"
		if len(ve.InstanceLocation) > 0 {
			loc = "$." + strings.Join(ve.InstanceLocation, ".")
		}
		return []string{loc + ": " + ve.ErrorKind.LocalizedString(v.printer)}
	}
	var out []string
	for _, c := range ve.Causes {
		out = append(out, v.details(c)...)
	}
	return out
}
