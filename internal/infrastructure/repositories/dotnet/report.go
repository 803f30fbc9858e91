package dotnet

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/rios0rios0/outdated/internal/domain/entities"
)

//go:embed report_schema.json
var reportSchema string

// DecodeError is a report deserialization failure annotated with the JSON
// path of the field that caused it.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid report at %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeReport validates the raw report against the embedded schema and
// decodes it. Structural mismatches carry the path they occurred at, so a
// malformed report points straight to the offending field instead of
// failing opaquely.
func decodeReport(content []byte) (*entities.DotnetOutdatedData, error) {
	validation, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(reportSchema),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		return nil, &DecodeError{Path: "(document)", Err: err}
	}

	if !validation.Valid() {
		first := validation.Errors()[0]
		return nil, &DecodeError{Path: first.Field(), Err: errors.New(first.Description())}
	}

	var data entities.DotnetOutdatedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, &DecodeError{Path: unmarshalPath(err), Err: err}
	}

	return &data, nil
}

// unmarshalPath extracts a field path from a json error when one is available.
func unmarshalPath(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field
	}
	return "(document)"
}
