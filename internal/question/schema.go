package question

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const payloadSchemaURL = "payload.schema.json"

//go:embed payload.schema.json
var payloadSchema string

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// PayloadSchema returns the JSON Schema raw payloads are checked against.
func PayloadSchema() string {
	return payloadSchema
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(payloadSchemaURL, strings.NewReader(payloadSchema)); err != nil {
			compileErr = fmt.Errorf("add payload schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(payloadSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateSchema checks a decoded JSON document and reports each leaf
// violation as an Issue.
func validateSchema(doc interface{}) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var schemaErr *jsonschema.ValidationError
	if !errors.As(err, &schemaErr) {
		return fmt.Errorf("validate payload: %w", err)
	}
	collector := &issueCollector{}
	collectSchemaIssues(collector, schemaErr)
	return collector.result()
}

func collectSchemaIssues(collector *issueCollector, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		field := strings.TrimPrefix(err.InstanceLocation, "/")
		if field == "" {
			field = "payload"
		}
		collector.add(strings.ReplaceAll(field, "/", "."), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaIssues(collector, cause)
	}
}
