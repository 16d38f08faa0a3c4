package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieClicker_Go/configs"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"name": "oven", "count": 3}`, ""},
		{"without optional field", `{"name": "oven"}`, ""},
		{"missing required field", `{"count": 3}`, "required"},
		{"wrong type for field", `{"name": "oven", "count": "three"}`, "/count"},
		{"constraint violation", `{"name": "oven", "count": -5}`, "minimum"},
		{"invalid JSON", `{"name": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "data.json")
			require.NoError(t, os.WriteFile(dataPath, []byte(tt.data), 0644))

			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ViolationsWrapSentinel(t *testing.T) {
	v := NewFSSchemaValidator(fstest.MapFS{"s.json": {Data: []byte(testSchema)}})

	err := v.ValidateBytes([]byte(`{"count": -1}`), "s.json")
	assert.ErrorIs(t, err, ErrSchemaViolation)

	err = v.ValidateBytes([]byte(`{not json`), "s.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = NewFSSchemaValidator(fstest.MapFS{}).ValidateBytes([]byte(`{}`), "missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_MissingDataFile(t *testing.T) {
	err := NewSchemaValidator().ValidateFile("nonexistent.json", "whatever.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_ResolvesFromModuleRoot(t *testing.T) {
	// the package runs two levels below the module root
	err := NewSchemaValidator().ValidateFile(
		filepath.Join("..", "..", "configs", "producers.json"),
		filepath.Join("configs", configs.ProducersSchemaPath),
	)
	assert.NoError(t, err)
}

func TestProducersSchema(t *testing.T) {
	v := NewFSSchemaValidator(configs.Schemas)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", `{"producers": [{"id": "oven", "display_name": "Oven", "base_cost": 50, "base_yield": 0.5}]}`, false},
		{"lowest growing cost", `{"producers": [{"id": "oven", "display_name": "Oven", "base_cost": 7, "base_yield": 0}]}`, false},
		{"cost that never grows", `{"producers": [{"id": "penny", "display_name": "Penny", "base_cost": 1, "base_yield": 1}]}`, true},
		{"fractional cost", `{"producers": [{"id": "oven", "display_name": "Oven", "base_cost": 50.5, "base_yield": 1}]}`, true},
		{"negative yield", `{"producers": [{"id": "oven", "display_name": "Oven", "base_cost": 50, "base_yield": -1}]}`, true},
		{"missing yield", `{"producers": [{"id": "oven", "display_name": "Oven", "base_cost": 50}]}`, true},
		{"unknown field", `{"producers": [{"id": "oven", "display_name": "Oven", "base_cost": 50, "base_yield": 1, "owned": 3}]}`, true},
		{"separator in id", `{"producers": [{"id": "a:b", "display_name": "AB", "base_cost": 50, "base_yield": 1}]}`, true},
		{"no producers", `{"producers": []}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), configs.ProducersSchemaPath)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSchemaViolation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
