package configs

import "embed"

// Schemas contains the JSON schemas for the shipped config files.
//
//go:embed schemas/*.json
var Schemas embed.FS

// Schema paths inside Schemas
const (
	ProducersSchemaPath = "schemas/producers.schema.json"
)
