// Package schemas embeds the JSON schemas used to validate input files.
package schemas

import _ "embed"

// StoriesSchemaJSON is the schema for YAML stories files.
//
//go:embed stories.schema.json
var StoriesSchemaJSON string
