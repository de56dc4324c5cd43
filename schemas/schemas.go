// Package schemas embeds the JSON schemas for the field types this module
// registers.
package schemas

import _ "embed"

// FakerSchema is the JSON schema for faker field specs.
//
//go:embed faker.schema.json
var FakerSchema []byte
