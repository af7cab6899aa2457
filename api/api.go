// Package api embeds the OpenAPI description of the HTTP interface.
package api

import _ "embed"

// Spec is the raw OpenAPI 3 document.
//
//go:embed openapi.yml
var Spec []byte
