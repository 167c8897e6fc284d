// Package api serves block generation and width mapping over HTTP so editor
// integrations that cannot link Go code can call them.
//
// # Endpoints
//
//	POST /v1/blocks     generate a block from columns/ratios, a preset, or custom ratio text
//	GET  /v1/presets    list presets with localized titles (?lang=zh)
//	GET  /v1/width      map column metadata to a style (?metadata=30)
//	POST /v1/render     apply widths and divider variables to an HTML body
//	GET  /v1/settings   read settings
//	PUT  /v1/settings   replace settings
//	GET  /healthz       liveness
//
// Errors are JSON objects with the machine-readable code and a message:
//
//	{"code": "MALFORMED_RATIO_INPUT", "message": "ratios must sum to 100, got 80"}
//
// Input errors answer 400; everything else 500.
package api
