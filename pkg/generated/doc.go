// Package generated contains the generated code for gRPC client and server
// stubs, and an OpenAPIv2 (swagger) JSON declaration, from the protobuf
// source in api/primegen.proto. Run `buf generate` from the repo root to
// refresh the stubs.
package generated

import _ "embed"

//go:generate buf generate

// SwaggerJSON contains the generated OpenAPIv2 (swagger) declaration exposed
// by REST endpoint.
//go:embed primegen.swagger.json
var SwaggerJSON []byte
