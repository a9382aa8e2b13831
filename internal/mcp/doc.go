// Package mcp implements a minimal line-delimited JSON server modeled on the
// MCP handshake-and-request pattern.
//
// The server writes a ready event, then reads one JSON object per line and
// answers each with one JSON line:
//
//	-> {"type":"ready","version":"0.1.0"}
//	<- {"id":1,"method":"hello","params":{"name":"Alice"}}
//	-> {"id":1,"result":{"message":"Hello, Alice!"}}
//
// Only ping and hello are understood. Malformed lines are answered with an
// invalid-json error and unknown methods with method-not-found; neither
// stops the loop.
package mcp
