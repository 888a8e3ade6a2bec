// Package common provides shared helpers for MCP tool packages:
// account extraction from request arguments and handler wrappers that
// record invocation metrics and structured audit logs.
package common
