// Package pkguid generates identifiers.
//
// StringID backs request correlation IDs (UUIDv7). NumberID backs entity keys
// (Snowflake), which the HTTP layer renders as decimal strings.
package pkguid
