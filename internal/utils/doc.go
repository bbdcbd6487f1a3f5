// Package utils provides general-purpose helper utilities used across the
// client: the resty-based HTTP client, access-token inspection and
// identifier generation.
package utils
