// Package constants centralizes limits and defaults shared across the CLI.
//
// Keeping the input size cap and record count in one place prevents magic
// numbers from scattering across cmd/ and internal/.
package constants
