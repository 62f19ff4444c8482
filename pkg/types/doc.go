// Package types defines the domain entities (Client, Template), the data
// source selector constants, and the standard errors shared by the backend
// adapters and the CLI.
package types
