// Package salonsms exposes build identity shared by the CLI and tooling.
package salonsms

const Version = "0.1.0"
