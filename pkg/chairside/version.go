// Package chairside holds project-level metadata shared by the CLI.
package chairside

// Version is the current release version of chairside.
const Version = "0.1.0"
