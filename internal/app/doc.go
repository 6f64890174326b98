// Package app contains the core benchmark logic. It defines the App
// struct, its configuration, and the single-run lifecycle, decoupled from
// any specific entrypoint like a CLI.
package app
