package bough

// Version is the library version, surfaced by the CLI and the HTTP health
// endpoint.
var Version = "0.2.0"
