// Package cmd provides the sqltidy CLI commands.
//
// Commands are constructed as urfave/cli commands and assembled into the
// application through an fx module; Run wires the application into the fx
// lifecycle so that command failures shut the process down with a non-zero
// exit code.
package cmd
