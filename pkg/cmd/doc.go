// Package cmd provides the CLI commands for the sqlfront tool.
//
// # Available Commands
//
//   - fmt: Parse and reformat SQL files, to stdout or in-place
//   - check: Parse SQL files and report syntax errors with positions
//   - init: Initialize a new project structure with a sqlfront.yaml
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are designed
// to be composable and testable, with proper error handling.
package cmd
