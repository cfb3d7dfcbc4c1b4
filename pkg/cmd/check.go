package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sqlfront/sqlfront/pkg/parser"
	"github.com/urfave/cli/v3"
)

// checkCmd creates a CLI command that parses SQL files and reports syntax
// errors. Valid files produce no output. Errors are printed one per file
// with their position and classification, e.g.
//
//	schema.sql: 1:18: structural mismatch: unexpected token ")"
//
// The command exits non-zero when any file fails to parse, which makes it
// suitable for CI checks.
func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Parse SQL files and report syntax errors",
		ArgsUsage: "<path> [<path>...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("at least one path argument is required")
			}

			failed := 0
			for _, path := range cmd.Args().Slice() {
				content, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "failed to read file: %s", path)
				}

				if _, err := parser.ParseString(string(content)); err != nil {
					failed++
					if _, err := fmt.Fprintf(cmd.Writer, "%s: %v\n", path, err); err != nil {
						return errors.Wrap(err, "failed to write check output")
					}
				}
			}

			if failed > 0 {
				return errors.Errorf("%d of %d file(s) failed to parse", failed, cmd.Args().Len())
			}

			return nil
		},
	}
}
