package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sqlfront/sqlfront/pkg/consts"
	"github.com/sqlfront/sqlfront/pkg/project"
	"github.com/urfave/cli/v3"
)

// initCmd creates a CLI command that scaffolds a new project: a sqlfront.yaml
// configuration and a db/schema.sql entrypoint. Initialization is idempotent,
// so running it in an existing project only fills in missing pieces.
//
// Examples:
//
//	# Initialize the current directory
//	sqlfront init
//
//	# Initialize a new directory with 2-space indentation
//	sqlfront init --indent 2 ./myproject
func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new project",
		ArgsUsage: "[<dir>]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "indent",
				Usage: "Formatter indent size written to the generated config",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one directory argument is allowed")
			}

			dir := cmd.Args().First()
			if dir == "" {
				dir = "."
			}

			if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create directory: %s", dir)
			}

			p := project.New(dir)
			if err := p.Initialize(project.InitOptions{IndentSize: int(cmd.Int("indent"))}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.Writer, "Initialized project in %s\n", dir)
			return errors.Wrap(err, "failed to write init output")
		},
	}
}
