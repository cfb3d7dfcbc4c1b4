package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sqlfront/sqlfront/pkg/consts"
	"github.com/sqlfront/sqlfront/pkg/format"
	"github.com/sqlfront/sqlfront/pkg/parser"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting SQL files. It provides
// goimports-like behavior: formatted SQL goes to stdout by default, and the
// -w flag rewrites files in place.
//
// Path handling:
//   - File paths: format the specified SQL file directly
//   - Directory paths: recursively find and format all .sql files
//
// Examples:
//
//	# Format single file to stdout
//	sqlfront fmt schema.sql
//
//	# Format single file in-place
//	sqlfront fmt -w schema.sql
//
//	# Format all SQL files in directory tree in-place
//	sqlfront fmt -w db/
//
// All SQL must parse; files with syntax errors cause the command to fail
// without touching any file.
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			opts, err := formatOptions(cmd)
			if err != nil {
				return err
			}

			return formatPath(cmd.Args().First(), opts, cmd.Bool("write"), cmd.Writer)
		},
	}
}

// formatPath dispatches to file or directory formatting based on the input
// type.
func formatPath(path string, opts format.Options, writeBack bool, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, opts, writeBack, writer)
	}

	return formatFile(path, opts, writeBack, writer)
}

// formatDirectory recursively walks a directory and formats all .sql files
// in lexicographical order.
func formatDirectory(dir string, opts format.Options, writeBack bool, writer io.Writer) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := formatFile(sqlFile, opts, writeBack, writer); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile formats a single SQL file and either writes to stdout or back
// to the file.
func formatFile(path string, opts format.Options, writeBack bool, writer io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	sql, err := parser.ParseString(string(content))
	if err != nil {
		return errors.Wrapf(err, "failed to parse SQL in file: %s", path)
	}

	var buf strings.Builder
	if err := format.FormatSQL(&buf, opts, sql); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	formatted := buf.String()
	if formatted != "" {
		formatted += "\n"
	}

	if writeBack {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	if _, err := fmt.Fprint(writer, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
