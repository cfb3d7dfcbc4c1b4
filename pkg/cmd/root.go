package cmd

import (
	"os"

	"github.com/sqlfront/sqlfront/pkg/format"
	"github.com/sqlfront/sqlfront/pkg/project"
	"github.com/urfave/cli/v3"
)

// Root assembles the top-level CLI command.
func Root(version string) *cli.Command {
	return &cli.Command{
		Name:  "sqlfront",
		Usage: "Parse, check, and format ANSI SQL DDL files",
		Description: `sqlfront is a CLI tool for working with ANSI SQL DDL files. It parses
CREATE/DROP SCHEMA and CREATE/DROP TABLE statements into a typed syntax
tree and re-renders them in a canonical layout.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfront config file",
				Sources: cli.EnvVars("SQLFRONT_CONFIG"),
				Value:   project.ConfigFile,
			},
		},
		Commands: []*cli.Command{
			fmtCmd(),
			checkCmd(),
			initCmd(),
		},
	}
}

// formatOptions resolves the formatter options from the configured project
// file, falling back to the defaults when the file does not exist.
func formatOptions(cmd *cli.Command) (format.Options, error) {
	path := cmd.String("config")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return format.Defaults, nil
	}

	cfg, err := project.LoadConfigFile(path)
	if err != nil {
		return format.Options{}, err
	}
	return cfg.FormatOptions(), nil
}
