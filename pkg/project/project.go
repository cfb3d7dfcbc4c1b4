package project

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sqlfront/sqlfront/pkg/consts"
	"github.com/sqlfront/sqlfront/pkg/parser"
)

var (
	//go:embed embed/schema.sql
	defaultSchemaSQL []byte

	//go:embed embed/sqlfront.yaml
	defaultConfig []byte

	image = fstest.MapFS{
		"db":            {Mode: os.ModeDir | consts.ModeDir},
		"db/schema.sql": {Data: defaultSchemaSQL},
		ConfigFile:      {Data: defaultConfig},
	}
)

type (
	// InitOptions customizes project initialization. The zero value uses the
	// defaults from the embedded configuration.
	InitOptions struct {
		// IndentSize overrides the formatter indent written to the generated
		// configuration.
		IndentSize int
	}

	// Project manages a directory holding DDL files and a sqlfront.yaml
	// configuration.
	Project struct {
		root   string
		config *Config
	}
)

// New creates a Project rooted at path. The path should point to an existing
// directory.
func New(path string) *Project {
	return &Project{root: path}
}

// Initialize sets up the project directory structure and loads the
// configuration. It is idempotent: only missing files and directories are
// created, existing content is preserved.
func (p *Project) Initialize(options InitOptions) error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		if _, err := os.Stat(fullPath); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to stat %s", fullPath)
		}

		if entry.Mode.IsDir() {
			if err := os.MkdirAll(fullPath, entry.Mode.Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", fullPath)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(fullPath), consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create parent directory for %s", fullPath)
		}

		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file %s", fullPath)
		}
	}

	cfg, err := LoadConfigFile(filepath.Join(p.root, ConfigFile))
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", ConfigFile)
	}

	if options.IndentSize > 0 && options.IndentSize != cfg.Formatter.IndentSize {
		cfg.Formatter.IndentSize = options.IndentSize
		if err := p.writeConfig(cfg); err != nil {
			return err
		}
	}

	p.config = cfg
	return nil
}

// Config returns the loaded configuration, or nil before Initialize.
func (p *Project) Config() *Config {
	return p.config
}

// ParseSchema parses the project's entrypoint SQL file.
func (p *Project) ParseSchema() (*parser.SQL, error) {
	if p.config == nil {
		return nil, errors.New("project not initialized - call Initialize() first")
	}

	path := filepath.Join(p.root, p.config.Entrypoint)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open entrypoint: %s", path)
	}
	defer func() { _ = f.Close() }()

	return parser.Parse(f)
}

func (p *Project) writeConfig(cfg *Config) error {
	path := filepath.Join(p.root, ConfigFile)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open config file for writing: %s", path)
	}
	defer func() { _ = f.Close() }()

	encoder := yaml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to write updated config")
	}
	return errors.Wrap(encoder.Close(), "failed to close yaml encoder")
}

func (p *Project) ensureDirectory() error {
	dir, err := os.Stat(p.root)
	if err != nil {
		return errors.Wrapf(err, "failed to stat dir: %s", p.root)
	}

	if !dir.IsDir() {
		return errors.Errorf("%s is not a directory", p.root)
	}

	return nil
}
