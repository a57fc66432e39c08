// Package config holds the server configuration and loads it from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the per-project configuration file.
const FileName = ".texlsp.yaml"

// Config is the complete server configuration.
type Config struct {
	// RootDir overrides the directory against which include links are
	// resolved when a document has no usable directory of its own.
	RootDir string       `yaml:"rootDir"`
	Syntax  SyntaxConfig `yaml:"syntax"`
}

// SyntaxConfig lists the command names the LaTeX parser recognizes. Names are
// given without the leading backslash. VerbatimEnvironments names the
// environments whose body the parser keeps as plain text.
type SyntaxConfig struct {
	CitationCommands            []string `yaml:"citationCommands"`
	LabelDefinitionCommands     []string `yaml:"labelDefinitionCommands"`
	LabelReferenceCommands      []string `yaml:"labelReferenceCommands"`
	LabelReferenceRangeCommands []string `yaml:"labelReferenceRangeCommands"`
	IncludeCommands             []string `yaml:"includeCommands"`
	BibliographyIncludeCommands []string `yaml:"bibliographyIncludeCommands"`
	ClassIncludeCommands        []string `yaml:"classIncludeCommands"`
	VerbatimEnvironments        []string `yaml:"verbatimEnvironments"`

	sets     map[CommandKind]map[string]struct{}
	verbatim map[string]struct{}
}

// CommandKind classifies a LaTeX command for the parser.
type CommandKind int

const (
	GenericCommand CommandKind = iota
	CitationCommand
	LabelDefinitionCommand
	LabelReferenceCommand
	LabelReferenceRangeCommand
	IncludeCommand
	BibliographyIncludeCommand
	ClassIncludeCommand
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Syntax: SyntaxConfig{
			CitationCommands:            slices.Clone(defaultCitationCommands),
			LabelDefinitionCommands:     slices.Clone(defaultLabelDefinitionCommands),
			LabelReferenceCommands:      slices.Clone(defaultLabelReferenceCommands),
			LabelReferenceRangeCommands: slices.Clone(defaultLabelReferenceRangeCommands),
			IncludeCommands:             slices.Clone(defaultIncludeCommands),
			BibliographyIncludeCommands: slices.Clone(defaultBibliographyIncludeCommands),
			ClassIncludeCommands:        slices.Clone(defaultClassIncludeCommands),
			VerbatimEnvironments:        slices.Clone(defaultVerbatimEnvironments),
		},
	}
	cfg.Syntax.index()
	return cfg
}

// Load reads the YAML file at path and merges it over the defaults. Lists in
// the file extend the built-in lists instead of replacing them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data and merges it over the defaults.
func Parse(data []byte) (*Config, error) {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	if file.RootDir != "" {
		cfg.RootDir = file.RootDir
	}

	s := &cfg.Syntax
	s.CitationCommands = appendUnique(s.CitationCommands, file.Syntax.CitationCommands)
	s.LabelDefinitionCommands = appendUnique(s.LabelDefinitionCommands, file.Syntax.LabelDefinitionCommands)
	s.LabelReferenceCommands = appendUnique(s.LabelReferenceCommands, file.Syntax.LabelReferenceCommands)
	s.LabelReferenceRangeCommands = appendUnique(s.LabelReferenceRangeCommands, file.Syntax.LabelReferenceRangeCommands)
	s.IncludeCommands = appendUnique(s.IncludeCommands, file.Syntax.IncludeCommands)
	s.BibliographyIncludeCommands = appendUnique(s.BibliographyIncludeCommands, file.Syntax.BibliographyIncludeCommands)
	s.ClassIncludeCommands = appendUnique(s.ClassIncludeCommands, file.Syntax.ClassIncludeCommands)
	s.VerbatimEnvironments = appendUnique(s.VerbatimEnvironments, file.Syntax.VerbatimEnvironments)
	s.index()

	return cfg, nil
}

// Discover finds the configuration for a project: an explicit path wins,
// then <root>/.texlsp.yaml, then <user config dir>/texlsp/config.yaml. When
// no file exists the defaults are returned.
func Discover(explicit, projectRoot string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	var candidates []string
	if projectRoot != "" {
		candidates = append(candidates, filepath.Join(projectRoot, FileName))
	}
	if dir, err := userConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "texlsp", "config.yaml"))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to check config %s: %w", candidate, err)
		}
		return Load(candidate)
	}

	return Default(), nil
}

func userConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		usr, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("failed to get current user: %w", err)
		}
		return filepath.Join(usr.HomeDir, ".config"), nil
	}
	return configDir, nil
}

// Classify returns the kind of the command with the given name (without the
// backslash).
func (s *SyntaxConfig) Classify(name string) CommandKind {
	sets := s.sets
	if sets == nil {
		sets = s.buildSets()
	}
	for _, kind := range classifyOrder {
		if _, ok := sets[kind][name]; ok {
			return kind
		}
	}
	return GenericCommand
}

// IsVerbatimEnvironment reports whether the body of the environment with the
// given name is kept as plain text.
func (s *SyntaxConfig) IsVerbatimEnvironment(name string) bool {
	verbatim := s.verbatim
	if verbatim == nil {
		verbatim = toSet(s.VerbatimEnvironments)
	}
	_, ok := verbatim[name]
	return ok
}

var classifyOrder = []CommandKind{
	LabelDefinitionCommand,
	LabelReferenceRangeCommand,
	LabelReferenceCommand,
	CitationCommand,
	BibliographyIncludeCommand,
	IncludeCommand,
	ClassIncludeCommand,
}

func (s *SyntaxConfig) index() {
	s.sets = s.buildSets()
	s.verbatim = toSet(s.VerbatimEnvironments)
}

func (s *SyntaxConfig) buildSets() map[CommandKind]map[string]struct{} {
	return map[CommandKind]map[string]struct{}{
		CitationCommand:            toSet(s.CitationCommands),
		LabelDefinitionCommand:     toSet(s.LabelDefinitionCommands),
		LabelReferenceCommand:      toSet(s.LabelReferenceCommands),
		LabelReferenceRangeCommand: toSet(s.LabelReferenceRangeCommands),
		IncludeCommand:             toSet(s.IncludeCommands),
		BibliographyIncludeCommand: toSet(s.BibliographyIncludeCommands),
		ClassIncludeCommand:        toSet(s.ClassIncludeCommands),
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func appendUnique(base, extra []string) []string {
	seen := toSet(base)
	for _, name := range extra {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		base = append(base, name)
	}
	return base
}
