package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/texlsp/texlsp/internal/config"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/syntax/latex"
	"github.com/texlsp/texlsp/internal/workspace"
)

var (
	debugCSTCmd = &cobra.Command{
		Use:   "debug-cst [file]",
		Short: "Prints the concrete syntax tree of a LaTeX or BibTeX file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDebugCST,
	}
	debugFormat string
)

func init() {
	debugCSTCmd.Flags().StringVarP(&debugFormat, "format", "f", "text", "output format: text or json")
}

func runDebugCST(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return writeCST(cmd.OutOrStdout(), path, string(text), debugFormat, &cfg.Syntax)
}

// writeCST parses text according to the file name of path and writes the
// tree in the given format.
func writeCST(w io.Writer, path, text, format string, cfg *config.SyntaxConfig) error {
	uri := "file://" + filepath.ToSlash(path)
	language, ok := workspace.LanguageFromURI(uri)
	if !ok {
		return fmt.Errorf("unsupported file %s", path)
	}

	var root *syntax.Node
	var names syntax.KindNamer
	switch data := workspace.NewDocument(uri, text, 0, language, cfg).Data.(type) {
	case *workspace.TexData:
		root, names = data.Root, latex.KindName
	case *workspace.BibData:
		root, names = data.Root, bibtex.KindName
	case *workspace.AuxData:
		root, names = data.Root, latex.KindName
	default:
		return fmt.Errorf("%s documents have no syntax tree", language)
	}

	switch format {
	case "text":
		return syntax.Dump(w, root, names)
	case "json":
		data, err := json.Marshal(syntax.Debug(root, names))
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		if data, err = sjson.SetBytes(data, "file", path); err != nil {
			return fmt.Errorf("failed to annotate tree: %w", err)
		}
		if data, err = sjson.SetBytes(data, "language", language.String()); err != nil {
			return fmt.Errorf("failed to annotate tree: %w", err)
		}
		_, err = w.Write(pretty.Pretty(data))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
