package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/spf13/cobra"

	"github.com/texlsp/texlsp/internal/config"
	"github.com/texlsp/texlsp/internal/lsp"
	"github.com/texlsp/texlsp/internal/lsp/definition"
	"github.com/texlsp/texlsp/internal/lsp/hover"
	"github.com/texlsp/texlsp/internal/lsp/reference"
	"github.com/texlsp/texlsp/internal/lsp/rename"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:           "texlsp",
		Short:         "Language server for LaTeX and BibTeX",
		Long:          `texlsp answers hover, definition, reference and rename requests for LaTeX projects and their BibTeX bibliographies over stdio.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serves the language server protocol on stdin and stdout",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "texlsp %s\n", version)
		},
	}

	configPath  string
	logFile     string
	metricsAddr string
	trace       bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default: discovered from the project root)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. localhost:9464")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log every JSON-RPC message")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(debugCSTCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol, so logs never go there
	log.SetOutput(os.Stderr)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if configPath != "" {
		if _, err := config.Load(configPath); err != nil {
			return err
		}
	}

	server := lsp.NewServer(lsp.Options{ConfigPath: configPath, Version: version})
	server.RegisterHoverProvider(hover.NewStringReferenceHoverProvider())
	server.RegisterDefinitionProvider(definition.NewLabelDefinitionProvider())
	server.RegisterDefinitionProvider(definition.NewEntryDefinitionProvider())
	server.RegisterDefinitionProvider(definition.NewStringDefinitionProvider())
	server.RegisterReferencesProvider(reference.NewLabelReferenceProvider())
	server.RegisterReferencesProvider(reference.NewEntryReferenceProvider())
	server.RegisterRenameProvider(rename.NewEntryProvider())
	server.RegisterRenameProvider(rename.NewLabelProvider())

	if metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			log.Printf("Serving metrics on %s", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.Printf("Metrics server error: %v", err)
			}
		}()
	}

	var opts []jsonrpc2.ConnOpt
	if trace {
		opts = append(opts, jsonrpc2.LogMessages(log.Default()))
	}

	if err := server.Start(os.Stdin, os.Stdout, opts...); err != nil {
		return fmt.Errorf("LSP server error: %w", err)
	}
	return nil
}
