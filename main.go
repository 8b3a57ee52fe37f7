package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/webasoo/routedoc/core"
)

func commandName() string {
	if len(os.Args) == 0 {
		return "routedoc"
	}
	base := filepath.Base(os.Args[0])
	if strings.HasSuffix(strings.ToLower(base), ".exe") {
		base = base[:len(base)-len(filepath.Ext(base))]
	}
	base = strings.TrimSpace(base)
	if base == "" || strings.EqualFold(base, "main") {
		return "routedoc"
	}
	return base
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate", "gen":
		if err := runGenerate(os.Args[2:]); err != nil {
			log.Fatalf("routedoc generate: %v", err)
		}
	case "help", "-h", "--help", "-help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	manifest := fs.String("manifest", "routedoc.yaml", "route manifest to document")
	output := fs.String("o", "openapi.json", "output file")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s generate [flags]\n\n", commandName())
		fmt.Fprintln(fs.Output(), "Flags:")
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output())
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	m, err := core.LoadManifest(strings.TrimSpace(*manifest))
	if err != nil {
		return err
	}

	spec, err := core.NewGenerator(m.Config).GenerateJSON(m.Registry().Snapshot())
	if err != nil {
		return err
	}

	dst := filepath.Clean(strings.TrimSpace(*output))
	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(dst, spec, 0o644); err != nil {
		return fmt.Errorf("write spec: %w", err)
	}

	fmt.Printf("generated %s\n", dst)
	return nil
}

func printUsage() {
	cmd := commandName()
	fmt.Printf(`%s - OpenAPI document generator

Usage: %s <command> [arguments]

Available Commands:
  generate    Read a route manifest and emit openapi.json
  help        Show this help message

Examples:
  %[1]s generate
  %[1]s generate -manifest api/routes.yaml -o api/openapi.json
`, cmd, cmd)
}
