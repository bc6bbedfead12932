// Package main provides the CLI entrypoint for traitgen.
//
// traitgen is a codegen tool that:
//   - Loads a JSON Schema document (draft 4) from JSON or YAML
//   - Compiles it into an ordered graph of named class definitions
//   - Emits a traitlets-based Python API module for the schema
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"traitgen/internal/emit"
	"traitgen/internal/extract"
	"traitgen/internal/schema"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "traitgen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("traitgen", flag.ContinueOnError)

	var (
		schemaPath = fs.String("schema", "", "path to the schema document (.json, .yaml, .yml)")
		configPath = fs.String("config", "", "path to a traitgen.yaml configuration file")
		moduleName = fs.String("name", "", "name of the generated module directory")
		outputDir  = fs.String("out", "", "directory to write the module into")
		rootName   = fs.String("root-name", "", "classname for the document root")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *schemaPath == "" {
		return fmt.Errorf("missing required -schema flag")
	}

	cfg := emit.DefaultConfig()

	if *configPath != "" {
		loaded, err := emit.LoadConfig(*configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	// Flags override the config file.
	if *moduleName != "" {
		cfg.ModuleName = *moduleName
	}

	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if *rootName != "" {
		cfg.RootName = *rootName
	}

	document, err := schema.LoadFile(*schemaPath)
	if err != nil {
		return err
	}

	ctx := extract.NewContext()
	ctx.RootName = cfg.RootName

	root := schema.New(document, ctx)

	tree, err := emit.SourceTree(root, cfg, time.Now())
	if err != nil {
		return err
	}

	modulePath, err := emit.WriteModule(tree, cfg.ModuleName, cfg.OutputDir)
	if err != nil {
		return err
	}

	fmt.Println("module written to", modulePath)

	return nil
}
