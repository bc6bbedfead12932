package emit

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"traitgen/internal/schema"
)

// Static runtime shipped with every generated module.
var (
	//go:embed static/jstraitlets.py
	runtimeSource string

	//go:embed static/test_jstraitlets.py
	runtimeTestSource string
)

// SourceTree assembles the generated module as a {relative path: content}
// map. Paths use forward slashes; the writer maps them onto the local
// filesystem.
//
// The clock is injected so callers (and tests) can pin the header date;
// everything else is fully determined by the document and configuration.
func SourceTree(root *schema.Node, cfg Config, now time.Time) (map[string]string, error) {
	if !root.IsRoot() {
		return nil, errors.New("source tree must be built from the root node")
	}

	header, err := renderHeader(cfg.Encoding, now)
	if err != nil {
		return nil, err
	}

	body, err := renderModule(root)
	if err != nil {
		return nil, err
	}

	imports, err := root.ModuleImports()
	if err != nil {
		return nil, fmt.Errorf("assembling module imports: %w", err)
	}

	imports = append(imports, cfg.ExtraImports...)

	withHeader := func(content string) string {
		return header + "\n" + content
	}

	tree := map[string]string{
		"schema.py":                 withHeader(body),
		"__init__.py":               withHeader(strings.Join(imports, "\n") + "\n"),
		"jstraitlets.py":            withHeader(runtimeSource),
		"tests/__init__.py":         withHeader(""),
		"tests/test_jstraitlets.py": withHeader(runtimeTestSource),
	}

	for _, plugin := range root.Context().Plugins {
		files, err := plugin.CodeFiles(root)
		if err != nil {
			return nil, fmt.Errorf("collecting plugin code files: %w", err)
		}

		for path, content := range files {
			tree[path] = content
		}
	}

	return tree, nil
}
