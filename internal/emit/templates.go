package emit

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"traitgen/internal/schema"
)

// Version is recorded in every generated file header.
const Version = "0.1.0"

var headerTemplate = template.Must(template.New("header").Parse(
	`# -*- coding: {{.Encoding}} -*-
# Auto-generated by traitgen: do not modify file directly
# - traitgen version: {{.Version}}
# - date:    {{.Date}}
`))

var moduleTemplate = template.Must(template.New("module").Parse(
	`{{range .BaseImports}}{{.}}
{{end}}

def _localname(name):
    """Construct an object name relative to the local module"""
    return "{0}.{1}".format(__name__, name)

{{range .Classes}}
{{.}}
{{end}}`))

// renderHeader renders the shared file header.
func renderHeader(encoding string, now time.Time) (string, error) {
	var buf bytes.Buffer

	err := headerTemplate.Execute(&buf, map[string]string{
		"Encoding": encoding,
		"Version":  Version,
		"Date":     now.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", fmt.Errorf("rendering file header: %w", err)
	}

	return buf.String(), nil
}

// renderModule renders the schema module body: base imports, the local-name
// helper, then every class in emission order.
func renderModule(root *schema.Node) (string, error) {
	classNodes, err := root.ModuleClasses()
	if err != nil {
		return "", fmt.Errorf("ordering module classes: %w", err)
	}

	classes := make([]string, 0, len(classNodes))

	for _, node := range classNodes {
		code, err := node.ObjectCode()
		if err != nil {
			return "", fmt.Errorf("rendering class code: %w", err)
		}

		classes = append(classes, code)
	}

	var buf bytes.Buffer

	err = moduleTemplate.Execute(&buf, map[string]any{
		"BaseImports": root.Context().BaseImports,
		"Classes":     classes,
	})
	if err != nil {
		return "", fmt.Errorf("rendering module body: %w", err)
	}

	return buf.String(), nil
}
