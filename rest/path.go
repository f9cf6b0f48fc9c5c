package rest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oapi-codegen/runtime"
)

var pathParam = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Path expands the {name} placeholders in template with params, in order.
// Each value is styled as an OpenAPI "simple" path parameter, so strings
// are percent-escaped and numbers are formatted in base 10. Anything after
// a placeholder, such as a ":batchUpdate" verb, is kept verbatim.
func Path(template string, params ...any) (string, error) {
	matches := pathParam.FindAllStringSubmatchIndex(template, -1)
	if len(matches) != len(params) {
		return "", fmt.Errorf("path %q expects %d parameters, got %d", template, len(matches), len(params))
	}

	var b strings.Builder
	last := 0
	for i, m := range matches {
		name := template[m[2]:m[3]]

		styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, params[i])
		if err != nil {
			return "", fmt.Errorf("path parameter %s: %w", name, err)
		}
		if styled == "" {
			return "", fmt.Errorf("path parameter %s is empty", name)
		}

		b.WriteString(template[last:m[0]])
		b.WriteString(styled)
		last = m[1]
	}
	b.WriteString(template[last:])

	return b.String(), nil
}
