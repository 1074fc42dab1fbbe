package props

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/devmk/pkg/errors"
)

// ParseProperty splits "key=value" on the first '='.
// The value may be empty or contain further '=' characters.
func ParseProperty(line string) (Property, error) {
	key, value, ok := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return Property{}, errors.Newf(errors.ErrPropsParse, "invalid property %q: expected key=value", line).
			WithDetail("line", line)
	}
	return Property{Key: key, Value: value}, nil
}

// ParseBuildProp reads a build.prop style file into an ordered property set.
// Blank lines, comments and import directives are skipped; a repeated key keeps
// its first position and takes the last value.
func ParseBuildProp(r io.Reader) (*Properties, error) {
	props := NewProperties()
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "import ") {
			continue
		}

		prop, err := ParseProperty(line)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPropsParse, "line %d", lineNo).
				WithDetail("line", lineNo)
		}
		props.Set(prop.Key, prop.Value)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrPropsParse, "failed to read properties")
	}

	return props, nil
}
