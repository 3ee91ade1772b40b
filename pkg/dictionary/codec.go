package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// format identifies a translation file encoding, derived from the file
// extension.
type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// decode parses raw file content into a Dict, flattening nested objects
// into dotted keys. Document order is preserved so the Dict iterates keys
// the way the file lists them.
func decode(data []byte, f format) (*Dict, error) {
	switch f {
	case formatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) (*Dict, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrParse)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrParse)
	}
	d := New()
	if err := flattenJSON(d, "", root); err != nil {
		return nil, err
	}
	return d, nil
}

func flattenJSON(d *Dict, prefix string, obj gjson.Result) error {
	var walkErr error
	obj.ForEach(func(key, value gjson.Result) bool {
		fullKey := key.String()
		if prefix != "" {
			fullKey = prefix + "." + fullKey
		}
		switch {
		case value.IsObject():
			walkErr = flattenJSON(d, fullKey, value)
		case value.IsArray():
			walkErr = fmt.Errorf("%w: array value at %q", ErrParse, fullKey)
		case value.Type == gjson.Null:
			walkErr = d.Set(fullKey, "")
		default:
			// Numbers and booleans are kept as their literal text, same as
			// string values.
			walkErr = d.Set(fullKey, value.String())
		}
		return walkErr == nil
	})
	return walkErr
}

func decodeYAML(data []byte) (*Dict, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		// An empty YAML file is an empty dictionary.
		return New(), nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrParse)
	}
	d := New()
	if err := flattenYAML(d, "", mapping); err != nil {
		return nil, err
	}
	return d, nil
}

func flattenYAML(d *Dict, prefix string, mapping *yaml.Node) error {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]
		fullKey := keyNode.Value
		if prefix != "" {
			fullKey = prefix + "." + fullKey
		}
		switch valueNode.Kind {
		case yaml.MappingNode:
			if err := flattenYAML(d, fullKey, valueNode); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if err := d.Set(fullKey, valueNode.Value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unsupported value at %q", ErrParse, fullKey)
		}
	}
	return nil
}

// encode renders the Dict in canonical nested form: keys sorted, two-space
// indent, trailing newline, non-ASCII text left unescaped.
func encode(d *Dict, f format) ([]byte, error) {
	nested, err := nest(d)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch f {
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(nested); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrWrite, err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrWrite, err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nested); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrWrite, err)
		}
	}
	return buf.Bytes(), nil
}

// nest converts the flat Dict into a nested object tree. Keys are walked in
// sorted order so conflict reporting is deterministic.
func nest(d *Dict) (map[string]any, error) {
	keys := d.Keys()
	sort.Strings(keys)

	root := make(map[string]any)
	for _, key := range keys {
		value, _ := d.Get(key)
		segments := strings.Split(key, ".")
		node := root
		for i, segment := range segments[:len(segments)-1] {
			child, ok := node[segment]
			if !ok {
				next := make(map[string]any)
				node[segment] = next
				node = next
				continue
			}
			childMap, ok := child.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %q is both a value and a prefix", ErrKeyConflict, strings.Join(segments[:i+1], "."))
			}
			node = childMap
		}
		last := segments[len(segments)-1]
		if _, exists := node[last]; exists {
			return nil, fmt.Errorf("%w: %q is both a value and a prefix", ErrKeyConflict, key)
		}
		node[last] = value
	}
	return root, nil
}
