package merge

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterSep = []byte("---")

// splitFrontmatter separates optional YAML frontmatter from the template
// body. A template carries frontmatter when it opens with a "---" line;
// everything up to the closing "---" is parsed as YAML metadata.
func splitFrontmatter(content []byte) (map[string]any, string, error) {
	if !bytes.HasPrefix(content, frontmatterSep) {
		return map[string]any{}, string(content), nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterSep), "\r\n")
	end := bytes.Index(rest, frontmatterSep)
	if end == -1 {
		return nil, "", fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	meta := map[string]any{}
	if raw := bytes.TrimSpace(rest[:end]); len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &meta); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	body := rest[end+len(frontmatterSep):]
	body = bytes.TrimPrefix(body, []byte("\r\n"))
	body = bytes.TrimPrefix(body, []byte("\n"))
	return meta, string(body), nil
}
