package merge

import "errors"

var (
	// ErrTemplateNotFound indicates the chosen template key has no variant files.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRender indicates template rendering failed.
	ErrRender = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
