package merge

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"io/fs"
	texttemplate "text/template"
)

// executor is the common surface of text/template and html/template.
type executor interface {
	Execute(w io.Writer, data any) error
}

// parsed holds one template file's metadata and its compiled form.
type parsed struct {
	meta map[string]any
	exec executor
}

// Renderer renders template variants against per-row contexts. Parsed
// templates are cached, so rendering the same variant for every row only
// parses the file once. Rendering itself is stateless: the same variant
// and context always produce the same output.
type Renderer struct {
	fsys  fs.FS
	cache map[string]*parsed
}

// NewRenderer creates a Renderer over the given template filesystem.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys:  fsys,
		cache: make(map[string]*parsed),
	}
}

// Render executes one variant with the row context. HTML variants render
// through html/template (auto-escaped), everything else through
// text/template; both fail on missing context variables.
func (r *Renderer) Render(v Variant, data map[string]any) (string, error) {
	p, err := r.load(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := p.exec.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrRender, v.File, err)
	}
	return buf.String(), nil
}

// Subject returns the frontmatter subject of the first variant declaring
// one, or "" when none does.
func (r *Renderer) Subject(vs []Variant) string {
	for _, v := range vs {
		p, err := r.load(v)
		if err != nil {
			continue
		}
		if s, ok := p.meta["subject"].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func (r *Renderer) load(v Variant) (*parsed, error) {
	if p, ok := r.cache[v.File]; ok {
		return p, nil
	}

	raw, err := fs.ReadFile(r.fsys, v.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, v.File, err)
	}

	meta, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.File, err)
	}

	var exec executor
	if v.HTML() {
		t, err := htmltemplate.New(v.File).Option("missingkey=error").Parse(body)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrRender, v.File, err)
		}
		exec = t
	} else {
		t, err := texttemplate.New(v.File).Option("missingkey=error").Parse(body)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrRender, v.File, err)
		}
		exec = t
	}

	p := &parsed{meta: meta, exec: exec}
	r.cache[v.File] = p
	return p, nil
}
