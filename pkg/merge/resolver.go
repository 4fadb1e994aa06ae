// Package merge resolves mail-merge templates and renders them per row.
//
// A template key is a file base name inside the template directory; each
// key may carry several variants distinguished by extension, typically a
// plain-text file and an HTML sibling sharing the same base name.
package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Variant is one renderable format of a template key.
type Variant struct {
	Key  string
	Ext  string // lowercased, without the leading dot
	File string // file name within the template directory
}

// HTML reports whether the variant renders to HTML content.
func (v Variant) HTML() bool {
	return v.Ext == "htm" || v.Ext == "html"
}

// Set maps template keys to their ordered variants.
type Set map[string][]Variant

// Discover scans dir and groups its files by base name. Dotfiles and
// subdirectories are ignored.
func Discover(dir string) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	set := Set{}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		key := strings.TrimSuffix(name, ext)
		if key == "" {
			continue
		}
		set[key] = append(set[key], Variant{
			Key:  key,
			Ext:  strings.ToLower(strings.TrimPrefix(ext, ".")),
			File: name,
		})
	}

	for key := range set {
		sortVariants(set[key])
	}
	return set, nil
}

// sortVariants puts plain variants before HTML ones, so the resulting
// alternative parts end with HTML and clients that prefer the last part
// pick it. Ties break on extension.
func sortVariants(vs []Variant) {
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].HTML() != vs[j].HTML() {
			return !vs[i].HTML()
		}
		return vs[i].Ext < vs[j].Ext
	})
}

// Variants returns the ordered variants for key. A key with no variants
// is an error.
func (s Set) Variants(key string) ([]Variant, error) {
	vs := s[key]
	if len(vs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, key)
	}
	return vs, nil
}

// Keys returns the sorted template keys.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
