package inspect

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tom-tan/cwl-inspector/internal/cwlexpr"
	"github.com/tom-tan/cwl-inspector/pkg/cwl"
)

// globSpecials are the characters filepath.Match treats specially. A
// pattern containing any of them is kept as a literal dynamic path
// instead of being expanded.
const globSpecials = `*?[\`

// LocateOutputs determines the file or files an output parameter
// denotes. A stdout-typed output maps to the tool's declared stdout
// filename (a randomized placeholder when undeclared); any other
// output needs an outputBinding with a glob pattern, which is
// instantiated against env and expanded under the output directory.
//
// A failed or empty glob yields an empty list, not an error.
func LocateOutputs(doc *cwl.Document, pos string, env *Environment) (any, error) {
	v, err := Resolve(doc, pos)
	if err != nil {
		return nil, &InvalidPathError{Path: pos}
	}
	out, ok := v.(*cwl.OutputParameter)
	if !ok || out == nil {
		return nil, &InvalidPathError{Path: pos}
	}

	if t, _ := out.Type.(string); t == "stdout" {
		return locateStdout(doc, env)
	}

	if out.OutputBinding == nil {
		return nil, &UnsupportedOutputError{ID: out.ID}
	}
	return locateGlob(out.OutputBinding, env)
}

// locateStdout resolves the filename capturing standard output.
func locateStdout(doc *cwl.Document, env *Environment) (string, error) {
	name := doc.Stdout
	if name == "" {
		// No declared filename; stand in a randomized one.
		name = "stdout_" + uuid.New().String()[:8] + ".txt"
	}

	name, err := instantiate(name, env)
	if err != nil {
		return "", err
	}

	if env.Runtime.OutDir != "" && !filepath.IsAbs(name) {
		return filepath.Join(env.Runtime.OutDir, name), nil
	}
	return name, nil
}

// locateGlob expands the binding's glob pattern(s) into paths.
func locateGlob(binding *cwl.OutputBinding, env *Environment) ([]string, error) {
	results := []string{}
	for _, pat := range globPatterns(binding.Glob) {
		pat, err := instantiate(pat, env)
		if err != nil {
			return nil, err
		}

		if strings.ContainsAny(pat, globSpecials) {
			// Dynamic pattern: report it literally rather than
			// guessing at matches.
			results = append(results, pat)
			continue
		}

		target := pat
		if env.Runtime.OutDir != "" && !filepath.IsAbs(target) {
			target = filepath.Join(env.Runtime.OutDir, pat)
		}
		matches, err := filepath.Glob(target)
		if err != nil {
			continue
		}
		results = append(results, matches...)
	}
	return results, nil
}

// globPatterns normalizes the glob attribute, which may be a single
// pattern or a list of patterns.
func globPatterns(glob any) []string {
	switch g := glob.(type) {
	case string:
		return []string{g}
	case []string:
		return g
	case []any:
		var patterns []string
		for _, item := range g {
			if s, ok := item.(string); ok {
				patterns = append(patterns, s)
			}
		}
		return patterns
	}
	return nil
}

// instantiate substitutes runtime expressions in s against env.
func instantiate(s string, env *Environment) (string, error) {
	if !cwlexpr.IsExpression(s) {
		return s, nil
	}
	return cwlexpr.Instantiate(s, &cwlexpr.Context{
		Inputs: env.Args,
		OutDir: env.Runtime.OutDir,
		TmpDir: env.Runtime.TmpDir,
	})
}
