package terraform

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// moduleDependency is one Terraform module pinned to a git ref.
type moduleDependency struct {
	Name     string // module label
	Source   string // source URL with the ref parameter stripped
	Ref      string // pinned tag from ?ref=
	FilePath string
	Line     int
}

//nolint:gochecknoglobals // compiled once
var (
	// modulePattern matches module blocks when HCL parsing fails.
	modulePattern = regexp.MustCompile(`(?s)module\s+"([^"]+)"\s*\{[^}]*source\s*=\s*"([^"]+)"`)
	refPattern    = regexp.MustCompile(`\?ref=([^&\s"]+)`)
)

// scanFile extracts the git-pinned module dependencies from one Terraform
// file. Sources without a ?ref= pin and non-git sources are skipped: only
// a tag pin can be compared against remote tags.
func scanFile(content, filePath string) []moduleDependency {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL([]byte(content), filePath)
	if diags.HasErrors() {
		return scanWithRegex(content, filePath)
	}

	bodyContent, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "module", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return scanWithRegex(content, filePath)
	}

	var deps []moduleDependency

	for _, block := range bodyContent.Blocks {
		moduleName := ""
		if len(block.Labels) > 0 {
			moduleName = block.Labels[0]
		}

		attrs, _ := block.Body.JustAttributes()
		sourceAttr, hasSource := attrs["source"]
		if !hasSource {
			continue
		}

		sourceVal, diags := sourceAttr.Expr.Value(&hcl.EvalContext{})
		if diags.HasErrors() || sourceVal.Type() != cty.String {
			continue
		}

		dep, ok := newModuleDependency(moduleName, sourceVal.AsString(), filePath, block.DefRange.Start.Line)
		if !ok {
			continue
		}
		deps = append(deps, dep)
	}

	return deps
}

// scanWithRegex is a fallback for files the HCL parser rejects. Pinned
// modules in otherwise broken files still get checked.
func scanWithRegex(content, filePath string) []moduleDependency {
	var deps []moduleDependency

	matches := modulePattern.FindAllStringSubmatchIndex(content, -1)
	for _, match := range matches {
		if len(match) < 6 {
			continue
		}

		moduleName := content[match[2]:match[3]]
		source := content[match[4]:match[5]]
		line := strings.Count(content[:match[0]], "\n") + 1

		dep, ok := newModuleDependency(moduleName, source, filePath, line)
		if !ok {
			continue
		}
		deps = append(deps, dep)
	}

	return deps
}

// newModuleDependency builds a dependency from a raw source string. The
// second return is false when the source is not a git module or has no
// ref pin.
func newModuleDependency(name, source, filePath string, line int) (moduleDependency, bool) {
	if !isGitModule(source) {
		return moduleDependency{}, false
	}

	ref := extractRef(source)
	if ref == "" {
		return moduleDependency{}, false
	}

	return moduleDependency{
		Name:     name,
		Source:   stripRef(source),
		Ref:      ref,
		FilePath: filePath,
		Line:     line,
	}, true
}

// isGitModule checks if the source URL points at a git repository.
func isGitModule(source string) bool {
	return strings.HasPrefix(source, "git::") ||
		strings.HasPrefix(source, "git@") ||
		strings.Contains(source, "github.com") ||
		strings.Contains(source, "gitlab.com") ||
		strings.Contains(source, "bitbucket.org") ||
		strings.Contains(source, "dev.azure.com") ||
		strings.Contains(source, "_git/")
}

// extractRef returns the ?ref= pin from a module source, or empty.
func extractRef(source string) string {
	if matches := refPattern.FindStringSubmatch(source); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// stripRef removes the ?ref= parameter from a module source.
func stripRef(source string) string {
	return refPattern.ReplaceAllString(source, "")
}

// remoteURL reduces a Terraform module source to a listable git URL: the
// git:: prefix, the //subdir suffix, and any query parameters go away. The
// double slash of a URL scheme is preserved.
func remoteURL(source string) string {
	url := strings.TrimPrefix(source, "git::")

	if idx := strings.Index(url, "?"); idx != -1 {
		url = url[:idx]
	}

	if idx := strings.Index(url, "://"); idx != -1 {
		if sub := strings.Index(url[idx+3:], "//"); sub != -1 {
			url = url[:idx+3+sub]
		}
	} else if idx := strings.Index(url, "//"); idx != -1 {
		url = url[:idx]
	}

	return url
}
