package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

type violation struct {
	file string
	imp  string
	rule string
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)

	violations := walkImports(t, root, func(rel, imp string) string {
		if strings.HasSuffix(rel, "_test.go") {
			return ""
		}
		layer := layerFor(rel)
		if layer == "" {
			return ""
		}
		for _, bad := range disallowedImports(modulePath, layer) {
			if strings.HasPrefix(imp, bad) {
				return bad
			}
		}
		return ""
	})
	report(t, "import boundary violations", violations)
}

// orderedMapModule backs the first-seen-order JSON objects and is the one
// third-party import analytics may use.
const orderedMapModule = "github.com/wk8/go-ordered-map/v2"

// Analytics is computed from domain records alone; it never reaches for
// storage or transport.
func TestAnalyticsImportsStayNarrow(t *testing.T) {
	root, modulePath := moduleRoot(t)

	violations := walkImports(t, root, func(rel, imp string) string {
		if !strings.HasPrefix(rel, "internal/analytics/") {
			return ""
		}
		if strings.HasPrefix(imp, modulePath+"/internal/domain") {
			return ""
		}
		if imp == orderedMapModule {
			return ""
		}
		if first, _, _ := strings.Cut(imp, "/"); !strings.Contains(first, ".") {
			return ""
		}
		return "domain, stdlib or " + orderedMapModule
	})
	report(t, "analytics import violations", violations)
}

func layerFor(rel string) string {
	switch {
	case strings.HasPrefix(rel, "internal/platform/"):
		return "platform"
	case strings.HasPrefix(rel, "internal/domain/"):
		return "domain"
	case strings.HasPrefix(rel, "internal/data/"):
		return "data"
	case strings.HasPrefix(rel, "internal/services/"):
		return "services"
	case strings.HasPrefix(rel, "internal/http/"):
		return "http"
	default:
		return ""
	}
}

func disallowedImports(modulePath string, layer string) []string {
	switch layer {
	case "platform":
		return []string{
			modulePath + "/internal/domain",
			modulePath + "/internal/data/",
			modulePath + "/internal/services",
			modulePath + "/internal/http",
			modulePath + "/internal/app",
		}
	case "domain":
		return []string{
			modulePath + "/internal/data/",
			modulePath + "/internal/services",
			modulePath + "/internal/http",
			modulePath + "/internal/analytics",
		}
	case "data":
		return []string{
			modulePath + "/internal/services",
			modulePath + "/internal/http",
			modulePath + "/internal/analytics",
		}
	case "services":
		return []string{
			modulePath + "/internal/http",
			modulePath + "/internal/app",
		}
	case "http":
		return []string{
			modulePath + "/internal/data/",
			modulePath + "/internal/app",
		}
	default:
		return nil
	}
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := findModuleRoot(start)
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return root, modulePath
}

// walkImports calls check for every import of every file under internal/.
// A non-empty result records a violation under that rule.
func walkImports(t *testing.T, root string, check func(rel, imp string) string) []violation {
	t.Helper()
	internalDir := filepath.Join(root, "internal")
	fset := token.NewFileSet()

	var violations []violation
	walkErr := filepath.WalkDir(internalDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "vendor", "node_modules", ".gocache":
				return filepath.SkipDir
			default:
				return nil
			}
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			if spec == nil || spec.Path == nil {
				continue
			}
			imp, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}
			if rule := check(rel, imp); rule != "" {
				violations = append(violations, violation{file: rel, imp: imp, rule: rule})
			}
		}
		return nil
	})
	if walkErr != nil {
		t.Fatalf("walk internal/: %v", walkErr)
	}
	return violations
}

func report(t *testing.T, title string, violations []violation) {
	t.Helper()
	if len(violations) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(title + ":\n")
	for _, v := range violations {
		fmt.Fprintf(&b, "- %s imports %q (disallowed: %q)\n", v.file, v.imp, v.rule)
	}
	t.Fatal(b.String())
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found from %s", start)
		}
		dir = parent
	}
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		mp := strings.TrimSpace(strings.TrimPrefix(line, "module "))
		if mp == "" {
			return "", fmt.Errorf("empty module path in %s", goModPath)
		}
		return mp, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
