package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "gather/internal/modules/"

// Import rules between the hexagonal layers: adapters in speak only
// through port/in and dto; inner layers never reach outward; modules
// talk to each other only via port/in and dto.
func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module, layer := classify(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if !strings.Contains(importPath, modulePrefix) {
				continue
			}
			if reason := checkImport(module, layer, importPath); reason != "" {
				t.Fatalf("forbidden import in %s (%s): %s (%s)", slash, layer, importPath, reason)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

func classify(path string) (module, layer string) {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			module = parts[i+1]
			break
		}
	}
	for _, l := range layers {
		if strings.Contains(path, "/"+l+"/") {
			layer = l
			break
		}
	}
	return module, layer
}

func isPublicSurface(importPath string) bool {
	return strings.Contains(importPath, "/port/in/") || strings.HasSuffix(importPath, "/port/in") ||
		strings.Contains(importPath, "/dto/") || strings.HasSuffix(importPath, "/dto")
}

func checkImport(module, layer, importPath string) string {
	if !strings.Contains(importPath, "/internal/modules/"+module+"/") {
		// Cross-module traffic goes through port/in and dto only.
		if isPublicSurface(importPath) {
			return ""
		}
		return "cross-module import outside port/in and dto"
	}

	switch layer {
	case "adapter/in":
		if !isPublicSurface(importPath) {
			return "inbound adapters depend on port/in and dto only"
		}
	case "usecase":
		if strings.Contains(importPath, "/adapter/") {
			return "usecases must not reach adapters"
		}
	case "service":
		if strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") {
			return "services must not reach adapters or usecases"
		}
	case "domain":
		if strings.Contains(importPath, "/internal/modules/") && !strings.Contains(importPath, "/domain") {
			return "domain depends on nothing outside domain"
		}
	}
	return ""
}
