package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// SharedClientAnalyzer reports HTTP clients created or used outside package
// httpx.
var SharedClientAnalyzer = &analysis.Analyzer{
	Name:     "sharedclient",
	Doc:      "reports ad-hoc HTTP clients outside package httpx",
	Run:      runSharedClient,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var forbiddenHTTP = map[string]bool{
	"Get":           true,
	"Head":          true,
	"Post":          true,
	"PostForm":      true,
	"DefaultClient": true,
}

func runSharedClient(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() == "httpx" {
		return nil, nil
	}

	in := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.SelectorExpr)(nil),
		(*ast.CompositeLit)(nil),
	}

	in.Preorder(nodeFilter, func(n ast.Node) {
		if strings.HasSuffix(pass.Fset.File(n.Pos()).Name(), "_test.go") {
			return
		}

		switch node := n.(type) {
		case *ast.SelectorExpr:
			ident, ok := node.X.(*ast.Ident)
			if !ok || !forbiddenHTTP[node.Sel.Name] {
				return
			}
			if pkg, ok := pass.TypesInfo.Uses[ident].(*types.PkgName); ok && pkg.Imported().Path() == "net/http" {
				pass.Reportf(node.Pos(), "use the shared httpx client instead of http.%s", node.Sel.Name)
			}
		case *ast.CompositeLit:
			if isHTTPClient(pass.TypesInfo.TypeOf(node)) {
				pass.Reportf(node.Pos(), "use httpx.NewClient instead of an http.Client literal")
			}
		}
	})

	return nil, nil
}

func isHTTPClient(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "net/http" && obj.Name() == "Client"
}
