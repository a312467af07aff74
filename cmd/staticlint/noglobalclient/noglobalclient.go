// Package noglobalclient содержит пользовательский анализатор, который запрещает
// исходящие вызовы через глобальный клиент net/http вне пакета internal/client.
//
// Вызовы соседних сервисов обязаны идти через адаптеры, которые передают
// идентификатор корреляции и ограничивают время ответа.
package noglobalclient

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// allowedSuffix — пакет адаптеров, которому разрешено всё
const allowedSuffix = "/internal/client"

var forbidden = map[string]bool{
	"Get":           true,
	"Head":          true,
	"Post":          true,
	"PostForm":      true,
	"DefaultClient": true,
}

// Analyzer запрещает http.Get, http.Head, http.Post, http.PostForm и http.DefaultClient.
var Analyzer = &analysis.Analyzer{
	Name: "noglobalclient",
	Doc:  "запрещает глобальный HTTP-клиент net/http вне internal/client",
	Run:  run,
}

// NewAnalyzer возвращает анализатор noglobalclient.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func run(pass *analysis.Pass) (interface{}, error) {
	if strings.HasSuffix(pass.Pkg.Path(), allowedSuffix) {
		return nil, nil
	}

	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.File(file.Pos()).Name(), "_test.go") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok || !forbidden[sel.Sel.Name] {
				return true
			}

			id, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}
			// только обращения к самому пакету, методы *http.Client не трогаем
			if pkg, ok := pass.TypesInfo.Uses[id].(*types.PkgName); ok && pkg.Imported().Path() == "net/http" {
				pass.Reportf(sel.Pos(), "http.%s вне internal/client запрещён: используйте адаптер с идентификатором корреляции", sel.Sel.Name)
			}
			return true
		})
	}
	return nil, nil
}
