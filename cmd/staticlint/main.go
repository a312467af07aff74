// Package main запускает multichecker сервисов EazyBank.
//
// Он включает:
//   - анализаторы go/analysis/passes, важные для сетевого кода: httpresponse,
//     lostcancel (таймауты вызовов соседних сервисов), errorsas, shadow, structtag,
//     nilness, printf
//   - все SA-анализаторы staticcheck и U1000 (неиспользуемый код)
//   - bodyclose: тело ответа соседнего сервиса должно закрываться
//   - собственный анализатор noglobalclient (запрещает глобальный HTTP-клиент вне internal/client)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/EazyBank/cmd/staticlint/noglobalclient"
)

func main() {
	analyzers := []*analysis.Analyzer{
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		errorsas.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	analyzers = append(analyzers,
		unused.Analyzer.Analyzer,
		bodyclose.Analyzer,
		noglobalclient.NewAnalyzer(),
	)

	multichecker.Main(analyzers...)
}

