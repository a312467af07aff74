// Package correlation отвечает за идентификатор корреляции, который сопровождает
// запрос через шлюз и все сервисы.
package correlation

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header — имя заголовка с идентификатором корреляции.
const Header = "viv-correlation-id"

type ctxKey struct{}

// Ensure возвращает идентификатор из заголовков запроса или генерирует новый.
// Пустое значение и значение из одних пробелов считаются отсутствующими.
func Ensure(h http.Header) string {
	if id := strings.TrimSpace(h.Get(Header)); id != "" {
		return id
	}
	return uuid.NewString()
}

// Inject проставляет идентификатор в заголовки исходящего запроса.
func Inject(h http.Header, id string) {
	if id == "" {
		return
	}
	h.Set(Header, id)
}

// WithID кладёт идентификатор в контекст запроса.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достаёт идентификатор из контекста, "" если его нет.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
