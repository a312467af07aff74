package gateway

import (
	"net/http"

	"github.com/Totarae/EazyBank/internal/correlation"
)

// Filter оборачивает маршрутизацию шлюза.
//
// До маршрутизации идентификатор берётся из запроса или генерируется и
// записывается в заголовки проксируемого запроса. После маршрутизации тот же
// идентификатор попадает в ответ при любом исходе: ответ сервиса, его ошибка,
// 502, 504 или 404 самого шлюза.
func Filter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := correlation.Ensure(r.Header)
		r.Header.Set(correlation.Header, id)

		sw := &stampingWriter{ResponseWriter: w, id: id}
		defer sw.finish()

		next.ServeHTTP(sw, r.WithContext(correlation.WithID(r.Context(), id)))
	})
}

// stampingWriter ставит заголовок корреляции перед отправкой статуса.
// Значение сервиса, если он его вернул, перезаписывается значением шлюза.
type stampingWriter struct {
	http.ResponseWriter
	id      string
	stamped bool
}

func (sw *stampingWriter) stamp() {
	if sw.stamped {
		return
	}
	sw.stamped = true
	sw.Header().Set(correlation.Header, sw.id)
}

func (sw *stampingWriter) WriteHeader(code int) {
	sw.stamp()
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *stampingWriter) Write(b []byte) (int, error) {
	sw.stamp()
	return sw.ResponseWriter.Write(b)
}

func (sw *stampingWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// finish покрывает обработчик, который ничего не записал: заголовки уйдут
// после его возврата.
func (sw *stampingWriter) finish() {
	sw.stamp()
}
