package a

import (
	"net/http"
	"net/url"
	"strings"
)

func calls() {
	_, _ = http.Get("http://loans/api/fetch") // want `http.Get вне internal/client запрещён`

	_, _ = http.Head("http://loans/api/fetch") // want `http.Head вне internal/client запрещён`

	_, _ = http.Post("http://loans", "text/plain", strings.NewReader("")) // want `http.Post вне internal/client запрещён`

	_, _ = http.PostForm("http://loans", url.Values{}) // want `http.PostForm вне internal/client запрещён`

	_ = http.DefaultClient // want `http.DefaultClient вне internal/client запрещён`

	client := &http.Client{}
	_, _ = client.Get("http://loans/api/fetch")
}
