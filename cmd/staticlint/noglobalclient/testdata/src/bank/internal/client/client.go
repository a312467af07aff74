package client

import "net/http"

func fetch() {
	_, _ = http.Get("http://loans/api/fetch")
}
