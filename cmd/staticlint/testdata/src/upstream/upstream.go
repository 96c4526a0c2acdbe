package upstream

import (
	"net/http"
	"net/url"
	"time"
)

func fetch(client *http.Client, u string) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient // want "use the shared httpx client instead of http.DefaultClient"
	}
	return client.Get(u)
}

func adHoc(u string) {
	_, _ = http.Get(u)                     // want "use the shared httpx client instead of http.Get"
	_, _ = http.Head(u)                    // want "use the shared httpx client instead of http.Head"
	_, _ = http.Post(u, "text/plain", nil) // want "use the shared httpx client instead of http.Post"
	_, _ = http.PostForm(u, url.Values{})  // want "use the shared httpx client instead of http.PostForm"

	c := &http.Client{Timeout: time.Second} // want "use httpx.NewClient instead of an http.Client literal"
	_ = c
}

func request(u string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, u, nil)
}
