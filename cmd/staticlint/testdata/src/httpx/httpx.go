package httpx

import (
	"net/http"
	"time"
)

func NewClient() *http.Client {
	return &http.Client{Timeout: time.Second}
}

func Fallback() *http.Client {
	return http.DefaultClient
}
