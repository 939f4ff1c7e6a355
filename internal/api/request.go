package api

import (
	"encoding/json"
	"net/http"
)

// decodeJSON decodes the request body into dst. The body is capped to keep
// an oversized payload from holding a handler goroutine.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, 1<<20)
	defer func() { _ = body.Close() }()

	return json.NewDecoder(body).Decode(dst)
}
