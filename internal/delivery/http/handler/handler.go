package handler

import (
	"encoding/json"
	"net/http"
)

// decodeBody decodes a JSON request body into dst, rejecting fields that
// are not part of the request schema. Unknown fields are treated as a
// client error instead of being silently dropped.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
