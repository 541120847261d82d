package cookie

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"hunt-api/internal/shared"
)

// DecodePayload pulls the recipe payload out of the Cookie header and returns
// it as text. The "recipe=" prefix is optional and stripped as often as it
// repeats.
func DecodePayload(header http.Header) (string, error) {
	values := header.Values(shared.RecipeHeader)
	if len(values) == 0 {
		return "", shared.ErrMissingPayload
	}
	encoded := values[0]
	for strings.HasPrefix(encoded, shared.RecipePrefix) {
		encoded = encoded[len(shared.RecipePrefix):]
	}

	raw, err := base64.StdEncoding.Strict().DecodeString(encoded)
	if err != nil {
		return "", errors.Join(errors.New("failed to decode cookie payload"), err, shared.ErrInvalidEncoding)
	}
	if !utf8.Valid(raw) {
		return "", errors.Join(errors.New("cookie payload is not utf-8"), shared.ErrInvalidText)
	}
	return string(raw), nil
}
