package cookie

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"hunt-api/internal/shared"
)

// IngredientMap maps an ingredient name to a whole quantity. Decoding is
// stricter than a plain map: the value must be an object, names must be
// unique and quantities must be non-negative integers.
type IngredientMap map[string]uint64

func (m *IngredientMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("ingredients must be an object: %w", err)
	}

	out := IngredientMap{}
	for dec.More() {
		name, err := objectKey(dec)
		if err != nil {
			return err
		}
		if _, dup := out[name]; dup {
			return fmt.Errorf("duplicate ingredient %q", name)
		}
		var qty *uint64
		if err := dec.Decode(&qty); err != nil {
			return fmt.Errorf("ingredient %q: %w", name, err)
		}
		if qty == nil {
			return fmt.Errorf("ingredient %q is null", name)
		}
		out[name] = *qty
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

type RecipeRequest struct {
	Recipe IngredientMap `json:"recipe"`
	Pantry IngredientMap `json:"pantry"`
}

// ParseRecipeRequest parses decoded payload text. Field names are matched
// exactly and may appear once; any other top-level fields are ignored.
func ParseRecipeRequest(text string) (*RecipeRequest, error) {
	req, err := parseRecipeRequest(text)
	if err != nil {
		return nil, errors.Join(err, shared.ErrMalformedRequest)
	}
	return req, nil
}

func parseRecipeRequest(text string) (*RecipeRequest, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, errors.Join(errors.New("payload is not a json object"), err)
	}

	var req RecipeRequest
	fields := map[string]*IngredientMap{"recipe": &req.Recipe, "pantry": &req.Pantry}
	seen := map[string]bool{}
	for dec.More() {
		name, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		dst, known := fields[name]
		if !known {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("invalid field %q: %w", name, err)
			}
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate field %q", name)
		}
		seen[name] = true
		if err := dec.Decode(dst); err != nil {
			return nil, fmt.Errorf("invalid field %q: %w", name, err)
		}
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after payload")
	}

	for _, name := range []string{"recipe", "pantry"} {
		if !seen[name] {
			return nil, fmt.Errorf("missing field %q", name)
		}
	}
	return &req, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %v, got %v", want, tok)
	}
	return nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	name, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected object key %v", tok)
	}
	return name, nil
}
