// Package sled recalibrates sled ids: the xor of every packet id, cubed.
package sled

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hunt-api/internal/shared"
)

// CubeBitsLogic parses a slash separated list of integer ids, folds them with
// xor and cubes the result. Overflow wraps.
func CubeBitsLogic(path string) (int64, error) {
	segments := strings.Split(path, "/")
	ids := make([]int64, 0, len(segments))
	for _, seg := range segments {
		id, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return 0, errors.Join(fmt.Errorf("invalid packet id %q", seg), err, shared.ErrBadRequest)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, errors.Join(errors.New("no packet ids"), shared.ErrBadRequest)
	}

	acc := ids[0]
	for _, id := range ids[1:] {
		acc ^= id
	}
	return acc * acc * acc, nil
}
