// Package reindeer scores reindeer: total strength and the contest winners.
package reindeer

import (
	"encoding/json"
	"errors"
	"fmt"

	"hunt-api/internal/shared"
)

// StrengthLogic sums the strength of every reindeer in a JSON array.
func StrengthLogic(body []byte) (uint64, error) {
	var herd []Summary
	if err := json.Unmarshal(body, &herd); err != nil {
		return 0, errors.Join(errors.New("failed to parse reindeer"), err, shared.ErrBadRequest)
	}
	var total uint64
	for _, r := range herd {
		total += uint64(r.Strength)
	}
	return total, nil
}

// ContestLogic picks the winner of each category. On ties the reindeer that
// comes first in the input wins.
func ContestLogic(body []byte) (*ContestResults, error) {
	var herd []Reindeer
	if err := json.Unmarshal(body, &herd); err != nil {
		return nil, errors.Join(errors.New("failed to parse reindeer"), err, shared.ErrBadRequest)
	}
	if len(herd) == 0 {
		return nil, errors.Join(errors.New("no reindeer in contest"), shared.ErrBadRequest)
	}

	fastest := maxBy(herd, func(a, b *Reindeer) bool { return b.Speed > a.Speed })
	tallest := maxBy(herd, func(a, b *Reindeer) bool { return b.Height > a.Height })
	magician := maxBy(herd, func(a, b *Reindeer) bool { return b.SnowMagic > a.SnowMagic })
	consumer := maxBy(herd, func(a, b *Reindeer) bool { return b.CandiesEaten > a.CandiesEaten })

	return &ContestResults{
		Fastest:  fmt.Sprintf("Speeding past the finish line with a strength of %d is %s", fastest.Strength, fastest.Name),
		Tallest:  fmt.Sprintf("%s is standing tall with his %d cm wide antlers", tallest.Name, tallest.AntlerWidth),
		Magician: fmt.Sprintf("%s could blast you away with a snow magic power of %d", magician.Name, magician.SnowMagic),
		Consumer: fmt.Sprintf("%s ate lots of candies, but also some %s", consumer.Name, consumer.FavoriteFood),
	}, nil
}

// maxBy scans in order and only moves on a strictly better candidate.
func maxBy(herd []Reindeer, better func(best, candidate *Reindeer) bool) *Reindeer {
	best := &herd[0]
	for i := 1; i < len(herd); i++ {
		if better(best, &herd[i]) {
			best = &herd[i]
		}
	}
	return best
}
