package cookie

import (
	"fmt"
	"math/bits"
)

type BatchResult struct {
	Cookies uint64        `json:"cookies"`
	Pantry  IngredientMap `json:"pantry"`
}

// Bake computes how many whole batches of the recipe the pantry can cover
// and what is left afterwards. Ingredients missing from the pantry count as
// zero stock. A recipe quantity of zero places no limit on the batch count;
// a recipe with no limiting ingredient at all bakes nothing.
func Bake(req *RecipeRequest) *BatchResult {
	cookies, limited := maxBatches(req.Recipe, req.Pantry)

	leftover := make(IngredientMap, len(req.Pantry))
	if !limited {
		for name, stock := range req.Pantry {
			leftover[name] = stock
		}
		return &BatchResult{Cookies: 0, Pantry: leftover}
	}

	for name, stock := range req.Pantry {
		need, ok := req.Recipe[name]
		if !ok {
			leftover[name] = stock
			continue
		}
		leftover[name] = stock - consumed(name, need, cookies, stock)
	}
	return &BatchResult{Cookies: cookies, Pantry: leftover}
}

func maxBatches(recipe, pantry IngredientMap) (uint64, bool) {
	var (
		cookies uint64
		limited bool
	)
	for name, need := range recipe {
		if need == 0 {
			continue
		}
		batches := pantry[name] / need
		if !limited || batches < cookies {
			cookies = batches
			limited = true
		}
	}
	return cookies, limited
}

// consumed panics rather than wrap: a batch count that overdraws the pantry
// is a bug in maxBatches, not bad input.
func consumed(name string, need, cookies, stock uint64) uint64 {
	hi, used := bits.Mul64(need, cookies)
	if hi != 0 || used > stock {
		panic(fmt.Sprintf("cookie: %d batches overdraw %q (need %d, stock %d)", cookies, name, need, stock))
	}
	return used
}
