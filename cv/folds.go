package cv

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
)

// RandomFoldID assigns n observations to nfolds balanced folds in random
// order. Fold sizes differ by at most one. A nil rng uses a time-seeded source.
func RandomFoldID(n, nfolds int, rng *rand.Rand) ([]int, error) {
	if nfolds < 3 {
		return nil, errors.NewValidationError("nfolds", "must be at least 3; nfolds=10 recommended", nfolds)
	}
	if nfolds > n {
		return nil, errors.NewValidationError("nfolds",
			fmt.Sprintf("cannot exceed the number of observations (%d)", n), nfolds)
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	foldID := make([]int, n)
	for i := range foldID {
		foldID[i] = i % nfolds
	}
	rng.Shuffle(n, func(i, j int) {
		foldID[i], foldID[j] = foldID[j], foldID[i]
	})
	return foldID, nil
}
