package pedersen

import "sync"

type cacheKey struct {
	publicString  string
	numGenerators int
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]*Committer)
)

// Shared returns the process-wide committer for the given parameters,
// deriving it on first use. The cached committer is shared across callers and
// must be treated as read-only; concurrent use needs no further
// synchronization.
func Shared(numGenerators int, publicString string) (*Committer, error) {
	key := cacheKey{publicString: publicString, numGenerators: numGenerators}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if c, ok := cache[key]; ok {
		return c, nil
	}
	c, err := New(numGenerators, publicString)
	if err != nil {
		return nil, err
	}
	cache[key] = c
	return c, nil
}
