package maplestory

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// defaultBatchLimit caps concurrent character lookups per batch.
const defaultBatchLimit = 10

// BatchError records a single failed lookup within a batch.
type BatchError struct {
	Ocid string
	Err  error
}

// BatchResult collects the outcome of a batch character fetch.
// Individual failures do not abort the batch.
type BatchResult struct {
	Characters map[string]CharacterBasic
	Failed     []BatchError
}

// BatchGetCharacterBasic fetches basic profiles for many ocids
// concurrently, bounded by defaultBatchLimit in-flight requests.
func (c *Client) BatchGetCharacterBasic(ctx context.Context, ocids []string) (BatchResult, error) {
	result := BatchResult{
		Characters: make(map[string]CharacterBasic, len(ocids)),
	}
	if len(ocids) == 0 {
		return result, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchLimit)

	var mu sync.Mutex
	for _, ocid := range ocids {
		ocid := ocid
		g.Go(func() error {
			basic, err := c.GetCharacterBasic(ctx, ocid, nil)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn().Err(err).Str("ocid", ocid).Msg("failed to fetch character in batch")
				result.Failed = append(result.Failed, BatchError{Ocid: ocid, Err: err})
				return nil // continue processing other characters
			}
			result.Characters[ocid] = basic
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}
