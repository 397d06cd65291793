package lesson

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// searchResult carries one key point's search outcome back to the merge
// step, keyed by title so completion order never matters.
type searchResult struct {
	title string
	urls  []string
	err   error
}

// searchImages issues one image search per key point concurrently over a
// stage-scoped client. A failed search degrades that key point to "no
// candidate URLs" and appends one error; the rest of the batch is
// unaffected.
func (w *Workflow) searchImages(ctx context.Context, s State) (State, error) {
	if len(s.KeyPoints) == 0 {
		return s, nil
	}

	fetcher := w.images()
	defer fetcher.Close()

	results := make([]searchResult, len(s.KeyPoints))
	var g errgroup.Group
	for i, kp := range s.KeyPoints {
		g.Go(func() error {
			urls, err := fetcher.SearchImages(ctx, kp.SearchQuery)
			// Each task writes only its own slot; failures stay per-unit.
			results[i] = searchResult{title: kp.PointTitle, urls: urls, err: err}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // tasks report through their result slot

	next := s.clone()
	next.Images = make(map[string]ImageBundle, len(s.KeyPoints))
	for _, r := range results {
		if r.err != nil {
			next.Errors = append(next.Errors, fmt.Sprintf("image search for %q: %v", r.title, r.err))
			continue
		}
		next.Images[r.title] = ImageBundle{URLs: r.urls}
	}
	next.CurrentProcessing = "image_search_complete"
	return next, nil
}
