package lesson

import (
	"context"
	"image"
)

// ImageFetcher is the image search/download collaborator, satisfied by
// *imagery.Client. Every call is bounded by the client's request timeout.
type ImageFetcher interface {
	// SearchImages returns candidate image URLs in rank order.
	SearchImages(ctx context.Context, query string) ([]string, error)

	// DownloadImage fetches and decodes one image.
	DownloadImage(ctx context.Context, url string) (image.Image, error)

	// Close releases the client's pooled connections.
	Close()
}

// FetcherFactory creates a stage-scoped ImageFetcher.
type FetcherFactory func() ImageFetcher
