package lesson

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"

	"github.com/abhisek/visualearn/internal/llm"
)

// defaultRelevance is the placeholder score recorded for every successful
// download. Real relevance ranking is an open extension point.
const defaultRelevance = 85

// processingRecord is the stage-internal view of one key point's images.
// It is the only place a decoded bitmap lives; the bitmap is dropped when
// the record is folded back into the external ImageBundle at stage exit.
type processingRecord struct {
	bundle ImageBundle
	best   image.Image
}

type downloadTask struct {
	title string
	url   string
}

type downloadResult struct {
	title string
	url   string
	img   image.Image
	err   error
}

type analysisResult struct {
	title string
	text  string
	err   error
}

// processImages downloads up to DownloadsPerPoint candidates per key point
// concurrently, keeps the first successful download per point as its best
// image, then analyzes each best image with the vision model. Bitmaps
// never leave this stage.
func (w *Workflow) processImages(ctx context.Context, s State) (State, error) {
	if len(s.Images) == 0 {
		return s, nil
	}

	fetcher := w.images()
	defer fetcher.Close()

	// Flatten download work in key-point order so the fold below is
	// deterministic: within a point, candidates keep their rank order.
	var tasks []downloadTask
	for _, kp := range s.KeyPoints {
		bundle, ok := s.Images[kp.PointTitle]
		if !ok {
			continue
		}
		urls := bundle.URLs
		if len(urls) > w.cfg.DownloadsPerPoint {
			urls = urls[:w.cfg.DownloadsPerPoint]
		}
		for _, u := range urls {
			tasks = append(tasks, downloadTask{title: kp.PointTitle, url: u})
		}
	}

	downloads := make([]downloadResult, len(tasks))
	var g errgroup.Group
	for i, t := range tasks {
		g.Go(func() error {
			img, err := fetcher.DownloadImage(ctx, t.url)
			downloads[i] = downloadResult{title: t.title, url: t.url, img: img, err: err}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // tasks report through their result slot

	records := make(map[string]*processingRecord, len(s.Images))
	for title, bundle := range s.Images {
		records[title] = &processingRecord{bundle: ImageBundle{URLs: bundle.URLs}}
	}

	// Fold in submission order: the first successful candidate per point
	// wins, regardless of which download completed first.
	for _, d := range downloads {
		if d.err != nil {
			w.log.Debug("image download failed", zap.String("url", d.url), zap.Error(d.err))
			continue
		}
		rec := records[d.title]
		ref := ImageRef{URL: d.url, Score: defaultRelevance}
		rec.bundle.Images = append(rec.bundle.Images, ref)
		if rec.best == nil {
			rec.best = d.img
			rec.bundle.Best = &ref
		}
	}

	// Vision fan-out: one result slot per key point keeps the merge
	// aligned with KeyPoints; points without a best image keep an empty
	// slot instead of a task.
	analyses := make([]analysisResult, len(s.KeyPoints))
	var ag errgroup.Group
	for i, kp := range s.KeyPoints {
		rec, ok := records[kp.PointTitle]
		if !ok || rec.best == nil {
			continue
		}
		ag.Go(func() error {
			text, err := w.analyzeImage(ctx, rec.best, kp)
			analyses[i] = analysisResult{title: kp.PointTitle, text: text, err: err}
			return nil
		})
	}
	ag.Wait() //nolint:errcheck // tasks report through their result slot

	next := s.clone()
	next.Images = make(map[string]ImageBundle, len(records))
	for title, rec := range records {
		next.Images[title] = rec.bundle
	}
	for _, a := range analyses {
		if a.title == "" {
			continue
		}
		if a.err != nil {
			w.log.Warn("vision analysis failed", zap.String("point", a.title), zap.Error(a.err))
			continue
		}
		if a.text != "" {
			next.AnalyzedDescriptions[a.title] = a.text
		}
	}
	next.CurrentProcessing = "image_processing_complete"
	return next, nil
}

// analyzeImage sends one decoded image to the vision model and returns its
// description of what the image actually contains.
func (w *Workflow) analyzeImage(ctx context.Context, img image.Image, point KeyPoint) (string, error) {
	ctx = llm.WithPurpose(ctx, "vision-analysis")

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	req := llm.Request{
		System: visionSystemPrompt,
		Messages: []llm.Message{
			{
				Role:    llm.RoleUser,
				Content: buildVisionUserMessage(point),
				Images: []llm.ImagePart{
					{MIMEType: "image/png", Data: buf.Bytes()},
				},
			},
		},
		MaxTokens:   w.cfg.VisionMaxTokens,
		Temperature: w.cfg.VisionTemperature,
	}

	resp, err := w.vision.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("analyze image for %q: %w", point.PointTitle, err)
	}
	return resp.Text(), nil
}
