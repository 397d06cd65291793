package llm

import (
	"context"
	"iter"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every LLM call.
type LoggingProvider struct {
	inner StreamingProvider
	log   *zap.Logger
}

// WithLogging wraps a StreamingProvider with request logging.
func WithLogging(p StreamingProvider, log *zap.Logger) StreamingProvider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
		zap.Bool("streaming", false),
	}
	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
	}

	if err != nil {
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		l.log.Debug("llm request", fields...)
	}

	return resp, err
}

func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) iter.Seq2[string, error] {
	start := time.Now()
	inner := l.inner.GenerateStream(ctx, req)

	return func(yield func(string, error) bool) {
		var fragments int
		var streamErr error

		for text, err := range inner {
			if err != nil {
				streamErr = err
			} else {
				fragments++
			}
			if !yield(text, err) {
				break
			}
		}

		fields := []zap.Field{
			zap.String("purpose", PurposeFrom(ctx)),
			zap.String("model", l.inner.ModelID()),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			zap.Bool("streaming", true),
			zap.Int("fragments", fragments),
		}
		if streamErr != nil {
			l.log.Warn("llm stream failed", append(fields, zap.Error(streamErr))...)
		} else {
			l.log.Debug("llm stream", fields...)
		}
	}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
