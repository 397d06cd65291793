package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMockProviderFIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)

	r1, err := m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatal(err)
	}
	r2, err := m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatal(err)
	}
	if string(r1.Content) != `"first"` || string(r2.Content) != `"second"` {
		t.Errorf("responses out of order: %s, %s", r1.Content, r2.Content)
	}

	if _, err := m.Generate(context.Background(), Request{}); err == nil {
		t.Error("expected error when queue is exhausted")
	}
	if m.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", m.CallCount())
	}
}

func TestMockProviderStreamRoundTrip(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage("streaming keeps word order intact")},
	)

	var got strings.Builder
	for fragment, err := range m.GenerateStream(context.Background(), Request{}) {
		if err != nil {
			t.Fatal(err)
		}
		got.WriteString(fragment)
	}
	if got.String() != "streaming keeps word order intact" {
		t.Errorf("joined stream = %q", got.String())
	}
}

func TestMockProviderStreamError(t *testing.T) {
	want := errors.New("canned failure")
	m := NewMockProvider(MockResponse{Err: want})

	var streamErr error
	for _, err := range m.GenerateStream(context.Background(), Request{}) {
		streamErr = err
	}
	if !errors.Is(streamErr, want) {
		t.Errorf("stream error = %v, want %v", streamErr, want)
	}
}
