package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/visualearn/internal/lesson"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <topic>",
	Short: "Generate a complete illustrated lesson as an NDJSON stream",
	Long: "Runs the full lesson pipeline for a topic and writes NDJSON records " +
		"to stdout: progress updates, streamed section content per key point, " +
		"and a final record with the complete lesson state.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ageGroup, _ := cmd.Flags().GetString("age-group")
		level, _ := cmd.Flags().GetString("knowledge-level")

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		workflow, err := buildWorkflow(cmd.Context(), log)
		if err != nil {
			return err
		}

		input := lesson.Input{
			Topic:          args[0],
			AgeGroup:       ageGroup,
			KnowledgeLevel: level,
		}
		return runLesson(cmd.Context(), workflow, input, os.Stdout)
	},
}

type lessonProgressRecord struct {
	Type    string `json:"type"`
	Stage   string `json:"stage"`
	Percent int    `json:"progress"`
	Message string `json:"message"`
}

type contentChunkRecord struct {
	Type       string `json:"type"`
	PointTitle string `json:"point_title"`
	Chunk      string `json:"chunk,omitempty"`
	Complete   bool   `json:"complete"`
}

type lessonCompleteRecord struct {
	Type string       `json:"type"`
	Data lesson.State `json:"data"`
}

// runLesson drives the pipeline and then streams per-point section content,
// writing every record as one NDJSON line.
func runLesson(ctx context.Context, w *lesson.Workflow, input lesson.Input, out io.Writer) error {
	enc := json.NewEncoder(out)

	final := w.Run(ctx, input, func(p lesson.Progress) {
		enc.Encode(lessonProgressRecord{ //nolint:errcheck
			Type:    "progress",
			Stage:   string(p.Stage),
			Percent: p.Percent,
			Message: p.Message,
		})
	})

	for _, kp := range final.KeyPoints {
		for chunk := range w.StreamSection(ctx, kp, input, final.AnalyzedDescriptions[kp.PointTitle]) {
			if err := enc.Encode(contentChunkRecord{
				Type:       "content_chunk",
				PointTitle: kp.PointTitle,
				Chunk:      chunk,
			}); err != nil {
				return fmt.Errorf("write content chunk: %w", err)
			}
		}
		if err := enc.Encode(contentChunkRecord{
			Type:       "content_chunk",
			PointTitle: kp.PointTitle,
			Complete:   true,
		}); err != nil {
			return fmt.Errorf("write content chunk: %w", err)
		}
	}

	if err := enc.Encode(lessonCompleteRecord{Type: "complete", Data: final}); err != nil {
		return fmt.Errorf("write final state: %w", err)
	}
	return nil
}

func init() {
	lessonCmd.Flags().String("age-group", "8-10", "Target age group for the lesson")
	lessonCmd.Flags().String("knowledge-level", "beginner", "Learner's prior knowledge level")
}
