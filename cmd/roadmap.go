package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <topic>",
	Short: "Generate a learning roadmap as an NDJSON stream",
	Long: "Generates a phased learning roadmap for a topic, writing one NDJSON " +
		"record per line to stdout: the roadmap metadata first, then each phase " +
		"as it is generated.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		gen, err := buildRoadmaps(cmd.Context(), log)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		for ev := range gen.Run(cmd.Context(), args[0]) {
			if err := enc.Encode(ev); err != nil {
				return fmt.Errorf("write roadmap event: %w", err)
			}
		}
		return nil
	},
}

var topicContentCmd = &cobra.Command{
	Use:   "topic <roadmap-topic> <topic-title>",
	Short: "Generate deep-dive content for one roadmap topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		phase, _ := cmd.Flags().GetString("phase")

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		gen, err := buildRoadmaps(cmd.Context(), log)
		if err != nil {
			return err
		}

		content, err := gen.TopicContent(cmd.Context(), args[0], phase, args[1])
		if err != nil {
			return err
		}
		fmt.Println(content)
		return nil
	},
}

func init() {
	topicContentCmd.Flags().String("phase", "", "Roadmap phase the topic belongs to, e.g. 'Phase 2'")
	roadmapCmd.AddCommand(topicContentCmd)
}
