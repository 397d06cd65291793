package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "visualearn",
	Short: "Multi-modal educational content generator",
	Long: "VisuaLearn generates illustrated lessons, quizzes and learning roadmaps " +
		"using LLM providers, image search and vision analysis.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
