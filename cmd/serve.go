package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/visualearn/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: "Serves the lesson and roadmap workflows over HTTP. Generation " +
		"endpoints stream NDJSON so clients see progress as it happens.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		ctx := cmd.Context()
		workflow, err := buildWorkflow(ctx, log)
		if err != nil {
			return err
		}
		roadmaps, err := buildRoadmaps(ctx, log)
		if err != nil {
			return err
		}

		cfg := server.ConfigFromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		h := server.NewHandler(workflow, roadmaps, log)
		srv := server.New(h, cfg, log)

		log.Info("serving", zap.String("addr", cfg.Addr))
		return srv.Run()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides VISUALEARN_ADDR)")
}
