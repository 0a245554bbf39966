package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/estudia/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and serve the web front end",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, logger, err := newService(true)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Printf("defuzzification: %s, static dir: %s", cfg.Fuzzy.Method, cfg.Server.StaticDir)
		return server.New(svc, cfg.Server, logger).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (or set ESTUDIA_SERVER_ADDR)")
	serveCmd.Flags().String("static-dir", "", "directory served at / (or set ESTUDIA_SERVER_STATIC_DIR)")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.static_dir", serveCmd.Flags().Lookup("static-dir"))
}
