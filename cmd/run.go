package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"newspulse/bot"
	"newspulse/config"
	"newspulse/internal/server"
	"newspulse/internal/telemetry"
	"newspulse/news"
	"newspulse/news/newsapi"
)

func runCMD() *cobra.Command {
	var cfgPath string
	var run = &cobra.Command{
		Use:   "run",
		Short: "Run the NewsPulse Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			metrics := telemetry.New()
			client := newsapi.New(cfg.Sources.NewsAPI, cfg.General.DefaultTimeout)
			retriever := news.NewRetriever(client, metrics, nil)

			b, err := bot.New(cfg.Telegram, cfg.General.DefaultTimeout, retriever, metrics, nil)
			if err != nil {
				return err
			}

			if cfg.Telemetry.Enabled {
				opsLogger := log.New(log.Writer(), "[OPS] ", log.LstdFlags)
				go func() {
					if err := server.Run(ctx, cfg.Server.Address, metrics); err != nil {
						opsLogger.Printf("ops server: %v", err)
					}
				}()
			}

			return b.Run(ctx)
		},
	}
	run.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.json)")

	return run
}
