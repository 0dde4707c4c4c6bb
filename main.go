package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Xunop/gutenshelf/internal/config"
	"github.com/Xunop/gutenshelf/internal/gutendex"
	"github.com/Xunop/gutenshelf/internal/log"
	"github.com/Xunop/gutenshelf/internal/server"
	"github.com/Xunop/gutenshelf/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	greetingBanner = `
  ____       _              _          _  __
 / ___|_   _| |_ ___ _ __  ___| |__   ___| |/ _|
| |  _| | | | __/ _ \ '_ \/ __| '_ \ / _ \ | |_
| |_| | |_| | ||  __/ | | \__ \ | | |  __/ |  _|
 \____|\__,_|\__\___|_| |_|___/_| |_|\___|_|_|
`
)

var (
	configFile string
	loader     = config.NewLoader()

	rootCmd = &cobra.Command{
		Use:          "gutenshelf",
		Short:        "Gutenshelf is a web front for the Project Gutenberg catalog",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(".env", ".env.local"); err != nil {
				return err
			}
			opts, err := loader.Load(configFile)
			if err != nil {
				return err
			}
			logger := log.Setup(opts)
			defer logger.Sync()

			fmt.Print(greetingBanner)
			return run(cmd.Context(), opts)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "path to a config file (toml, yaml or json)")
	flags.String("host", "", "address to listen on")
	flags.Int("port", 0, "port to listen on")
	flags.String("api", "", "base URL of the upstream book API")

	for key, name := range map[string]string{
		"host":         "host",
		"port":         "port",
		"api_base_url": "api",
	} {
		if err := loader.BindFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(versionCmd)
}

func run(ctx context.Context, opts *config.Options) error {
	// Every upstream call goes to one host; keep more idle connections to it.
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16

	client, err := gutendex.NewClient(opts.APIBaseURL,
		gutendex.WithHTTPClient(&http.Client{Transport: transport}),
		gutendex.WithTimeout(opts.APITimeout),
		gutendex.WithUserAgent(opts.APIUserAgent),
		gutendex.WithRateLimit(opts.APIRateLimit),
	)
	if err != nil {
		return err
	}

	srv, err := server.StartServer(opts, client)
	if err != nil {
		return err
	}
	log.Info("Server started",
		zap.String("listen_address", srv.Addr),
		zap.String("api_base_url", opts.APIBaseURL),
		zap.String("version", version.GetCurrentVersion()))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down server")
	return server.Shutdown(srv, opts.ShutdownTimeout)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
