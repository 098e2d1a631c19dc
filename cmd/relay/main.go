package main

import (
	"context"
	"log"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/saferoads/incidentd/common"
	"github.com/saferoads/incidentd/httpserver"
	"github.com/saferoads/incidentd/ledger"
	"github.com/saferoads/incidentd/wallet"
)

var flags []cli.Flag = []cli.Flag{
	&cli.StringFlag{
		Name:    "rpc-addr",
		Value:   wallet.DefaultRPCURL,
		Usage:   "address to connect to chain RPC",
		EnvVars: []string{"RELAY_RPC_ADDR"},
	},
	&cli.StringFlag{
		Name:    "contract-addr",
		Value:   "",
		Usage:   "incident contract address",
		EnvVars: []string{"RELAY_CONTRACT_ADDR"},
	},
	&cli.StringFlag{
		Name:    "private-key",
		Value:   "",
		Usage:   "hex private key of the relay account",
		EnvVars: []string{"RELAY_PRIVATE_KEY"},
	},
	&cli.Int64Flag{
		Name:    "chain-id",
		Value:   wallet.DefaultChainID,
		Usage:   "chain id the contract is deployed on",
		EnvVars: []string{"RELAY_CHAIN_ID"},
	},
	&cli.StringFlag{
		Name:    "gateway",
		Value:   "",
		Usage:   "public gateway host for content URLs",
		EnvVars: []string{"RELAY_GATEWAY"},
	},
	&cli.StringFlag{
		Name:    "listen-addr",
		Value:   "127.0.0.1:3001",
		Usage:   "address to listen on for API",
		EnvVars: []string{"RELAY_LISTEN_ADDR"},
	},
	&cli.StringFlag{
		Name:    "metrics-addr",
		Value:   "127.0.0.1:8090",
		Usage:   "address to listen on for Prometheus metrics",
		EnvVars: []string{"RELAY_METRICS_ADDR"},
	},
	&cli.BoolFlag{
		Name:  "log-json",
		Value: false,
		Usage: "log in JSON format",
	},
	&cli.BoolFlag{
		Name:  "log-debug",
		Value: false,
		Usage: "log debug messages",
	},
	&cli.BoolFlag{
		Name:  "log-uid",
		Value: false,
		Usage: "generate a uuid and add to all log messages",
	},
	&cli.StringFlag{
		Name:  "log-service",
		Value: "incident-relay",
		Usage: "add 'service' tag to logs",
	},
	&cli.BoolFlag{
		Name:  "pprof",
		Value: false,
		Usage: "enable pprof debug endpoint",
	},
	&cli.Int64Flag{
		Name:  "drain-seconds",
		Value: 45,
		Usage: "seconds to wait in drain HTTP request",
	},
}

func main() {
	app := &cli.App{
		Name:  "incident-relay",
		Usage: "Relay incident report submissions to the incident contract",
		Flags: flags,
		Action: func(cCtx *cli.Context) error {
			rpcAddr := cCtx.String("rpc-addr")
			contractAddr := cCtx.String("contract-addr")
			privateKey := cCtx.String("private-key")
			chainID := big.NewInt(cCtx.Int64("chain-id"))
			gateway := cCtx.String("gateway")
			listenAddr := cCtx.String("listen-addr")
			metricsAddr := cCtx.String("metrics-addr")
			logJSON := cCtx.Bool("log-json")
			logDebug := cCtx.Bool("log-debug")
			logUID := cCtx.Bool("log-uid")
			logService := cCtx.String("log-service")
			enablePprof := cCtx.Bool("pprof")
			drainDuration := time.Duration(cCtx.Int64("drain-seconds")) * time.Second

			logger := common.SetupLogger(&common.LoggingOpts{
				Debug:   logDebug,
				JSON:    logJSON,
				Service: logService,
				Version: common.Version,
			})

			if logUID {
				id := uuid.Must(uuid.NewRandom())
				logger = logger.With("uid", id.String())
			}

			keyed, err := wallet.NewKeyed(privateKey, chainID)
			if err != nil {
				logger.Error("Failed to load relay key", "err", err)
				return err
			}
			logger.Info("Relay account loaded", "address", keyed.Address().Hex())

			ctx := context.Background()
			submitter, err := ledger.NewSubmitter(ctx, ledger.Config{
				ContractAddr: ethcommon.HexToAddress(contractAddr),
				Gateway:      gateway,
			}, rpcAddr, keyed, logger)
			if err != nil {
				logger.Error("Failed to create ledger submitter", "err", err)
				return err
			}

			reader, err := ledger.NewReader(ctx, ethcommon.HexToAddress(contractAddr), rpcAddr, logger)
			if err != nil {
				logger.Error("Failed to create ledger reader", "err", err)
				return err
			}

			handler := httpserver.NewHandler(submitter, reader, keyed.Address(), logger)

			cfg := &httpserver.HTTPServerConfig{
				ListenAddr:               listenAddr,
				MetricsAddr:              metricsAddr,
				Log:                      logger,
				EnablePprof:              enablePprof,
				DrainDuration:            drainDuration,
				GracefulShutdownDuration: 30 * time.Second,
				ReadTimeout:              60 * time.Second,
				WriteTimeout:             120 * time.Second,
			}

			srv, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			srv.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
			<-exit

			logger.Info("Shutting down")
			srv.Shutdown()
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
