package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/saferoads/incidentd/common"
	"github.com/saferoads/incidentd/document"
	"github.com/saferoads/incidentd/identity"
	"github.com/saferoads/incidentd/interfaces"
	"github.com/saferoads/incidentd/ledger"
	"github.com/saferoads/incidentd/storage"
	"github.com/saferoads/incidentd/wallet"
	"github.com/saferoads/incidentd/wizard"
)

var flags []cli.Flag = []cli.Flag{
	&cli.StringFlag{
		Name:    "signer-url",
		Value:   "",
		Usage:   "JSON-RPC endpoint of the remote signer bridge",
		EnvVars: []string{"REPORT_SIGNER_URL"},
	},
	&cli.StringFlag{
		Name:    "project-id",
		Value:   "",
		Usage:   "project id for signer negotiation",
		EnvVars: []string{"REPORT_PROJECT_ID"},
	},
	&cli.StringFlag{
		Name:    "rpc-addr",
		Value:   wallet.DefaultRPCURL,
		Usage:   "address to connect to chain RPC",
		EnvVars: []string{"REPORT_RPC_ADDR"},
	},
	&cli.StringFlag{
		Name:    "contract-addr",
		Value:   "",
		Usage:   "incident contract address",
		EnvVars: []string{"REPORT_CONTRACT_ADDR"},
	},
	&cli.StringFlag{
		Name:    "verification-addr",
		Value:   "",
		Usage:   "attestation registry contract address",
		EnvVars: []string{"REPORT_VERIFICATION_ADDR"},
	},
	&cli.StringFlag{
		Name:    "verification-endpoint",
		Value:   "",
		Usage:   "identity proof handshake endpoint",
		EnvVars: []string{"REPORT_VERIFICATION_ENDPOINT"},
	},
	&cli.BoolFlag{
		Name:    "skip-verification",
		Value:   false,
		Usage:   "bypass identity verification (development only)",
		EnvVars: []string{"REPORT_SKIP_VERIFICATION"},
	},
	&cli.StringFlag{
		Name:    "storage-uri",
		Value:   "ipfs://127.0.0.1:5001",
		Usage:   "storage backend uri (ipfs://, file://, s3://)",
		EnvVars: []string{"REPORT_STORAGE_URI"},
	},
	&cli.StringFlag{
		Name:    "storage-email",
		Value:   "",
		Usage:   "storage account email",
		EnvVars: []string{"REPORT_STORAGE_EMAIL"},
	},
	&cli.StringFlag{
		Name:    "storage-space",
		Value:   "",
		Usage:   "storage space did:key",
		EnvVars: []string{"REPORT_STORAGE_SPACE"},
	},
	&cli.BoolFlag{
		Name:  "new-session",
		Value: false,
		Usage: "force a new signer session instead of reusing a cached one",
	},
	&cli.StringFlag{
		Name:  "location",
		Value: "",
		Usage: "incident location",
	},
	&cli.StringFlag{
		Name:  "description",
		Value: "",
		Usage: "incident description",
	},
	&cli.StringFlag{
		Name:  "elderly",
		Value: "unknown",
		Usage: "elderly person involved: yes, no or unknown",
	},
	&cli.StringFlag{
		Name:  "image",
		Value: "",
		Usage: "path to a JPEG photo to attach",
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
}

func main() {
	app := &cli.App{
		Name:   "incident-report",
		Usage:  "Submit an incident report through the full pipeline",
		Flags:  flags,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   cCtx.Bool("log-debug"),
		JSON:    cCtx.Bool("log-json"),
		Service: "incident-report",
		Version: common.Version,
	})

	ctx := context.Background()

	sessions, err := wallet.NewManager(wallet.Config{
		SignerURL: cCtx.String("signer-url"),
		ProjectID: cCtx.String("project-id"),
	}, logger)
	if err != nil {
		return err
	}

	verifier, err := identity.NewPoller(ctx, identity.Config{
		RPCURL:       cCtx.String("rpc-addr"),
		ContractAddr: ethcommon.HexToAddress(cCtx.String("verification-addr")),
		Endpoint:     cCtx.String("verification-endpoint"),
		SkipCheck:    cCtx.Bool("skip-verification"),
	}, logger)
	if err != nil {
		return err
	}

	backend, err := storage.BackendFromURI(cCtx.String("storage-uri"))
	if err != nil {
		return err
	}
	uploader := storage.NewUploader(backend, func(percent int) {
		logger.Debug("Upload progress", slog.Int("percent", percent))
	}, logger)

	submitter, err := ledger.NewSubmitter(ctx, ledger.Config{
		ContractAddr: ethcommon.HexToAddress(cCtx.String("contract-addr")),
	}, cCtx.String("rpc-addr"), sessions, logger)
	if err != nil {
		return err
	}

	cred := interfaces.StorageCredential{
		Identity: cCtx.String("storage-email"),
		SpaceID:  cCtx.String("storage-space"),
	}

	report := &interfaces.Report{
		Location:        cCtx.String("location"),
		Description:     cCtx.String("description"),
		ElderlyInvolved: interfaces.ElderlyInvolved(cCtx.String("elderly")),
	}
	if path := cCtx.String("image"); path != "" {
		image, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		report.Image = image
	}

	flow := wizard.NewController(sessions, verifier, document.NewGenerator(), uploader, submitter, cred, logger)

	if err := flow.ConnectWallet(ctx, cCtx.Bool("new-session")); err != nil {
		return err
	}
	if !cCtx.Bool("skip-verification") {
		req := verifier.Request(flow.Snapshot().Account)
		fmt.Printf("Complete identity verification if prompted: %s\n", req.UniversalLink())
	}
	if err := flow.VerifyIdentity(ctx); err != nil {
		return err
	}
	if err := flow.SetReport(report); err != nil {
		return err
	}
	if err := flow.GenerateDocument(); err != nil {
		return err
	}
	if err := flow.UploadDocument(ctx); err != nil {
		return err
	}
	if err := flow.SubmitReport(ctx); err != nil {
		return err
	}

	agg := flow.Snapshot()
	fmt.Printf("Report submitted\n")
	fmt.Printf("  account:  %s\n", agg.Account.Hex())
	fmt.Printf("  document: %s\n", interfaces.GatewayURL("", agg.ContentID))
	if agg.Record != nil {
		fmt.Printf("  tx:       %s\n", agg.Record.TxHash.Hex())
		fmt.Printf("  block:    %d\n", agg.Record.BlockNumber)
		if agg.Record.ID != nil {
			fmt.Printf("  incident: #%s\n", agg.Record.ID.String())
		}
	}
	return nil
}
