// Command provision grants the admin claim to the bootstrap emails. It is the
// one-time step that creates the first admins, who can then manage claims
// through the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"inventory/config"
	"inventory/internal/infra/firebase"
	"inventory/internal/infra/identity"
	logs "inventory/internal/infra/log"
	"inventory/internal/infra/metrics"
	"inventory/internal/usecase/impl"

	"github.com/pkg/errors"
)

func main() {
	emails := flag.String("emails", "", "Comma-separated emails to grant; defaults to admin.bootstrapEmails")
	timeout := flag.Duration("timeout", time.Minute, "Overall timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	failed, err := run(ctx, *emails)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(2)
	}
}

func run(ctx context.Context, emailFlag string) (int, error) {
	cfg, err := config.New()
	if err != nil {
		return 0, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return 0, err
	}

	emails := splitEmails(emailFlag)
	if len(emails) == 0 && cfg.Admin != nil {
		emails = cfg.Admin.BootstrapEmails
	}
	if len(emails) == 0 {
		return 0, errors.New("no emails given and admin.bootstrapEmails is empty")
	}

	clients := firebase.NewClients(ctx, cfg.Firebase, logger, nil)
	provider, err := identity.NewProvider(identity.Params{
		Config:   cfg,
		Logger:   logger,
		Firebase: clients,
	})
	if err != nil {
		return 0, err
	}

	admins := impl.NewAdminService(impl.AdminServiceParams{
		IdentityProvider: provider,
		Recorder:         metrics.NewRecorder(),
		Logger:           logger,
	})

	failed := 0
	for _, result := range admins.ProvisionAdmins(ctx, emails) {
		if result.Err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", result.Email, result.Err)

			continue
		}
		fmt.Printf("OK    %s (%s)\n", result.Email, result.UID)
	}

	return failed, nil
}

func splitEmails(value string) []string {
	var emails []string
	for part := range strings.SplitSeq(value, ",") {
		if email := strings.TrimSpace(part); email != "" {
			emails = append(emails, email)
		}
	}

	return emails
}
