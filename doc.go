// Package mailblast provides a CSV-driven mail-merge email blast tool.
//
// It reads recipient data from a CSV file, lets an operator pick an email
// column and a template, renders one personalized message per row and
// sends it over a single SMTP session with a fixed inter-send delay.
//
// Key subpackages:
//
//	github.com/hakaru-org/mailblast/pkg/csvdata  - CSV loading and header detection
//	github.com/hakaru-org/mailblast/pkg/merge    - Template discovery and per-row rendering
//	github.com/hakaru-org/mailblast/pkg/charset  - Minimal-encoding charset negotiation
//	github.com/hakaru-org/mailblast/pkg/mail     - MIME composition and the SMTP session
//	github.com/hakaru-org/mailblast/pkg/blast    - The sequential merge/send pipeline
//	github.com/hakaru-org/mailblast/pkg/config   - Environment configuration
//
// Example Usage:
//
//	package main
//
//	import (
//		"context"
//		"os"
//
//		"github.com/hakaru-org/mailblast/pkg/blast"
//		"github.com/hakaru-org/mailblast/pkg/charset"
//		"github.com/hakaru-org/mailblast/pkg/config"
//		"github.com/hakaru-org/mailblast/pkg/csvdata"
//		"github.com/hakaru-org/mailblast/pkg/mail"
//		"github.com/hakaru-org/mailblast/pkg/merge"
//		"github.com/rs/zerolog/log"
//	)
//
//	func main() {
//		cfg, _ := config.Load()
//		ds, _ := csvdata.Load("list.csv")
//		set, _ := merge.Discover(cfg.TemplateDir)
//		variants, _ := set.Variants("welcome")
//
//		mailer, _ := mail.NewMailer(cfg.Mail, charset.Default())
//		mailer.Dial(context.Background())
//		defer mailer.Close()
//
//		run := blast.New(mailer, merge.NewRenderer(os.DirFS(cfg.TemplateDir)), blast.Options{
//			Dataset:     ds,
//			Variants:    variants,
//			EmailColumn: ds.EmailColumn(),
//			Subject:     "Welcome",
//			From:        cfg.Mail.FromAddress,
//		}, log.Logger)
//		run.Execute(context.Background())
//	}
package mailblast
