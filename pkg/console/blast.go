package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/hakaru-org/mailblast/pkg/blast"
	"github.com/hakaru-org/mailblast/pkg/charset"
	"github.com/hakaru-org/mailblast/pkg/config"
	"github.com/hakaru-org/mailblast/pkg/csvdata"
	"github.com/hakaru-org/mailblast/pkg/mail"
	"github.com/hakaru-org/mailblast/pkg/merge"
	"github.com/hakaru-org/mailblast/pkg/root"
	"github.com/hakaru-org/mailblast/pkg/telemetry"
)

var (
	csvFile     string
	templateKey string
	subject     string
	fromName    string
	dryRun      string
	traceRun    bool
)

var blastCmd = &cobra.Command{
	Use:   "blast",
	Short: "Run a CSV-driven mail-merge email blast",
	RunE: func(cmd *cobra.Command, args []string) error {
		telemetry.SetGlobalLogger()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if csvFile == "" {
			if err := askInput("CSV File:", "", &csvFile); err != nil {
				return err
			}
		}

		ds, err := csvdata.Load(csvFile)
		if err != nil {
			return err
		}

		set, err := merge.Discover(cfg.TemplateDir)
		if err != nil {
			return err
		}
		renderer := merge.NewRenderer(os.DirFS(cfg.TemplateDir))

		emailColumn, err := askSelect(
			"Please select the column containing email addresses",
			ds.Headers, ds.EmailColumn(),
		)
		if err != nil {
			return err
		}

		if templateKey == "" {
			if templateKey, err = askSelect(
				"Please select the email template to use",
				set.Keys(), "",
			); err != nil {
				return err
			}
		}
		variants, err := set.Variants(templateKey)
		if err != nil {
			return err
		}

		if subject == "" {
			if err := askInput("Please enter the email subject line:", renderer.Subject(variants), &subject); err != nil {
				return err
			}
		}

		var mailFrom string
		if err := askInput("Send email from address:", cfg.Mail.FromAddress, &mailFrom); err != nil {
			return err
		}
		if fromName == "" {
			if err := askInput("Send email from name:", "", &fromName); err != nil {
				return err
			}
		}

		printSummary(ds, emailColumn, mailFrom)

		proceed, err := confirm("Proceed?")
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}

		mailer, err := mail.NewMailer(cfg.Mail, charset.Default())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if traceRun {
			tp, err := telemetry.InitTracer("mailblast")
			if err != nil {
				return fmt.Errorf("initialize tracer: %w", err)
			}
			defer func() {
				if err := tp.Shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Error shutting down tracer")
				}
			}()

			var span trace.Span
			ctx, span = tp.Tracer("blast").Start(ctx, "blast.run")
			defer span.End()
		}

		if err := mailer.Dial(ctx); err != nil {
			return err
		}
		defer func() {
			if err := mailer.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing mail session")
			}
		}()

		run := blast.New(mailer, renderer, blast.Options{
			Dataset:     ds,
			Variants:    variants,
			EmailColumn: emailColumn,
			Subject:     subject,
			From:        mailFrom,
			FromName:    fromName,
			DryRun:      dryRun,
		}, log.Logger)

		stats, err := run.Execute(ctx)
		if err != nil {
			return err
		}

		log.Info().
			Int("sent", stats.Sent).
			Int("skipped", stats.Skipped).
			Msg("Blast finished")
		return nil
	},
}

func printSummary(ds *csvdata.Dataset, emailColumn, mailFrom string) {
	fmt.Println("\n--------------------------------------------------")
	fmt.Printf("%25s: %d data rows\n", filepath.Base(csvFile), ds.Count())
	fmt.Printf("     Using Email Template: %s\n", templateKey)
	fmt.Printf("            Email Subject: %s\n", subject)
	if fromName != "" {
		fmt.Printf("          Send Email From: %s <%s>\n", fromName, mailFrom)
	} else {
		fmt.Printf("          Send Email From: %s\n", mailFrom)
	}
	if dryRun != "" {
		fmt.Printf("        DRY RUN Emails To: %s\n", dryRun)
	} else {
		fmt.Printf("     Send Email To Column: %s\n", emailColumn)
	}
	fmt.Println("--------------------------------------------------")
}

func init() {
	blastCmd.Flags().StringVar(&csvFile, "csv", "", "CSV file containing data for the mail merge")
	blastCmd.Flags().StringVar(&templateKey, "template", "", "Email template to use for the mail merge")
	blastCmd.Flags().StringVar(&subject, "subject", "", "Email subject line")
	blastCmd.Flags().StringVar(&fromName, "from-name", "", "Name of the email sender")
	blastCmd.Flags().StringVar(&dryRun, "dry-run", "", "Send every email to this address for testing")
	blastCmd.Flags().BoolVar(&traceRun, "trace", false, "Emit OpenTelemetry spans for the run to stdout")

	root.GetRoot().AddCommand(blastCmd)
}
