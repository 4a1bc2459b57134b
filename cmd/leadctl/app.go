package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"standeal-backend/pkg/leadclient"
	"standeal-backend/pkg/leadform"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "leadctl",
		Usage:     "Operator tool for the Standeal lead API",
		Version:   version,
		Writer:    out,
		ErrWriter: os.Stderr,
		Before: func(c *cli.Context) error {
			// Same .env the services read; missing file is fine
			_ = godotenv.Load()
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend-url",
				Value:   "http://localhost:8080",
				Usage:   "Base URL of the lead API",
				EnvVars: []string{"BACKEND_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 15 * time.Second,
				Usage: "Per-call timeout",
			},
		},
		Commands: []*cli.Command{
			companyInfoCommand(),
			quoteCommand(),
			contactCommand(),
			adminTokenCommand(),
			exportCommand(),
		},
	}
}

func clientFrom(c *cli.Context) *leadclient.Client {
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return leadclient.New(c.String("backend-url"), leadclient.WithLogger(logger))
}

func withTimeout(c *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, c.Duration("timeout"))
}

// =============================================================================
// COMPANY INFO
// =============================================================================

func companyInfoCommand() *cli.Command {
	return &cli.Command{
		Name:  "company-info",
		Usage: "Print the company info served by the API",
		Action: func(c *cli.Context) error {
			ctx, cancel := withTimeout(c)
			defer cancel()

			info, err := clientFrom(c).FetchCompanyInfo(ctx)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}

// =============================================================================
// LEAD SUBMISSION
// =============================================================================

// formFlags turns every form field into a --flag with dashes instead of underscores.
func formFlags(fields []string, required map[string]bool) []cli.Flag {
	flags := make([]cli.Flag, 0, len(fields))
	for _, field := range fields {
		flags = append(flags, &cli.StringFlag{
			Name:     strings.ReplaceAll(field, "_", "-"),
			Usage:    field,
			Required: required[field],
		})
	}
	return flags
}

func submitForm(c *cli.Context, form leadform.FormID, fields []string) error {
	session := leadform.NewSession()
	for _, field := range fields {
		if err := session.Update(form, field, c.String(strings.ReplaceAll(field, "_", "-"))); err != nil {
			return err
		}
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	err := session.Submit(ctx, form, clientFrom(c))
	var fieldErrs *leadform.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs.Errors {
			fmt.Fprintf(c.App.ErrWriter, "  --%s: %s\n", strings.ReplaceAll(fe.Field, "_", "-"), fe.Message)
		}
		return errors.New("form is incomplete")
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s submitted\n", form)
	return nil
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Submit a transport quote request",
		Flags: formFlags(leadform.QuoteFieldNames(), map[string]bool{"client_name": true, "email": true}),
		Action: func(c *cli.Context) error {
			return submitForm(c, leadform.FormQuote, leadform.QuoteFieldNames())
		},
	}
}

func contactCommand() *cli.Command {
	return &cli.Command{
		Name:  "contact",
		Usage: "Submit a contact message",
		Flags: formFlags(leadform.ContactFieldNames(), map[string]bool{"name": true, "email": true}),
		Action: func(c *cli.Context) error {
			return submitForm(c, leadform.FormContact, leadform.ContactFieldNames())
		},
	}
}

// =============================================================================
// ADMIN
// =============================================================================

func adminTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin-token",
		Usage: "Mint an HS256 bearer token for the lead list endpoints",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "secret",
				Usage:    "Signing secret",
				EnvVars:  []string{"ADMIN_JWT_SECRET"},
				Required: true,
			},
			&cli.StringFlag{
				Name:  "subject",
				Value: "admin",
				Usage: "Token subject",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Value: time.Hour,
				Usage: "Token lifetime",
			},
		},
		Action: func(c *cli.Context) error {
			now := time.Now()
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
				Subject:   c.String("subject"),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(c.Duration("ttl"))),
			}).SignedString([]byte(c.String("secret")))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Download the quote requests as an XLSX workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Admin bearer token (see admin-token)",
				EnvVars:  []string{"LEADCTL_TOKEN"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "cotatii.xlsx",
				Usage:   "Output file",
			},
		},
		Action: func(c *cli.Context) error {
			ctx, cancel := withTimeout(c)
			defer cancel()

			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			if err := clientFrom(c).ExportQuotes(ctx, c.String("token"), f); err != nil {
				f.Close()
				_ = os.Remove(c.String("out"))
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "wrote %s\n", c.String("out"))
			return nil
		},
	}
}
