package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"estate-hub/domain"
	"estate-hub/domain/mimetypes"
	"estate-hub/errors"
	"estate-hub/internal"
	"estate-hub/repositories"
	"estate-hub/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var errRejected = stderrors.New("some documents were rejected")

// checks maps a document kind to its deserializer.
var checks = map[string]func(text []byte) error{
	"property":     check[domain.Property],
	"filters":      check[domain.SearchFilters],
	"user":         check[domain.User],
	"message":      check[domain.Message],
	"conversation": check[domain.Conversation],
	"payment":      check[domain.Payment],
	"verification": check[domain.VerificationRequest],
	"notification": check[domain.Notification],
	"register":     check[domain.RegisterData],
	"login":        check[domain.LoginCredentials],
	"auth":         check[domain.AuthResponse],
	"error":        check[domain.ErrorState],
}

func check[E domain.Entity](text []byte) error {
	_, err := domain.Deserialize[E](text)
	return err
}

type app struct {
	out    io.Writer
	config internal.Config
	log    *slog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "estate-hub",
		Short:         "Validate and store real-estate marketplace documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := internal.Load()
			if err != nil {
				return err
			}
			a.config = config
			a.log = logs.GetLoggerFromString(config.LogLevel)
			return nil
		},
	}
	root.SetOut(out)
	root.AddCommand(
		a.validateCmd(),
		a.importCmd(),
		a.listCmd(),
		a.settleCmd(),
		a.messagesCmd(),
		a.kindsCmd(),
	)
	return root
}

func (a *app) validateCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Check JSON documents against the marketplace model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deserialize, ok := checks[kind]
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of %s", kind, strings.Join(kindNames(), ", "))
			}
			failed := 0
			for _, path := range args {
				text, err := readDocument(path)
				if err == nil {
					err = deserialize(text)
				}
				a.report(path, err)
				if err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(args), errRejected)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "property", "document kind")
	return cmd
}

// readDocument loads a file, refusing content that is not text.
func readDocument(path string) ([]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if detected, ok := mimetypes.Sniff(text); !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, detected)
	}
	return text, nil
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [files...]",
		Short: "Store property documents and print the resulting envelopes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *badger.DB) error {
				service := services.NewPropertyService(a.log, repositories.NewPropertyRepository(db, a.log),
					a.config.DefaultPageSize, a.config.MaxPageSize)
				failed := 0
				for i, path := range args {
					if err := cmd.Context().Err(); err != nil {
						a.log.Warn("Import interrupted", "remaining", len(args)-i)
						return fmt.Errorf("import interrupted: %w", err)
					}
					text, err := readDocument(path)
					if err != nil {
						a.report(path, err)
						failed++
						continue
					}
					envelope := service.Import(text)
					response, err := domain.Deserialize[domain.ApiResponse[domain.Property]](envelope)
					if err == nil && !response.Success {
						err = stderrors.New(lo.FromPtr(response.Error))
					}
					a.report(path, err)
					if err != nil {
						failed++
						continue
					}
					fmt.Fprintln(a.out, string(envelope))
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d: %w", failed, len(args), errRejected)
				}
				return nil
			})
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var page, perPage int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of stored properties, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *badger.DB) error {
				service := services.NewPropertyService(a.log, repositories.NewPropertyRepository(db, a.log),
					a.config.DefaultPageSize, a.config.MaxPageSize)
				fmt.Fprintln(a.out, string(service.List(page, perPage)))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "items per page, 0 for the configured default")
	return cmd
}

func (a *app) settleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <payment-id> <completed|failed>",
		Short: "Move a pending payment to its final status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *badger.DB) error {
				service := services.NewPaymentService(a.log, repositories.NewPaymentRepository(db, a.log))
				fmt.Fprintln(a.out, string(service.UpdateStatus(args[0], args[1])))
				return nil
			})
		},
	}
}

func (a *app) messagesCmd() *cobra.Command {
	var cursor string
	cmd := &cobra.Command{
		Use:   "messages <conversation-id>",
		Short: "Print a conversation newest first, LIMIT_MESSAGES at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *badger.DB) error {
				repository := repositories.NewConversationRepository(db, a.log, a.config.LimitMessages)
				messages, next, err := repository.GetMessages(args[0], lo.EmptyableToPtr(cursor))
				if err != nil {
					return err
				}
				for _, message := range messages {
					data, err := domain.Serialize(message)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, string(data))
				}
				if len(messages) > 0 {
					fmt.Fprintf(a.out, "next cursor: %s\n", lo.FromPtr(next))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&cursor, "cursor", "", "resume after this cursor")
	return cmd
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the document kinds accepted by validate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range kindNames() {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
}

func (a *app) withStore(fn func(db *badger.DB) error) error {
	db, err := badger.Open(badger.DefaultOptions(a.config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		a.log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()
	return fn(db)
}

// report prints one coloured OK/FAIL line per document.
func (a *app) report(path string, err error) {
	status, detail := a.paint(color.FgGreen, "OK"), ""
	if err != nil {
		status, detail = a.paint(color.FgRed, "FAIL"), "  "+err.Error()
	}
	fmt.Fprintf(a.out, "%s %s%s\n", status, path, detail)
}

func (a *app) paint(colour color.Color, text string) string {
	if !a.config.Colours {
		return text
	}
	return color.New(colour).Render(text)
}

func kindNames() []string {
	names := lo.Keys(checks)
	slices.Sort(names)
	return names
}
