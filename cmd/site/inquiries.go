// File path: cmd/site/inquiries.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/immensecng/cylinder-retest/internal/sqlite"
)

func newInquiriesCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "List logged contact inquiries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path := strings.TrimSpace(dbPath)
			if path == "" {
				path = cfg.InquiryDBPath
			}
			if path == "" {
				return fmt.Errorf("no inquiry log configured: set SITE_INQUIRY_DB or --db")
			}
			store, err := sqlite.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			rows, err := store.RecentInquiries(ctx, limit)
			if err != nil {
				return err
			}
			total, err := store.CountInquiries(ctx)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{"total": total, "inquiries": rows})
			}
			return printInquiries(cmd.OutOrStdout(), rows, total)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "inquiry log path (defaults to SITE_INQUIRY_DB)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of inquiries to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printInquiries(out io.Writer, rows []sqlite.InquiryRow, total int) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECEIVED\tNAME\tEMAIL\tPHONE\tMESSAGE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.ID, row.CreatedAt.Local().Format("2006-01-02 15:04"), row.Name, row.Email, row.Phone, summarize(row.Message, 48))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "showing %d of %d inquiries\n", len(rows), total)
	return err
}

func summarize(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}
