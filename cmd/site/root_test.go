// File path: cmd/site/root_test.go
package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immensecng/cylinder-retest/internal/config"
	"github.com/immensecng/cylinder-retest/internal/site"
	"github.com/immensecng/cylinder-retest/internal/sqlite"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"serve", "inquiries", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
	assert.True(t, rootCmd.SilenceUsage)
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	var out bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)
	assert.Equal(t, "site version 1.2.3\n", out.String())
}

func TestServeOptionsApplyOnlyChangedFlags(t *testing.T) {
	base := config.DefaultConfig()
	base.InquiryDBPath = "env.db"
	opts := serveOptions{addr: " :9999 ", inquiryDB: "flag.db", whatsApp: "15550001111", noSeed: true}

	changed := map[string]bool{"addr": true, "no-seed": true}
	got := opts.apply(base, func(name string) bool { return changed[name] })
	assert.Equal(t, ":9999", got.Addr)
	assert.Equal(t, "env.db", got.InquiryDBPath, "unchanged flag must not override env")
	assert.Equal(t, "", got.WhatsAppNumber)
	assert.False(t, got.SeedRecords)
}

func TestPrintInquiries(t *testing.T) {
	store, err := sqlite.OpenWithConfig(sqlite.Config{Path: filepath.Join(t.TempDir(), "inquiries.db")})
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	_, err = store.RecordInquiry(ctx, site.Inquiry{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210",
		Message: strings.Repeat("hydro test booking ", 10),
	}, "")
	require.NoError(t, err)
	rows, err := store.RecentInquiries(ctx, 10)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printInquiries(&out, rows, 1))
	text := out.String()
	assert.Contains(t, text, "asha@example.com")
	assert.Contains(t, text, "…")
	assert.Contains(t, text, "showing 1 of 1 inquiries")
	assert.WithinDuration(t, time.Now(), rows[0].CreatedAt, time.Minute)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "short note", summarize("  short\n note ", 20))
	assert.Equal(t, "abcd…", summarize("abcdefgh", 5))
}
