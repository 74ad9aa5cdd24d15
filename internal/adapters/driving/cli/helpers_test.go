package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/services"
	"github.com/custodia-labs/htmlreg/internal/logger"
)

const testURLBase = "https://developer.mozilla.org/en-US/docs/Web/HTML/Reference/Elements/"

func testRegistry() domain.Registry {
	el := func(tag string, typ domain.ElementType, category string) domain.Element {
		return domain.Element{
			Tag:         tag,
			Description: "The " + tag + " element.",
			Type:        typ,
			Category:    category,
			URL:         testURLBase + tag,
			IsVoid:      domain.IsVoidTag(tag),
		}
	}
	return domain.Registry{
		"br":    el("br", domain.TypeInline, "Inline text semantics"),
		"div":   el("div", domain.TypeBlock, "Text content"),
		"input": el("input", domain.TypeForm, "Forms"),
		"p":     el("p", domain.TypeBlock, "Text content"),
		"span":  el("span", domain.TypeInline, "Inline text semantics"),
		"title": el("title", domain.TypeMeta, "Document metadata"),
	}
}

// setupTestQuery installs a small fixture registry for query commands.
func setupTestQuery() func() {
	old := queryService
	queryService = services.NewQueryService(testRegistry())
	return func() {
		queryService = old
	}
}

// resetFlags restores every flag to its default so state from one
// Execute does not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and an isolated config
// file, returning stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		logger.SetVerbose(false)
		appConfig = nil
	})

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	full := append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...)
	rootCmd.SetArgs(full)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}
