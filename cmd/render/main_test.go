package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-composer/internal/domain"
	"github.com/jhoicas/invoice-composer/internal/domain/composition"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

func fixedClock() time.Time { return time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC) }

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr, fixedClock)
	return stdout.String(), err
}

func TestRun_PlantillaHTMLEnIngles(t *testing.T) {
	out, err := runCLI(t, "--kind", "quote", "--locale", "en", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, `lang="en"`)
	assert.Contains(t, out, "QUOTE")
	assert.Contains(t, out, "QUOT-2025-0011")
}

func TestRun_View(t *testing.T) {
	out, err := runCLI(t, "--format", "view")
	require.NoError(t, err)

	var view composition.View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, composition.DocumentID, view.ID)
	assert.Equal(t, "de", view.Locale)
	assert.Equal(t, "RECHNUNG", view.Header.Title)
}

func TestRun_DocumentoDesdeArchivo(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.json")
	doc := entity.Document{Kind: entity.KindInvoice, DocNumber: "R-7", IssueDate: "2025-01-02"}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, raw, 0o600))

	out := filepath.Join(dir, "out.pdf")
	stdout, err := runCLI(t, "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	pdfBytes, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestRun_FormatoNoSoportado(t *testing.T) {
	_, err := runCLI(t, "--format", "docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRun_IdiomaDesconocido(t *testing.T) {
	_, err := runCLI(t, "--format", "html", "--locale", "fr")
	assert.ErrorIs(t, err, i18n.ErrUnknownLocale)
}

func TestRun_TipoDesconocido(t *testing.T) {
	_, err := runCLI(t, "--kind", "receipt", "--format", "view")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestRun_Ayuda(t *testing.T) {
	_, err := runCLI(t, "--help")
	assert.NoError(t, err)
}
