package word

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uva-matrix/internal/config"
	"uva-matrix/internal/model"
)

func readDocumentXML(t *testing.T, r io.ReaderAt, size int64) string {
	t.Helper()

	zr, err := zip.NewReader(r, size)
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	doc := readDocumentXML(t, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	for _, p := range Placeholders {
		assert.Contains(t, doc, p)
	}
	assert.NoError(t, checkPlaceholders(buf.Bytes()))
}

func TestWordExportRejectsIncompleteTemplate(t *testing.T) {
	parts := make([]Part, len(templateParts))
	copy(parts, templateParts)
	for i, p := range parts {
		if p.Name == documentPart {
			parts[i].Body = strings.Replace(p.Body, PlaceholderContent, "", 1)
		}
	}

	exp := &WordExporter{template: func() ([]byte, error) {
		var buf bytes.Buffer
		err := writeParts(&buf, parts)
		return buf.Bytes(), err
	}}

	cfg := &config.Config{
		Output: config.OutputConfig{
			ReportDir:  filepath.Join(t.TempDir(), "reports"),
			ReportName: "summary",
		},
	}

	err := exp.Export(model.NewSummary(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), PlaceholderContent)

	_, statErr := os.Stat(cfg.ReportPath("docx"))
	assert.True(t, os.IsNotExist(statErr), "no report from an incomplete template")
}

func TestWordExport(t *testing.T) {
	braking := model.Entry{L1Name: "Safety & Security", L1Category: "Core", L1Weight: 0.3, L2Name: "Braking", L2Weight: 0.5}
	s := model.NewSummary()
	s.InputPath = "/data/UVA模型数据底表.xlsx"
	s.RunDate = "2026-10-19"
	s.Vehicles = []*model.VehicleResult{
		{
			Document: &model.Document{VehicleID: "sedanx", SheetName: "SedanX 数据底表", Entries: []model.Entry{braking}},
			Status:   model.StatusWritten,
		},
		{
			Document: &model.Document{VehicleID: "suvy", SheetName: "Suvy 数据底表"},
			Status:   model.StatusFailed,
			Err:      errors.New("disk full"),
		},
	}

	cfg := &config.Config{
		Output: config.OutputConfig{
			ReportDir:  filepath.Join(t.TempDir(), "reports"),
			ReportName: "summary",
		},
	}

	exp := NewWordExporter()
	assert.Equal(t, "docx", exp.Extension())
	require.NoError(t, exp.Export(s, cfg))

	zr, err := zip.OpenReader(cfg.ReportPath("docx"))
	require.NoError(t, err)
	defer zr.Close()

	var doc string
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			rc.Close()
			require.NoError(t, err)
			doc = string(data)
		}
	}

	assert.NotContains(t, doc, "{{")
	assert.Contains(t, doc, "Date: 2026-10-19")
	assert.Contains(t, doc, "Vehicles: 2 (1 written)")
	assert.Contains(t, doc, "[WRITTEN] sedanx (SedanX 数据底表)")
	assert.Contains(t, doc, "Safety &amp; Security")
	assert.Contains(t, doc, "Error: disk full")
	assert.False(t, strings.Contains(doc, "Safety & Security"), "text must be XML-escaped")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "智能驾...", truncate("智能驾驶辅助系统", 6))
}
