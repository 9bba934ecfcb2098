// Package importer bulk-loads card records from CSV exports, one named set
// folder at a time. Imports are idempotent: a card whose name already exists
// in the store is skipped, never updated, so re-running an import is safe.
package importer

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/card"
	"github.com/jorge-castellon-jr/chess-tcg/internal/keyword"
	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
	"github.com/jorge-castellon-jr/chess-tcg/internal/set"
)

const logFileName = "migration-errors.log"

// Importer wires the stores an import run touches. The store handles are
// passed in explicitly; nothing here reaches for ambient globals.
type Importer struct {
	cards    card.Repo
	sets     set.Repo
	keywords keyword.Repo
	logger   *log.Logger
}

func New(cards card.Repo, sets set.Repo, keywords keyword.Repo, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.Default()
	}
	return &Importer{cards: cards, sets: sets, keywords: keywords, logger: logger}
}

// FileReport is the outcome tally for a single CSV file.
type FileReport struct {
	Name      string `json:"name"`
	Processed int    `json:"processed"`
	Errors    int    `json:"errors"`
	Skipped   int    `json:"skipped"`
}

// Report aggregates an entire import run.
type Report struct {
	SetName        string       `json:"setName"`
	FilesProcessed int          `json:"filesProcessed"`
	CardsProcessed int          `json:"cardsProcessed"`
	Errors         int          `json:"errors"`
	Skipped        int          `json:"skipped"`
	Files          []FileReport `json:"files"`
}

// ListSetFolders returns the immediate subdirectories of exportsRoot, the
// importable set names.
func ListSetFolders(exportsRoot string) ([]string, *Failure) {
	entries, err := os.ReadDir(exportsRoot)
	if err != nil {
		return nil, failf(CodeExportsUnreadable, "Could not read exports directory", err.Error())
	}
	folders := []string{}
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	sort.Strings(folders)
	return folders, nil
}

// ImportSet imports every CSV file under exportsRoot/<setName>. Structural
// problems (missing folder, no CSV files) fail the whole run; row problems
// are logged, counted, and skipped over.
func (im *Importer) ImportSet(ctx context.Context, setName, exportsRoot, logsRoot string) (*Report, *Failure) {
	setName = strings.TrimSpace(setName)
	if setName == "" {
		return nil, failf(CodeSetFolderMissing, "setName is required", "")
	}

	setPath := filepath.Join(exportsRoot, setName)
	info, err := os.Stat(setPath)
	if err != nil || !info.IsDir() {
		return nil, failf(CodeSetFolderMissing, fmt.Sprintf("Set folder %q not found", setName), setPath)
	}

	auditLog, err := openAuditLog(logsRoot)
	if err != nil {
		return nil, failf(CodeInternal, "Could not open import log", err.Error())
	}
	defer auditLog.Close()

	setID, failure := im.resolveSet(ctx, setName)
	if failure != nil {
		return nil, failure
	}

	entries, err := os.ReadDir(setPath)
	if err != nil {
		return nil, failf(CodeExportsUnreadable, fmt.Sprintf("Could not read set folder %q", setName), err.Error())
	}
	var csvFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			csvFiles = append(csvFiles, e.Name())
		}
	}
	sort.Strings(csvFiles)
	if len(csvFiles) == 0 {
		return nil, failf(CodeNoCSVFiles, fmt.Sprintf("No CSV files found in %s directory", setName), setPath)
	}

	// One dictionary load per run; every row matches against this snapshot.
	dict, err := im.keywords.List(ctx)
	if err != nil {
		im.logger.Printf("keyword dictionary unavailable, importing without auto-tagging: %v", err)
		dict = nil
	}

	report := &Report{SetName: setName, FilesProcessed: len(csvFiles)}
	for _, name := range csvFiles {
		fr := im.importFile(ctx, filepath.Join(setPath, name), setID, dict, auditLog)
		fr.Name = name
		report.CardsProcessed += fr.Processed
		report.Errors += fr.Errors
		report.Skipped += fr.Skipped
		report.Files = append(report.Files, fr)

		auditLog.line(fmt.Sprintf("File %s: %d processed, %d errors, %d skipped",
			name, fr.Processed, fr.Errors, fr.Skipped))
	}

	im.logger.Printf("import completed for set %q: files=%d processed=%d errors=%d skipped=%d",
		setName, report.FilesProcessed, report.CardsProcessed, report.Errors, report.Skipped)
	return report, nil
}

// resolveSet finds the set by exact name or creates it with releaseDate now.
func (im *Importer) resolveSet(ctx context.Context, setName string) (model.SetID, *Failure) {
	existing, err := im.sets.GetByName(ctx, setName)
	if err == nil {
		return existing.ID, nil
	}
	if err != set.ErrNotFound {
		return "", failf(CodeStoreError, "Could not look up set", err.Error())
	}
	created, err := im.sets.Create(ctx, model.Set{Name: setName, ReleaseDate: time.Now()})
	if err != nil {
		return "", failf(CodeStoreError, "Could not create set", err.Error())
	}
	return created.ID, nil
}

// importFile processes one CSV file's rows sequentially. Sequential order
// keeps the name-exists check race-free within this run.
func (im *Importer) importFile(ctx context.Context, path string, setID model.SetID, dict []model.Keyword, auditLog *auditLog) FileReport {
	var fr FileReport

	rows, err := readCSVRows(path)
	if err != nil {
		auditLog.line(fmt.Sprintf("Error reading %s: %v", filepath.Base(path), err))
		fr.Errors++
		return fr
	}

	for _, row := range rows {
		name := strings.TrimSpace(row[colName])
		if name == "" {
			auditLog.line(fmt.Sprintf("Row with empty Name in %s skipped", filepath.Base(path)))
			fr.Errors++
			continue
		}

		_, err := im.cards.GetByName(ctx, name)
		if err == nil {
			auditLog.line(fmt.Sprintf("Card %q already exists. Skipping.", name))
			fr.Skipped++
			continue
		}
		if err != card.ErrNotFound {
			auditLog.line(fmt.Sprintf("Error processing card %q: %v", name, err))
			fr.Errors++
			continue
		}

		c := buildCard(row, setID, dict)
		if _, err := im.cards.Create(ctx, c); err != nil {
			auditLog.line(fmt.Sprintf("Error processing card %q: %v", name, err))
			fr.Errors++
			continue
		}
		fr.Processed++
	}
	return fr
}
