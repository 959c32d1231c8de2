package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"helpdesk/internal/domain/software"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// SampleCSV is the template served to admins preparing a catalog upload.
const SampleCSV = "name,version\nMicrosoft Office,2024\nSlack,4.39\n"

type ImportCatalogCommand struct {
	Reader io.Reader
}

// ImportCatalogResult summarizes one CSV upload. Rows with a blank name are
// skipped and reported in Errors; rows already present in the catalog only
// count as skipped.
type ImportCatalogResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type ImportCatalogUseCase struct {
	softwareRepo software.Repository
	logger       logger.Interface
}

func NewImportCatalogUseCase(softwareRepo software.Repository, logger logger.Interface) *ImportCatalogUseCase {
	return &ImportCatalogUseCase{
		softwareRepo: softwareRepo,
		logger:       logger,
	}
}

func (uc *ImportCatalogUseCase) Execute(ctx context.Context, cmd ImportCatalogCommand) (*ImportCatalogResult, error) {
	reader := csv.NewReader(cmd.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &ImportCatalogResult{Errors: []string{}}

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewValidationError("failed to parse CSV file", err.Error())
		}

		// Header row is optional; recognize and skip it.
		if line == 1 && isHeaderRow(record) {
			continue
		}

		name := strings.TrimSpace(record[0])
		version := ""
		if len(record) > 1 {
			version = strings.TrimSpace(record[1])
		}

		if name == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: name is required", line))
			continue
		}

		existing, err := uc.softwareRepo.FindByNameAndVersion(ctx, name, version)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		entry, err := software.NewEntry(name, version)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", line, err.Error()))
			continue
		}

		if err := uc.softwareRepo.Save(ctx, entry); err != nil {
			if errors.IsConflictError(err) {
				result.Skipped++
				continue
			}
			return nil, err
		}

		result.Imported++
	}

	uc.logger.Infow("software catalog import finished",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)

	return result, nil
}

func isHeaderRow(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name")
}
