package models

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

/*
Column Mismatch Report Usage:

Compares the live schema against the gorm tags of the models so drift between
the SQL migrations and the Go structs is caught before it shows up as
silently dropped fields in a response.

1. Set the environment variable: GENERATE_COLUMN_REPORT=true
2. Run the server binary; it prints the report and exits.
*/

// TableModels maps each table to the model it is scanned into
var TableModels = map[string]any{
	"projects":      Project{},
	"case_studies":  CaseStudy{},
	"about_content": AboutContent{},
	"vibe_configs":  VibeConfig{},
}

// TableReport lists the columns of one table without a matching model field
type TableReport struct {
	Table     string
	Missing   []string
	NotExists bool
}

// ColumnMismatchReport builds the report for every table in TableModels
func ColumnMismatchReport(db *gorm.DB) ([]TableReport, error) {
	tables := make([]string, 0, len(TableModels))
	for name := range TableModels {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	reports := make([]TableReport, 0, len(tables))
	for _, tableName := range tables {
		dbColumns, exists, err := getTableColumns(db, tableName)
		if err != nil {
			return nil, err
		}
		if !exists {
			reports = append(reports, TableReport{Table: tableName, NotExists: true})
			continue
		}

		modelFields := getModelFields(TableModels[tableName])
		reports = append(reports, TableReport{
			Table:   tableName,
			Missing: findColumnMismatches(dbColumns, modelFields),
		})
	}
	return reports, nil
}

// LogColumnMismatchReport runs the report and writes it to the global logger
func LogColumnMismatchReport(db *gorm.DB) error {
	reports, err := ColumnMismatchReport(db)
	if err != nil {
		return err
	}

	total := 0
	for _, report := range reports {
		switch {
		case report.NotExists:
			log.Warn().Str("table", report.Table).Msg("table does not exist yet (run migrations)")
		case len(report.Missing) > 0:
			log.Warn().Str("table", report.Table).Strs("columns", report.Missing).Msg("columns not accounted for in model")
		default:
			log.Info().Str("table", report.Table).Msg("all columns are accounted for in the model")
		}
		total += len(report.Missing)
	}
	log.Info().Int("totalMismatches", total).Msg("column mismatch report complete")
	return nil
}

// getTableColumns retrieves column names from a database table
func getTableColumns(db *gorm.DB, tableName string) ([]string, bool, error) {
	var columns []string
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`
	if err := db.Raw(query, tableName).Scan(&columns).Error; err != nil {
		return nil, false, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}
	return columns, len(columns) > 0, nil
}

// getModelFields extracts column names from the gorm tags of a struct
func getModelFields(model any) []string {
	var fields []string
	t := reflect.TypeOf(model)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if columnName := extractColumnNameFromGormTag(field.Tag.Get("gorm")); columnName != "" {
			fields = append(fields, columnName)
		}
	}
	return fields
}

// extractColumnNameFromGormTag extracts the column name from a GORM tag
func extractColumnNameFromGormTag(gormTag string) string {
	for _, part := range strings.Split(gormTag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	return mismatches
}
