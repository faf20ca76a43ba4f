package contact

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

// Row is one contact handed to an evaluator
type Row struct {
	ContactID string `json:"contactId"`
	Evaluator string `json:"evaluator"`
}

// ParseUpload reads contact rows from a .csv or .json file. Rows missing
// either column are skipped; a file without any valid row is rejected.
func ParseUpload(filename string, r io.Reader) ([]Row, error) {
	var (
		rows []Row
		err  error
	)
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		rows, err = parseJSON(r)
	case ".csv":
		rows, err = parseCSV(r)
	default:
		return nil, fmt.Errorf("%w: please upload a CSV or JSON file", usecaseErrors.ErrUnsupportedFileType)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, usecaseErrors.ErrNoValidRows
	}
	return rows, nil
}

func parseJSON(r io.Reader) ([]Row, error) {
	var items []map[string]any
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{ContactID: stringify(item["contactId"]), Evaluator: stringify(item["evaluator"])}
		if row.ContactID != "" && row.Evaluator != "" {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// stringify renders ids that spreadsheets export as numbers
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func parseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, usecaseErrors.ErrNoValidRows
		}
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}
	contactCol, evaluatorCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "contactid":
			contactCol = i
		case "evaluator":
			evaluatorCol = i
		}
	}
	if contactCol == -1 || evaluatorCol == -1 {
		return nil, usecaseErrors.ErrMissingColumns
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
		}
		row := Row{ContactID: field(record, contactCol), Evaluator: field(record, evaluatorCol)}
		if row.ContactID != "" && row.Evaluator != "" {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
