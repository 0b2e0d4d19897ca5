// Package importer decodes the users and status-updates CSV exports.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"social-network/internal/model"
)

// Column names of the users file.
const (
	ColUserID   = "USER_ID"
	ColEmail    = "EMAIL"
	ColName     = "NAME"
	ColLastName = "LASTNAME"
)

// Column names of the status-updates file. USER_ID is shared with the users file.
const (
	ColStatusID   = "STATUS_ID"
	ColStatusText = "STATUS_TEXT"
)

var (
	UserColumns   = []string{ColUserID, ColEmail, ColName, ColLastName}
	StatusColumns = []string{ColStatusID, ColUserID, ColStatusText}
)

var (
	ErrEmptyFile     = errors.New("csv has no header")
	ErrMissingColumn = errors.New("csv is missing a required column")
)

// ReadUsers decodes every row of a users file.
func ReadUsers(r io.Reader) ([]model.User, error) {
	users := []model.User{}
	err := readRows(r, UserColumns, func(row func(string) string) {
		users = append(users, model.User{
			UserID:   row(ColUserID),
			Email:    row(ColEmail),
			Name:     row(ColName),
			LastName: row(ColLastName),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	return users, nil
}

// ReadStatuses decodes every row of a status-updates file.
func ReadStatuses(r io.Reader) ([]model.Status, error) {
	statuses := []model.Status{}
	err := readRows(r, StatusColumns, func(row func(string) string) {
		statuses = append(statuses, model.Status{
			StatusID: row(ColStatusID),
			UserID:   row(ColUserID),
			Text:     row(ColStatusText),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read statuses: %w", err)
	}
	return statuses, nil
}

// readRows checks the header for the required columns and calls emit once per data row.
// Columns are looked up by name, so their order in the file does not matter.
func readRows(r io.Reader, required []string, emit func(row func(string) string)) error {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ErrEmptyFile
	}
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		emit(func(col string) string { return record[index[col]] })
	}
}
