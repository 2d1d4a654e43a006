// Package csvio moves request and client records through CSV files.
// Exports quote every field unconditionally so titles and descriptions
// with commas or newlines survive a round trip.
package csvio

import (
	"fmt"
	"io"
	"strings"
	"time"

	"contactflow/internal/model"
)

// Column headers, in export order.
var (
	requestHeaders = []string{"ID", "Client ID", "Title", "Type", "Priority", "Status", "Created At", "Updated At"}
	clientHeaders  = []string{"ID", "Name", "Email", "Company", "Phone", "Created At"}
)

// ExportRequests writes the given requests as CSV. Timestamps use RFC 3339.
func ExportRequests(w io.Writer, requests []model.Request) error {
	if err := writeRow(w, requestHeaders); err != nil {
		return err
	}
	for _, r := range requests {
		row := []string{
			r.ID,
			r.ClientID,
			r.Title,
			r.Type,
			r.Priority,
			r.Status,
			r.CreatedAt.Format(time.RFC3339),
			r.UpdatedAt.Format(time.RFC3339),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ExportClients writes the client subset of the given users as CSV.
// Passwords are never exported.
func ExportClients(w io.Writer, users []model.User) error {
	if err := writeRow(w, clientHeaders); err != nil {
		return err
	}
	for _, u := range users {
		if u.Role != model.RoleClient {
			continue
		}
		row := []string{
			u.ID,
			u.Name,
			u.Email,
			u.Company,
			u.Phone,
			u.CreatedAt.Format(time.RFC3339),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRow emits one CSV line with every field quoted. Interior quotes
// are doubled per RFC 4180.
func writeRow(w io.Writer, fields []string) error {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing csv row: %w", err)
	}
	return nil
}
