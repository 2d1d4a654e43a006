package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"contactflow/internal/model"
	"contactflow/internal/store"
)

// Password assigned to clients created through import. Imports carry no
// credential column, so new accounts start with a known default.
const defaultImportPassword = "client123"

// ImportSummary reports what an import changed.
type ImportSummary struct {
	Created int
	Updated int
	Skipped int
}

// ImportClients reads client rows and upserts them into the user
// collection. A row matches an existing user by id, or failing that by
// case-insensitive email; matched users are updated in place, everything
// else is created as a new client with the default password.
func ImportClients(r io.Reader, s *store.Store) (ImportSummary, error) {
	var summary ImportSummary

	rows, err := readRows(r, clientHeaders)
	if err != nil {
		return summary, err
	}

	users, err := store.GetAll[model.User](s, store.CollectionUsers)
	if err != nil {
		return summary, err
	}

	for _, row := range rows {
		id, name, email := row[0], row[1], row[2]
		if email == "" {
			summary.Skipped++
			continue
		}

		existing := findUser(users, id, email)
		if existing != nil {
			existing.Name = name
			existing.Email = email
			existing.Company = row[3]
			existing.Phone = row[4]
			if err := s.SaveRecord(store.CollectionUsers, existing); err != nil {
				return summary, fmt.Errorf("updating client %s: %w", existing.ID, err)
			}
			summary.Updated++
			continue
		}

		user := &model.User{
			Email:    email,
			Password: defaultImportPassword,
			Name:     name,
			Role:     model.RoleClient,
			Company:  row[3],
			Phone:    row[4],
		}
		user.ID = id
		if err := s.SaveRecord(store.CollectionUsers, user); err != nil {
			return summary, fmt.Errorf("creating client %s: %w", email, err)
		}
		users = append(users, *user)
		summary.Created++
	}

	return summary, nil
}

// ImportRequests reads request rows and upserts them into the request
// collection, matching existing requests by id.
func ImportRequests(r io.Reader, s *store.Store) (ImportSummary, error) {
	var summary ImportSummary

	rows, err := readRows(r, requestHeaders)
	if err != nil {
		return summary, err
	}

	for _, row := range rows {
		id, clientID, title := row[0], row[1], row[2]
		if title == "" {
			summary.Skipped++
			continue
		}

		req, ok, err := store.GetByID[model.Request](s, store.CollectionRequests, id)
		if err != nil {
			return summary, err
		}
		if !ok {
			req = &model.Request{Attachments: []model.Attachment{}}
			req.ID = id
			if created, err := time.Parse(time.RFC3339, row[6]); err == nil {
				req.CreatedAt = created
			}
		}

		req.ClientID = clientID
		req.Title = title
		req.Type = row[3]
		req.Priority = row[4]
		req.Status = row[5]
		if err := s.SaveRecord(store.CollectionRequests, req); err != nil {
			return summary, fmt.Errorf("saving request %s: %w", id, err)
		}
		if ok {
			summary.Updated++
		} else {
			summary.Created++
		}
	}

	return summary, nil
}

// readRows parses the CSV body, validating the header and padding or
// truncating each record to the header width.
func readRows(r io.Reader, headers []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv input")
	}

	header := records[0]
	if len(header) < len(headers) {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}
	for i, want := range headers {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("unexpected csv column %d: got %q, want %q", i, header[i], want)
		}
	}

	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]string, len(headers))
		for i := range row {
			if i < len(record) {
				row[i] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func findUser(users []model.User, id, email string) *model.User {
	for i := range users {
		if id != "" && users[i].ID == id {
			return &users[i]
		}
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}
