package db

import (
	"database/sql"

	"todo-api/internal/domain/model"
)

// SQLReminderGateway reads reminder candidates over a plain database/sql
// connection. The batch process is an independent client of the shared store
// and does not go through the web process's ORM.
type SQLReminderGateway struct {
	DB *sql.DB
}

var _ ReminderGateway = (*SQLReminderGateway)(nil)

func NewSQLReminderGateway(db *sql.DB) *SQLReminderGateway {
	return &SQLReminderGateway{DB: db}
}

func (gateway *SQLReminderGateway) FindCandidates() ([]model.ReminderCandidate, error) {
	rows, err := gateway.DB.Query(`
		SELECT t.id, t.text, t.due_date, t.complete, u.email
		FROM todos t
		JOIN users u ON u.id = t.user_id
		WHERE t.due_date IS NOT NULL
		ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	results := make([]model.ReminderCandidate, 0)
	for rows.Next() {
		var c model.ReminderCandidate
		if err := rows.Scan(&c.TodoID, &c.Text, &c.DueDate, &c.Complete, &c.Email); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
