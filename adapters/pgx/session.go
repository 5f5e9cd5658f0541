package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/freementors/sdk-go/core"
)

const sessionColumns = `id, mentor_id, mentee_id, topic, questions, status, scheduled_date, created_at, updated_at`

func scanSession(row pgx.Row) (*core.Session, error) {
	s := &core.Session{}
	err := row.Scan(&s.ID, &s.MentorID, &s.MenteeID, &s.Topic, &s.Questions, &s.Status, &s.ScheduledDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (a *Adapter) CreateSession(ctx context.Context, session *core.Session) error {
	query := `INSERT INTO public.sessions (id, mentor_id, mentee_id, topic, questions, status, scheduled_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := a.pool.Exec(ctx, query,
		session.ID, session.MentorID, session.MenteeID, session.Topic, session.Questions, session.Status, session.ScheduledDate, session.CreatedAt, session.UpdatedAt,
	)
	return err
}

func (a *Adapter) SessionByID(ctx context.Context, id string) (*core.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM public.sessions WHERE id = $1`
	return scanSession(a.pool.QueryRow(ctx, query, id))
}

func (a *Adapter) SessionsForUser(ctx context.Context, userID string, role core.Role) ([]*core.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM public.sessions WHERE mentee_id = $1 ORDER BY created_at, id`
	args := []interface{}{userID}
	switch role {
	case core.RoleAdmin:
		query = `SELECT ` + sessionColumns + ` FROM public.sessions ORDER BY created_at, id`
		args = nil
	case core.RoleMentor:
		query = `SELECT ` + sessionColumns + ` FROM public.sessions WHERE mentor_id = $1 ORDER BY created_at, id`
	}

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*core.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (a *Adapter) UpdateSessionStatus(ctx context.Context, id string, status core.SessionStatus) (*core.Session, error) {
	query := `UPDATE public.sessions SET status = $2, updated_at = $3 WHERE id = $1
	          RETURNING ` + sessionColumns

	return scanSession(a.pool.QueryRow(ctx, query, id, status, time.Now().UTC()))
}
