package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/freementors/sdk-go/core"
)

const reviewColumns = `id, session_id, mentor_id, mentee_id, rating, content, visible, created_at, updated_at`

func scanReview(row pgx.Row) (*core.Review, error) {
	r := &core.Review{}
	err := row.Scan(&r.ID, &r.SessionID, &r.MentorID, &r.MenteeID, &r.Rating, &r.Content, &r.Visible, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrReviewNotFound
		}
		return nil, err
	}
	return r, nil
}

func (a *Adapter) CreateReview(ctx context.Context, review *core.Review) error {
	query := `INSERT INTO public.reviews (id, session_id, mentor_id, mentee_id, rating, content, visible, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := a.pool.Exec(ctx, query,
		review.ID, review.SessionID, review.MentorID, review.MenteeID, review.Rating, review.Content, review.Visible, review.CreatedAt, review.UpdatedAt,
	)
	return err
}

func (a *Adapter) ReviewByID(ctx context.Context, id string) (*core.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM public.reviews WHERE id = $1`
	return scanReview(a.pool.QueryRow(ctx, query, id))
}

func (a *Adapter) ReviewBySession(ctx context.Context, sessionID string) (*core.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM public.reviews WHERE session_id = $1`
	return scanReview(a.pool.QueryRow(ctx, query, sessionID))
}

func (a *Adapter) ReviewsForMentor(ctx context.Context, mentorID string, visibleOnly bool) ([]*core.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM public.reviews WHERE mentor_id = $1 ORDER BY created_at, id`
	if visibleOnly {
		query = `SELECT ` + reviewColumns + ` FROM public.reviews WHERE mentor_id = $1 AND visible ORDER BY created_at, id`
	}

	rows, err := a.pool.Query(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (a *Adapter) ListReviews(ctx context.Context) ([]*core.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM public.reviews ORDER BY created_at, id`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReviews(rows)
}

func collectReviews(rows pgx.Rows) ([]*core.Review, error) {
	var reviews []*core.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (a *Adapter) SetReviewVisibility(ctx context.Context, id string, visible bool) (*core.Review, error) {
	query := `UPDATE public.reviews SET visible = $2, updated_at = $3 WHERE id = $1
	          RETURNING ` + reviewColumns

	return scanReview(a.pool.QueryRow(ctx, query, id, visible, time.Now().UTC()))
}
