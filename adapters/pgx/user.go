package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/freementors/sdk-go/core"
)

const uniqueViolation = "23505"

func (a *Adapter) CreateUser(ctx context.Context, user *core.User, passwordHash string) error {
	query := `INSERT INTO public.users (id, email, first_name, last_name, role, bio, profile_picture, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := a.pool.Exec(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.Role, user.Bio, user.ProfilePicture, passwordHash, user.CreatedAt, user.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return core.ErrEmailTaken
	}
	return err
}

const userColumns = `id, email, first_name, last_name, role, bio, profile_picture, created_at, updated_at`

func scanUser(row pgx.Row) (*core.User, error) {
	u := &core.User{}
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Bio, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (a *Adapter) UserByEmail(ctx context.Context, email string) (*core.User, string, error) {
	query := `SELECT ` + userColumns + `, password_hash FROM public.users WHERE lower(email) = lower($1)`

	u := &core.User{}
	var hash string
	err := a.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Bio, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt, &hash,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", core.ErrUserNotFound
		}
		return nil, "", err
	}
	return u, hash, nil
}

func (a *Adapter) UserByID(ctx context.Context, id string) (*core.User, error) {
	query := `SELECT ` + userColumns + ` FROM public.users WHERE id = $1`
	return scanUser(a.pool.QueryRow(ctx, query, id))
}

func (a *Adapter) ListUsers(ctx context.Context) ([]*core.User, error) {
	query := `SELECT ` + userColumns + ` FROM public.users ORDER BY created_at, id`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*core.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (a *Adapter) UpdateUserRole(ctx context.Context, id string, role core.Role) (*core.User, error) {
	query := `UPDATE public.users SET role = $2, updated_at = $3 WHERE id = $1
	          RETURNING ` + userColumns

	return scanUser(a.pool.QueryRow(ctx, query, id, role, time.Now().UTC()))
}

func (a *Adapter) CreateMentorProfile(ctx context.Context, mentor *core.Mentor) error {
	query := `INSERT INTO public.mentor_profiles (user_id, expertise, rating, total_reviews, years_of_experience, available_days)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := a.pool.Exec(ctx, query,
		mentor.ID, mentor.Expertise, mentor.Rating, mentor.TotalReviews, mentor.YearsOfExperience, mentor.AvailableDays,
	)
	return err
}

const mentorColumns = `u.id, u.email, u.first_name, u.last_name, u.role, u.bio, u.profile_picture, u.created_at, u.updated_at,
	          p.expertise, p.rating, p.total_reviews, p.years_of_experience, p.available_days`

func scanMentor(row pgx.Row) (*core.Mentor, error) {
	m := &core.Mentor{}
	err := row.Scan(
		&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.Role, &m.Bio, &m.ProfilePicture, &m.CreatedAt, &m.UpdatedAt,
		&m.Expertise, &m.Rating, &m.TotalReviews, &m.YearsOfExperience, &m.AvailableDays,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrMentorNotFound
		}
		return nil, err
	}
	return m, nil
}

func (a *Adapter) ListMentors(ctx context.Context) ([]*core.Mentor, error) {
	query := `SELECT ` + mentorColumns + `
	          FROM public.mentor_profiles p JOIN public.users u ON u.id = p.user_id
	          ORDER BY u.created_at, u.id`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentors []*core.Mentor
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

func (a *Adapter) MentorByID(ctx context.Context, id string) (*core.Mentor, error) {
	query := `SELECT ` + mentorColumns + `
	          FROM public.mentor_profiles p JOIN public.users u ON u.id = p.user_id
	          WHERE p.user_id = $1`

	return scanMentor(a.pool.QueryRow(ctx, query, id))
}

func (a *Adapter) UpdateMentorAggregate(ctx context.Context, mentorID string, agg core.Aggregate) error {
	query := `UPDATE public.mentor_profiles SET rating = $2, total_reviews = $3 WHERE user_id = $1`

	tag, err := a.pool.Exec(ctx, query, mentorID, agg.Rating, agg.Count)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrMentorNotFound
	}
	return nil
}
