package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Experience, education and skills
// are stored as JSONB positional arrays.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `
id, owner_id, title, full_name, profession, email, phone, city, linkedin,
website, summary, experience, education, skills, layout_id, secondary_color,
created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (
    id, owner_id, title, full_name, profession, email, phone, city, linkedin,
    website, summary, experience, education, skills, layout_id, secondary_color,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	experience, education, skills, err := marshalArrays(res)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		res.ID,
		res.OwnerID,
		res.Title,
		nullableString(res.FullName),
		nullableString(res.Profession),
		nullableString(res.Email),
		nullableString(res.Phone),
		nullableString(res.City),
		nullableString(res.LinkedIn),
		nullableString(res.Website),
		nullableString(res.Summary),
		experience,
		education,
		skills,
		res.LayoutID,
		res.SecondaryColor,
		res.CreatedAt,
		res.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	res, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE owner_id = $1 ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	const query = `
UPDATE resumes SET
    title = $2,
    full_name = $3,
    profession = $4,
    email = $5,
    phone = $6,
    city = $7,
    linkedin = $8,
    website = $9,
    summary = $10,
    experience = $11,
    education = $12,
    skills = $13,
    layout_id = $14,
    secondary_color = $15,
    updated_at = $16
WHERE id = $1`

	experience, education, skills, err := marshalArrays(res)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query,
		res.ID,
		res.Title,
		nullableString(res.FullName),
		nullableString(res.Profession),
		nullableString(res.Email),
		nullableString(res.Phone),
		nullableString(res.City),
		nullableString(res.LinkedIn),
		nullableString(res.Website),
		nullableString(res.Summary),
		experience,
		education,
		skills,
		res.LayoutID,
		res.SecondaryColor,
		res.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		res        Resume
		fullName   sql.NullString
		profession sql.NullString
		email      sql.NullString
		phone      sql.NullString
		city       sql.NullString
		linkedin   sql.NullString
		website    sql.NullString
		summary    sql.NullString
		experience []byte
		education  []byte
		skills     []byte
	)
	err := row.Scan(
		&res.ID,
		&res.OwnerID,
		&res.Title,
		&fullName,
		&profession,
		&email,
		&phone,
		&city,
		&linkedin,
		&website,
		&summary,
		&experience,
		&education,
		&skills,
		&res.LayoutID,
		&res.SecondaryColor,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	res.FullName = fullName.String
	res.Profession = profession.String
	res.Email = email.String
	res.Phone = phone.String
	res.City = city.String
	res.LinkedIn = linkedin.String
	res.Website = website.String
	res.Summary = summary.String

	if err := unmarshalArray(experience, &res.Experience); err != nil {
		return Resume{}, fmt.Errorf("decode experience: %w", err)
	}
	if err := unmarshalArray(education, &res.Education); err != nil {
		return Resume{}, fmt.Errorf("decode education: %w", err)
	}
	if err := unmarshalArray(skills, &res.Skills); err != nil {
		return Resume{}, fmt.Errorf("decode skills: %w", err)
	}
	return res, nil
}

func marshalArrays(res Resume) (experience, education, skills []byte, err error) {
	if experience, err = json.Marshal(emptyIfNil(res.Experience)); err != nil {
		return nil, nil, nil, fmt.Errorf("encode experience: %w", err)
	}
	if education, err = json.Marshal(emptyIfNil(res.Education)); err != nil {
		return nil, nil, nil, fmt.Errorf("encode education: %w", err)
	}
	if skills, err = json.Marshal(emptyIfNil(res.Skills)); err != nil {
		return nil, nil, nil, fmt.Errorf("encode skills: %w", err)
	}
	return experience, education, skills, nil
}

func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func unmarshalArray[T any](raw []byte, dst *[]T) error {
	if len(raw) == 0 {
		*dst = []T{}
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
