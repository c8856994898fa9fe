package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-auth/models"
)

const usersTable = "users"

// userColumns is the column order shared by every SELECT and INSERT.
var userColumns = []string{
	"user_id",
	"user_name",
	"password_hash",
	"password_salt",
	"role",
	"email",
	"name",
	"surname",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.UserName,
			user.PasswordHash,
			user.PasswordSalt,
			int(user.Role),
			user.Email,
			user.Name,
			user.Surname,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectUserQuery selects one user by an exact match on column.
func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(usersTable).
		Where(sq.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		role int
	)
	if err := row.Scan(
		&user.UserID,
		&user.UserName,
		&user.PasswordHash,
		&user.PasswordSalt,
		&role,
		&user.Email,
		&user.Name,
		&user.Surname,
	); err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	user.IsPasswordEncrypted = true
	return user, nil
}
