package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/moviereview/go-movie-review/models"
)

const userColumns = "user_id, email, password_hash, name, role, theme, created_at"

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2
    RETURNING ` + userColumns + `;`
)

// buildUpdateUserQuery builds a partial UPDATE for the users table.
// Only non-nil fields of update produce SET clauses; the statement returns
// the full updated row. Squirrel refuses to build an UPDATE without SET
// clauses, so callers must ensure update is not empty.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Theme != nil {
		builder = builder.Set("theme", string(*update.Theme))
	}

	return builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}
