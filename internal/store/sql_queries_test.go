package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviereview/go-movie-review/models"
)

func TestBuildUpdateUserQuery(t *testing.T) {
	name := "John"
	theme := models.ThemeDark

	tests := []struct {
		name     string
		update   models.UserUpdate
		wantSQL  string
		wantArgs []any
		wantErr  bool
	}{
		{
			name:     "name only",
			update:   models.UserUpdate{Name: &name},
			wantSQL:  "UPDATE users SET name = $1 WHERE user_id = $2 RETURNING " + userColumns,
			wantArgs: []any{name, int64(1)},
		},
		{
			name:     "theme only",
			update:   models.UserUpdate{Theme: &theme},
			wantSQL:  "UPDATE users SET theme = $1 WHERE user_id = $2 RETURNING " + userColumns,
			wantArgs: []any{string(theme), int64(1)},
		},
		{
			name:     "both fields",
			update:   models.UserUpdate{Name: &name, Theme: &theme},
			wantSQL:  "UPDATE users SET name = $1, theme = $2 WHERE user_id = $3 RETURNING " + userColumns,
			wantArgs: []any{name, string(theme), int64(1)},
		},
		{
			name:    "empty update is rejected",
			update:  models.UserUpdate{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildUpdateUserQuery(1, tt.update)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
