package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// CreateUser inserts a new user. Usernames are unique; a duplicate
// surfaces the driver's constraint error unmodified.
func (s *SQLiteStore) CreateUser(ctx context.Context, in model.NewUser) (*model.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, fmt.Errorf("username must not be empty")
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, password, display_name, avatar_url)
		VALUES (?, ?, ?, ?)`,
		in.Username, in.Password, in.DisplayName, in.AvatarURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user %s: %w", in.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new user id: %w", err)
	}
	return s.GetUser(ctx, id)
}

// GetUser retrieves a user by ID. A missing id yields ErrNotFound.
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, username, password, display_name, avatar_url FROM users WHERE id = ?", id)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by unique username. A missing
// username yields ErrNotFound.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, username, password, display_name, avatar_url FROM users WHERE username = ?", username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", username, err)
	}
	return &user, nil
}

// scanUser scans a user row.
func scanUser(row rowScanner) (model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.DisplayName, &user.AvatarURL)
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}
