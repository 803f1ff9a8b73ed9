package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

var ErrEmailTaken = errors.New("email already registered")

// UserRepository keeps prepared statements on the database/sql view of the
// pool; call Close when the repository is discarded.
type UserRepository struct {
	stmtCreate     *sql.Stmt
	stmtGetByID    *sql.Stmt
	stmtGetByEmail *sql.Stmt
	stmtExists     *sql.Stmt
}

func NewUserRepository(ctx context.Context, db *sql.DB) (*UserRepository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	r := &UserRepository{}

	prepare := func(dst **sql.Stmt, query string) error {
		s, err := db.PrepareContext(ctx, query)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}

	stmts := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.stmtCreate, `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`},
		{&r.stmtGetByID, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`},
		{&r.stmtGetByEmail, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`},
		{&r.stmtExists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`},
	}
	for _, s := range stmts {
		if err := prepare(s.dst, s.query); err != nil {
			_ = r.Close()
			return nil, err
		}
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExists)

	return firstErr
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.stmtCreate.ExecContext(ctx, u.ID, strings.ToLower(u.Email), u.PasswordHash)
	if dbpostgres.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.stmtGetByID.QueryRowContext(ctx, id)
	return scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.stmtGetByEmail.QueryRowContext(ctx, strings.ToLower(email))
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExists.QueryRowContext(ctx, strings.ToLower(email)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
