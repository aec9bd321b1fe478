package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/models"
)

var userColumns = []string{"id", "username", "password"}

const returningUser = "RETURNING id, username, password"

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Queries are rendered by squirrel with the placeholder format
// of the connected dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContextOr] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("username", "password").
		Values(user.Username, user.PasswordHash).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}

		r.logError(log, err, "*userRepository.CreateUser")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user with the given username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"username": username}, "*userRepository.FindUserByUsername")
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"id": userID}, "*userRepository.FindUserByID")
}

func (r *userRepository) findOne(ctx context.Context, where sq.Eq, funcName string) (models.User, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		r.logError(log, err, funcName)
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// SaveUser overwrites username and password of the record identified by
// user.UserID and returns the stored row.
//
// Error handling:
//   - no such record → [ErrNoUserWasFound].
//   - unique violation on username → [ErrUsernameAlreadyExists].
func (r *userRepository) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.builder.
		Update(user.TableName()).
		Set("username", user.Username).
		Set("password", user.PasswordHash).
		Where(sq.Eq{"id": user.UserID}).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return saved, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case r.db.errorClassificator.IsUniqueViolation(err):
		return models.User{}, ErrUsernameAlreadyExists
	default:
		r.logError(log, err, "*userRepository.SaveUser")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// DeleteUserByID removes the record with the given id.
func (r *userRepository) DeleteUserByID(ctx context.Context, userID int64) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logError(log, err, "*userRepository.DeleteUserByID")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logError(log, err, "*userRepository.DeleteUserByID")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ListUsers returns all users ordered by id. An empty table yields an empty,
// non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logError(log, err, "*userRepository.ListUsers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.PasswordHash); err != nil {
			r.logError(log, err, "*userRepository.ListUsers")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		r.logError(log, err, "*userRepository.ListUsers")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash)
	return user, err
}

func (r *userRepository) logError(log *logger.Logger, err error, funcName string) {
	log.Err(err).
		Str("func", funcName).
		Stringer("classification", r.db.errorClassificator.Classify(err)).
		Msg("database error")
}
