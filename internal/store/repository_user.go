package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// userRepository is the relational implementation of [UserRepository]. The
// same code serves postgres and sqlite; dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.getUser(ctx, "user_id", id)
}

func (r *userRepository) GetUserByName(ctx context.Context, userName string) (models.User, error) {
	return r.getUser(ctx, "user_name", userName)
}

func (r *userRepository) getUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, column, value)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || r.db.classifier.Classify(err) == InvalidValue {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.getUser").Str("by", column).Msg("error selecting user")
		return models.User{}, r.classify("select user", err)
	}

	return user, nil
}

// InsertUser implements [UserRepository]. Uniqueness of the user name is
// guarded by the table's unique constraint; sqlite writes are additionally
// serialised through the DB write lock.
func (r *userRepository) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if !user.IsPasswordEncrypted {
		return models.User{}, ErrPasswordNotEncrypted
	}
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	user.UserID = r.ids.Generate()
	user.Password, user.PasswordConfirm = "", ""

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	unlock := r.db.lockWrites()
	defer unlock()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classifier.Classify(err) == UniqueViolation {
			return models.User{}, errUserAlreadyExists(user.UserName)
		}
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error inserting user")
		return models.User{}, r.classify("insert user", err)
	}

	return user, nil
}

func (r *userRepository) RemoveUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	query, args, err := buildDeleteUserQuery(r.db.builder, id)
	if err != nil {
		return err
	}

	unlock := r.db.lockWrites()
	defer unlock()

	result, err := r.db.ExecContext(ctx, query, args...)
	if r.db.classifier.Classify(err) == InvalidValue {
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveUser").Msg("error deleting user")
		return r.classify("delete user", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.classify("delete user", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) classify(op string, err error) error {
	if r.db.classifier.Classify(err) == Transient {
		r.logger.Warn().Err(err).Str("op", op).Msg("transient database error")
	}
	return storeFault(op, err)
}
