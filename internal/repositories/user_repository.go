package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursepulse/internal/infra"
	"coursepulse/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	ListStudents(ctx context.Context, search string, page, pageSize int) ([]db_models.User, int64, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*db_models.User, error)
	DeleteWithFeedback(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *userRepository) ListStudents(ctx context.Context, search string, page, pageSize int) ([]db_models.User, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("role = ?", db_models.RoleStudent)

	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) ESCAPE '\\' OR LOWER(email) LIKE LOWER(?) ESCAPE '\\'",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []db_models.User
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&students).Error
	return students, total, err
}

func (r *userRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Idempotent: writing the flag it already has is a no-op state-wise.
	if user.Blocked != blocked {
		if err := r.db.WithContext(ctx).
			Model(&user).
			Update("blocked", blocked).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// DeleteWithFeedback removes the user and all feedback they own inside one
// transaction, so no dangling feedback survives the operation.
func (r *userRepository) DeleteWithFeedback(ctx context.Context, id uuid.UUID) error {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}

	err := tx.Where("student_id = ?", id).Delete(&db_models.Feedback{}).Error
	if err == nil {
		err = tx.Where("id = ?", id).Delete(&db_models.User{}).Error
	}
	return infra.ReleaseTransaction(tx, err)
}
