package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) (user.UserRepository, error) {
	if err := db.AutoMigrate(&userRecord{}); err != nil {
		return nil, err
	}
	return &GormUserRepository{db: db}, nil
}

func (r *GormUserRepository) first(ctx context.Context, query string, arg string) (user.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where(query, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.User{}, err
	}
	return rec.toEntity(), nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormUserRepository) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	return r.first(ctx, "google_id = ?", googleID)
}

func (r *GormUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	rec := userRecord{
		ID:           u.ID,
		GoogleID:     u.GoogleID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		ProfilePhoto: u.ProfilePhoto,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return user.User{}, err
	}
	return rec.toEntity(), nil
}

func (r *GormUserRepository) UpdateProfile(ctx context.Context, id string, name string, email string) (user.User, error) {
	res := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "email": email, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return user.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *GormUserRepository) UpdateProfilePhoto(ctx context.Context, id string, photoURL string) error {
	res := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).
		Updates(map[string]interface{}{"profile_photo": photoURL, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
