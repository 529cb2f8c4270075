package stor

import (
	"github.com/hashicorp/go-uuid"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"gorm.io/gorm"
)

type GormProfileStor struct {
	db *gorm.DB
}

func NewGormProfileStor(db *gorm.DB) *GormProfileStor {
	return &GormProfileStor{db: db}
}

func (s *GormProfileStor) CreateProfile(profile *model.Profile) (*model.Profile, error) {
	var err error

	if profile.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(profile).Error
	})

	if err != nil {
		return nil, translateGormError(err)
	}

	return profile, nil
}

func (s *GormProfileStor) GetProfileByUserID(userID int) (*model.Profile, error) {
	var profile model.Profile
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &profile, nil
}

func (s *GormProfileStor) UpdateProfile(profile *model.Profile, updates map[string]any) (*model.Profile, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(profile).Updates(updates).Error
	})

	if err != nil {
		return nil, translateGormError(err)
	}

	return profile, nil
}
