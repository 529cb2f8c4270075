package stor

import (
	"github.com/hashicorp/go-uuid"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"gorm.io/gorm"
)

type GormUserStor struct {
	db *gorm.DB
}

func NewGormUserStor(db *gorm.DB) *GormUserStor {
	return &GormUserStor{db: db}
}

// CreateUser creates a new user.
func (s *GormUserStor) CreateUser(user *model.User) (*model.User, error) {
	var err error

	if user.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})

	if err != nil {
		return nil, translateGormError(err)
	}

	return user, nil
}

func (s *GormUserStor) GetUserByID(id int) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &user, nil
}

func (s *GormUserStor) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &user, nil
}
