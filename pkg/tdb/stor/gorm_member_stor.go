package stor

import (
	"github.com/hashicorp/go-uuid"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"gorm.io/gorm"
)

type GormMemberStor struct {
	db *gorm.DB
}

func NewGormMemberStor(db *gorm.DB) *GormMemberStor {
	return &GormMemberStor{db: db}
}

// CreateMember creates a membership row. The unique index on
// (user_id, team_id) is the authority on duplicates: a violation at insert
// time comes back as ErrDuplicate, so callers never need a racy pre-check.
func (s *GormMemberStor) CreateMember(member *model.Member) (*model.Member, error) {
	var err error

	if member.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if err = s.db.Create(member).Error; err != nil {
		return nil, translateGormError(err)
	}

	return member, nil
}

func (s *GormMemberStor) GetMemberByUserAndTeam(userID, teamID int) (*model.Member, error) {
	var member model.Member
	err := s.db.
		Where("user_id = ?", userID).
		Where("team_id = ?", teamID).
		First(&member).Error
	if err != nil {
		return nil, translateGormError(err)
	}

	return &member, nil
}

func (s *GormMemberStor) MemberWithEmailExists(tid, email string) bool {
	var count int64
	s.db.Model(&model.Member{}).
		Joins("join users on users.id = members.user_id").
		Joins("join teams on teams.id = members.team_id").
		Where("users.email = ?", email).
		Where("teams.tid = ?", tid).
		Count(&count)
	return count != 0
}

func (s *GormMemberStor) ListMembersForTeam(teamID int) ([]model.Member, error) {
	var members []model.Member
	err := s.db.Preload("User").Where("team_id = ?", teamID).Find(&members).Error
	return members, translateGormError(err)
}

// UpdateMember applies the given column updates to member. Updates are
// map-based so callers can set fields to their zero values.
func (s *GormMemberStor) UpdateMember(member *model.Member, updates map[string]any) (*model.Member, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(member).Updates(updates).Error
	})

	if err != nil {
		return nil, translateGormError(err)
	}

	return member, nil
}
