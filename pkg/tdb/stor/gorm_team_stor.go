package stor

import (
	"github.com/hashicorp/go-uuid"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"gorm.io/gorm"
)

type GormTeamStor struct {
	db *gorm.DB
}

func NewGormTeamStor(db *gorm.DB) *GormTeamStor {
	return &GormTeamStor{db: db}
}

// CreateTeam creates a new team, generating its public tid. A tid supplied by
// the caller is ignored.
func (s *GormTeamStor) CreateTeam(team *model.Team) (*model.Team, error) {
	var err error

	if team.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	team.TID = model.GenerateTeamID()

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(team).Error
	})

	if err != nil {
		return nil, translateGormError(err)
	}

	return team, nil
}

func (s *GormTeamStor) GetTeamByTID(tid string) (*model.Team, error) {
	var team model.Team
	if err := s.db.Where("tid = ?", tid).First(&team).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &team, nil
}

func (s *GormTeamStor) GetTeamByName(name string) (*model.Team, error) {
	var team model.Team
	if err := s.db.Where("name = ?", name).First(&team).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &team, nil
}

func (s *GormTeamStor) TeamWithTIDExists(tid string) bool {
	var count int64
	s.db.Model(&model.Team{}).Where("tid = ?", tid).Count(&count)
	return count != 0
}

func (s *GormTeamStor) ListTeamsForUser(userID int) ([]model.Team, error) {
	var teams []model.Team
	err := s.db.
		Joins("join members on members.team_id = teams.id").
		Where("members.user_id = ?", userID).
		Find(&teams).Error
	return teams, translateGormError(err)
}

// DeleteTeam removes the team and all of its membership rows.
func (s *GormTeamStor) DeleteTeam(team *model.Team) error {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&model.Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(team).Error
	})

	return translateGormError(err)
}
