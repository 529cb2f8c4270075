package stor

import (
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
)

type InMemoryTeamStor struct {
	teams []model.Team
}

func NewInMemoryTeamStor(teams []model.Team) *InMemoryTeamStor {
	return &InMemoryTeamStor{teams: teams}
}

func (s *InMemoryTeamStor) CreateTeam(team *model.Team) (*model.Team, error) {
	for _, t := range s.teams {
		if t.Name == team.Name {
			return nil, ErrDuplicate
		}
	}

	team.ID = len(s.teams) + 1
	team.TID = model.GenerateTeamID()
	s.teams = append(s.teams, *team)
	return team, nil
}

func (s *InMemoryTeamStor) GetTeamByTID(tid string) (*model.Team, error) {
	for _, t := range s.teams {
		if t.TID == tid {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryTeamStor) GetTeamByName(name string) (*model.Team, error) {
	for _, t := range s.teams {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryTeamStor) TeamWithTIDExists(tid string) bool {
	_, err := s.GetTeamByTID(tid)
	return err == nil
}

func (s *InMemoryTeamStor) ListTeamsForUser(userID int) ([]model.Team, error) {
	// Memberships live in the member stor; the in-memory team stor has no
	// view of them.
	return nil, nil
}

func (s *InMemoryTeamStor) DeleteTeam(team *model.Team) error {
	for i, t := range s.teams {
		if t.ID == team.ID {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
