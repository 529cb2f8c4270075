package stor

import (
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
)

// InMemoryMemberStor holds membership rows with their User and Team pointers
// populated, so the email/tid lookups work without a database.
type InMemoryMemberStor struct {
	members []model.Member
}

func NewInMemoryMemberStor(members []model.Member) *InMemoryMemberStor {
	return &InMemoryMemberStor{members: members}
}

func (s *InMemoryMemberStor) CreateMember(member *model.Member) (*model.Member, error) {
	for _, m := range s.members {
		if m.UserID == member.UserID && m.TeamID == member.TeamID {
			return nil, ErrDuplicate
		}
	}

	member.ID = len(s.members) + 1
	s.members = append(s.members, *member)
	return member, nil
}

func (s *InMemoryMemberStor) GetMemberByUserAndTeam(userID, teamID int) (*model.Member, error) {
	for _, m := range s.members {
		if m.UserID == userID && m.TeamID == teamID {
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryMemberStor) MemberWithEmailExists(tid, email string) bool {
	for _, m := range s.members {
		if m.User == nil || m.Team == nil {
			continue
		}
		if m.User.Email == email && m.Team.TID == tid {
			return true
		}
	}
	return false
}

func (s *InMemoryMemberStor) ListMembersForTeam(teamID int) ([]model.Member, error) {
	var members []model.Member
	for _, m := range s.members {
		if m.TeamID == teamID {
			members = append(members, m)
		}
	}
	return members, nil
}

func (s *InMemoryMemberStor) UpdateMember(member *model.Member, updates map[string]any) (*model.Member, error) {
	for i, m := range s.members {
		if m.ID == member.ID {
			if role, ok := updates["role"].(string); ok {
				s.members[i].Role = role
			}
			if name, ok := updates["display_name"].(string); ok {
				s.members[i].DisplayName = name
			}
			if online, ok := updates["online"].(bool); ok {
				s.members[i].Online = online
			}
			if status, ok := updates["status"].(string); ok {
				s.members[i].Status = status
			}
			return &s.members[i], nil
		}
	}
	return nil, ErrNotFound
}
