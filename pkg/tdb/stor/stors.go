package stor

import (
	"errors"

	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"gorm.io/gorm"
)

// Storage errors. Gorm-backed stors translate driver errors into these so
// callers never have to know which database is behind the interface.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type UserStor interface {
	CreateUser(user *model.User) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
}

type TeamStor interface {
	CreateTeam(team *model.Team) (*model.Team, error)
	GetTeamByTID(tid string) (*model.Team, error)
	GetTeamByName(name string) (*model.Team, error)
	TeamWithTIDExists(tid string) bool
	ListTeamsForUser(userID int) ([]model.Team, error)
	DeleteTeam(team *model.Team) error
}

type MemberStor interface {
	CreateMember(member *model.Member) (*model.Member, error)
	GetMemberByUserAndTeam(userID, teamID int) (*model.Member, error)
	MemberWithEmailExists(tid, email string) bool
	ListMembersForTeam(teamID int) ([]model.Member, error)
	UpdateMember(member *model.Member, updates map[string]any) (*model.Member, error)
}

type ProfileStor interface {
	CreateProfile(profile *model.Profile) (*model.Profile, error)
	GetProfileByUserID(userID int) (*model.Profile, error)
	UpdateProfile(profile *model.Profile, updates map[string]any) (*model.Profile, error)
}

type Stors struct {
	UserStor    UserStor
	TeamStor    TeamStor
	MemberStor  MemberStor
	ProfileStor ProfileStor
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		UserStor:    NewGormUserStor(db),
		TeamStor:    NewGormTeamStor(db),
		MemberStor:  NewGormMemberStor(db),
		ProfileStor: NewGormProfileStor(db),
	}
}

// translateGormError maps gorm errors onto the stor sentinels, leaving
// anything unrecognized untouched.
func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
