package stor

import (
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
)

type InMemoryUserStor struct {
	users []model.User
}

func NewInMemoryUserStor(users []model.User) *InMemoryUserStor {
	return &InMemoryUserStor{users: users}
}

func (s *InMemoryUserStor) CreateUser(user *model.User) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, ErrDuplicate
		}
	}

	user.ID = len(s.users) + 1
	s.users = append(s.users, *user)
	return user, nil
}

func (s *InMemoryUserStor) GetUserByID(id int) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStor) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
