package memory

import (
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.UserRepository = (*userStore)(nil)

type userStore struct {
	s *Store
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.VerifyOTP != nil {
		v := *u.VerifyOTP
		c.VerifyOTP = &v
	}
	return &c
}

func (r *userStore) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.users = append(r.s.users, cloneUser(user))
	return nil
}

func (r *userStore) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *userStore) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *userStore) GetByVerifyOTP(otp string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.VerifyOTP != nil && *u.VerifyOTP == otp {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *userStore) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, u := range r.s.users {
		if u.ID == user.ID {
			r.s.users[i] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *userStore) List() ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}
