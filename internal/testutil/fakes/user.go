package fakes

import (
	"context"
	"fmt"
	"sync"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
)

type UserRepository struct {
	mu    sync.Mutex
	Users map[string]user.User
	seq   int
}

func NewUserRepository(users ...user.User) *UserRepository {
	r := &UserRepository{Users: map[string]user.User{}}
	for _, u := range users {
		r.Users[u.ID] = u
	}
	return r
}

func (r *UserRepository) Snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make(map[string]user.User, len(r.Users))
	for k, v := range r.Users {
		users[k] = v
	}
	seq := r.seq
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.Users, r.seq = users, seq
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.Users {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	r.Users[u.ID] = u
	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, firstName, lastName string, email *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.FirstName, u.LastName, u.Email = firstName, lastName, email
	r.Users[id] = u
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.Users[id] = u
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.Users, id)
	return nil
}
