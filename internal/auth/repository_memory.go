package auth

import (
	"context"
	"errors"
	"time"
)

// MemoryRepository keeps admins in a map; used in tests and local runs
// without a database.
type MemoryRepository struct {
	admins map[string]*Admin // keyed by username
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{admins: make(map[string]*Admin)}
}

func (m *MemoryRepository) Save(ctx context.Context, admin *Admin) error {
	admin.CreatedAt = time.Now()
	m.admins[admin.Username] = admin
	return nil
}

func (m *MemoryRepository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	admin, ok := m.admins[username]
	if !ok {
		return nil, errors.New("admin not found")
	}
	return admin, nil
}

func (m *MemoryRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.admins[username]
	return ok, nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]Admin, error) {
	admins := []Admin{}
	for _, a := range m.admins {
		admins = append(admins, *a)
	}
	return admins, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	for username, a := range m.admins {
		if a.ID == id {
			delete(m.admins, username)
			return nil
		}
	}
	return errors.New("admin not found")
}
