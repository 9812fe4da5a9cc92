package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

var userColumns = []string{"id", "username", "password", "role"}

// UserRepository persists users in the users sheet.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func decodeUser(rec Record) (domain.User, error) {
	id, err := parseIntCell(rec["id"])
	if err != nil {
		return domain.User{}, fmt.Errorf("users: bad id: %w", err)
	}
	return domain.User{
		ID:       id,
		Username: strings.TrimSpace(rec["username"]),
		Password: strings.TrimSpace(rec["password"]),
		Role:     domain.Role(strings.ToLower(strings.TrimSpace(rec["role"]))),
	}, nil
}

func encodeUser(u domain.User) Record {
	return Record{
		"id":       formatInt(u.ID),
		"username": u.Username,
		"password": u.Password,
		"role":     string(u.Role),
	}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	t, err := r.store.Load(ctx, TableUsers)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(t.Records))
	for _, rec := range t.Records {
		u, err := decodeUser(rec)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	for _, u := range users {
		if u.Username == username && u.Role == role {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByCredentials requires all three fields to match exactly after
// trimming. Password comparison is plain equality against the stored cell.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	for _, u := range users {
		if u.Username == username && u.Password == password && u.Role == role {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	unlock := r.store.LockTable(TableUsers)
	defer unlock()

	t, err := r.store.LoadWithSchema(ctx, TableUsers, userColumns)
	if err != nil {
		return nil, err
	}
	ensureColumns(t, userColumns)

	created := *user
	created.ID = nextID(t)
	t.Append(encodeUser(created))

	if err := r.store.Save(ctx, TableUsers, t); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	unlock := r.store.LockTable(TableUsers)
	defer unlock()

	t, err := r.store.Load(ctx, TableUsers)
	if err != nil {
		return err
	}

	kept := t.Records[:0]
	for _, rec := range t.Records {
		if recID, err := parseIntCell(rec["id"]); err == nil && recID == id {
			continue
		}
		kept = append(kept, rec)
	}
	t.Records = kept

	return r.store.Save(ctx, TableUsers, t)
}
