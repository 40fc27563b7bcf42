package auth

import "context"

type AdminRepository interface {
	Save(ctx context.Context, admin *Admin) error
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]Admin, error)
	Delete(ctx context.Context, id string) error
}
