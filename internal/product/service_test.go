package product

import (
	"context"
	"testing"
)

type MockRepository struct {
	products []*Product
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Create(ctx context.Context, product *Product) error {
	m.products = append(m.products, product)
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockRepository) List(ctx context.Context) ([]Product, error) {
	out := []Product{}
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockRepository) Update(ctx context.Context, product *Product) error {
	for i, p := range m.products {
		if p.ID == product.ID {
			m.products[i] = product
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	service := NewService(NewMockRepository(), nil, nil)

	_, err := service.Create(context.Background(), "Ramen", "hot broth", -1, "c1", "r1", true, nil, "")
	if err == nil {
		t.Error("expected negative price to fail")
	}
}

func TestCreateRequiresCategoryAndRestaurant(t *testing.T) {
	service := NewService(NewMockRepository(), nil, nil)
	ctx := context.Background()

	if _, err := service.Create(ctx, "Ramen", "", 9.5, "", "r1", true, nil, ""); err == nil {
		t.Error("expected missing category to fail")
	}
	if _, err := service.Create(ctx, "Ramen", "", 9.5, "c1", "", true, nil, ""); err == nil {
		t.Error("expected missing restaurant to fail")
	}
}

func TestUpdateTogglesAvailability(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, nil, nil)
	ctx := context.Background()

	p, err := service.Create(ctx, "Ramen", "hot broth", 9.5, "c1", "r1", true, nil, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	unavailable := false
	updated, err := service.Update(ctx, p.ID, "", "", nil, "", &unavailable, nil, "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Available {
		t.Error("product should be unavailable after the toggle")
	}
	if updated.Name != "Ramen" || updated.Price != 9.5 {
		t.Error("untouched fields must keep their values")
	}
}

func TestUpdateRejectsNegativePrice(t *testing.T) {
	service := NewService(NewMockRepository(), nil, nil)
	ctx := context.Background()

	p, err := service.Create(ctx, "Ramen", "", 9.5, "c1", "r1", true, nil, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bad := -0.5
	if _, err := service.Update(ctx, p.ID, "", "", &bad, "", nil, nil, ""); err == nil {
		t.Error("expected negative price to fail")
	}
}
