package restaurant

import (
	"context"
	"mime/multipart"
	"testing"
)

type MockRepository struct {
	restaurants []*Restaurant
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	m.restaurants = append(m.restaurants, restaurant)
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	for _, r := range m.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockRepository) GetByAdmin(ctx context.Context, adminID string) (*Restaurant, error) {
	for _, r := range m.restaurants {
		if r.AdminID == adminID {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockRepository) List(ctx context.Context) ([]Restaurant, error) {
	out := []Restaurant{}
	for _, r := range m.restaurants {
		out = append(out, *r)
	}
	return out, nil
}

func (m *MockRepository) Update(ctx context.Context, restaurant *Restaurant) error {
	for i, r := range m.restaurants {
		if r.ID == restaurant.ID {
			m.restaurants[i] = restaurant
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	for i, r := range m.restaurants {
		if r.ID == id {
			m.restaurants = append(m.restaurants[:i], m.restaurants[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestCreateRestaurant(t *testing.T) {
	service := NewService(NewMockRepository(), nil, nil)

	r, err := service.Create(context.Background(), "Trattoria Uno", "Via Roma 1", "+39 055 123", "luxury", "a1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if r.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if r.Logo != nil {
		t.Error("a new restaurant has no logo")
	}
}

func TestCreateRestaurantValidation(t *testing.T) {
	service := NewService(NewMockRepository(), nil, nil)
	ctx := context.Background()

	if _, err := service.Create(ctx, "", "Via Roma 1", "+39", "", "a1"); err == nil {
		t.Error("expected missing name to fail")
	}
	if _, err := service.Create(ctx, "Uno", "", "+39", "", "a1"); err == nil {
		t.Error("expected missing address to fail")
	}
	if _, err := service.Create(ctx, "Uno", "Via Roma 1", "", "", "a1"); err == nil {
		t.Error("expected missing contact to fail")
	}
}

func TestUpdateKeepsUntouchedFields(t *testing.T) {
	service := NewService(NewMockRepository(), nil, nil)
	ctx := context.Background()

	r, err := service.Create(ctx, "Trattoria Uno", "Via Roma 1", "+39 055 123", "classic", "a1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := service.Update(ctx, r.ID, "", "", "", "vibrant")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Theme != "vibrant" {
		t.Errorf("theme not updated: %q", updated.Theme)
	}
	if updated.Name != "Trattoria Uno" || updated.Address != "Via Roma 1" {
		t.Error("untouched fields must keep their values")
	}
}

type stubStorage struct {
	lastKey string
}

func (s *stubStorage) Upload(ctx context.Context, key string, file multipart.File) (string, error) {
	s.lastKey = key
	return "https://cdn.example.com/" + key, nil
}

type recordingInvalidator struct {
	invalidated []string
}

func (r *recordingInvalidator) InvalidateMenu(ctx context.Context, restaurantID string) {
	r.invalidated = append(r.invalidated, restaurantID)
}

func TestUploadLogo(t *testing.T) {
	storage := &stubStorage{}
	cache := &recordingInvalidator{}
	service := NewService(NewMockRepository(), storage, cache)
	ctx := context.Background()

	r, err := service.Create(ctx, "Trattoria Uno", "Via Roma 1", "+39", "", "a1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := service.UploadLogo(ctx, r.ID, nil, "logo.png")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if updated.Logo == nil || updated.LogoKey == nil {
		t.Fatal("logo url and key must be set after upload")
	}
	if *updated.LogoKey != storage.lastKey {
		t.Errorf("stored key %q does not match uploaded key %q", *updated.LogoKey, storage.lastKey)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != r.ID {
		t.Errorf("expected one cache invalidation for %s, got %v", r.ID, cache.invalidated)
	}
}

func TestDeleteInvalidatesMenuCache(t *testing.T) {
	cache := &recordingInvalidator{}
	service := NewService(NewMockRepository(), nil, cache)
	ctx := context.Background()

	r, err := service.Create(ctx, "Trattoria Uno", "Via Roma 1", "+39", "", "a1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := service.Delete(ctx, r.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected 1 invalidation, got %d", len(cache.invalidated))
	}
}

func TestGetMine(t *testing.T) {
	service := NewService(NewMockRepository(), nil, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, "Trattoria Uno", "Via Roma 1", "+39", "", "a1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := service.GetMine(ctx, "a1")
	if err != nil {
		t.Fatalf("get mine failed: %v", err)
	}
	if mine.ID != created.ID {
		t.Error("expected the admin's own restaurant")
	}

	if _, err := service.GetMine(ctx, "nobody"); err == nil {
		t.Error("expected not found for unknown admin")
	}
}
