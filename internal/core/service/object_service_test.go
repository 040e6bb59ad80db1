package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

type stubObjectRepo struct {
	lastList ports.ListObjectsInput
	objects  map[int64]*domain.Object
	nextID   int64
}

func newStubObjectRepo() *stubObjectRepo {
	return &stubObjectRepo{objects: make(map[int64]*domain.Object), nextID: 1}
}

func (r *stubObjectRepo) Create(_ context.Context, in ports.CreateObjectInput) (*domain.Object, error) {
	now := time.Now().UTC()
	obj := &domain.Object{
		ID:        r.nextID,
		Name:      in.Name,
		Email:     in.Email,
		Age:       in.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.objects[obj.ID] = obj
	r.nextID++
	clone := *obj
	return &clone, nil
}

func (r *stubObjectRepo) FindByID(_ context.Context, id int64) (*domain.Object, error) {
	obj, ok := r.objects[id]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	clone := *obj
	return &clone, nil
}

func (r *stubObjectRepo) FindAll(_ context.Context, in ports.ListObjectsInput) ([]domain.Object, int64, error) {
	r.lastList = in
	return nil, 0, nil
}

func (r *stubObjectRepo) Replace(_ context.Context, id int64, in ports.CreateObjectInput) (*domain.Object, error) {
	obj, ok := r.objects[id]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	obj.Name, obj.Email, obj.Age = in.Name, in.Email, in.Age
	obj.UpdatedAt = obj.UpdatedAt.Add(time.Millisecond)
	clone := *obj
	return &clone, nil
}

func (r *stubObjectRepo) Patch(_ context.Context, id int64, in ports.UpdateObjectInput) (*domain.Object, error) {
	obj, ok := r.objects[id]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	if in.Name != nil {
		obj.Name = *in.Name
	}
	if in.Email != nil {
		obj.Email = *in.Email
	}
	if in.Age != nil {
		obj.Age = in.Age
	}
	obj.UpdatedAt = obj.UpdatedAt.Add(time.Millisecond)
	clone := *obj
	return &clone, nil
}

func (r *stubObjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.objects[id]; !ok {
		return domain.ErrObjectNotFound
	}
	delete(r.objects, id)
	return nil
}

func TestObjectService_CreateThenGet(t *testing.T) {
	repo := newStubObjectRepo()
	svc := NewObjectService(repo, zerolog.Nop())

	age := 30
	created, err := svc.Create(context.Background(), ports.CreateObjectInput{Name: "widget", Email: "w@example.com", Age: &age})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "widget" || got.Email != "w@example.com" || got.Age == nil || *got.Age != 30 {
		t.Fatalf("unexpected object: %+v", got)
	}
	if got.CreatedAt.IsZero() || !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatalf("timestamps not stamped on create: %+v", got)
	}
}

func TestObjectService_DeleteThenGet(t *testing.T) {
	repo := newStubObjectRepo()
	svc := NewObjectService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateObjectInput{Name: "x", Email: "x@example.com"})
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestObjectService_PatchTouchesOnlyProvidedFields(t *testing.T) {
	repo := newStubObjectRepo()
	svc := NewObjectService(repo, zerolog.Nop())

	age := 25
	created, _ := svc.Create(context.Background(), ports.CreateObjectInput{Name: "before", Email: "keep@example.com", Age: &age})

	name := "after"
	patched, err := svc.Patch(context.Background(), created.ID, ports.UpdateObjectInput{Name: &name})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Name != "after" {
		t.Fatalf("name not patched: %+v", patched)
	}
	if patched.Email != "keep@example.com" || patched.Age == nil || *patched.Age != 25 {
		t.Fatalf("untouched fields changed: %+v", patched)
	}
	if !patched.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at did not advance")
	}
	if !patched.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at must be immutable")
	}
}

func TestObjectService_ListClampsPaging(t *testing.T) {
	repo := newStubObjectRepo()
	svc := NewObjectService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListObjectsInput{Limit: 0, Offset: -3}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastList.Limit != defaultListLimit || repo.lastList.Offset != 0 {
		t.Fatalf("defaults not applied: %+v", repo.lastList)
	}

	if _, err := svc.List(context.Background(), ports.ListObjectsInput{Limit: 9999}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastList.Limit != maxListLimit {
		t.Fatalf("limit not capped: %+v", repo.lastList)
	}
}

func TestObjectService_Profile(t *testing.T) {
	repo := newStubObjectRepo()
	svc := NewObjectService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateObjectInput{Name: "p", Email: "p@example.com"})
	profile, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.ProfileURL != "/objects/1/profile" {
		t.Fatalf("unexpected profile url: %s", profile.ProfileURL)
	}
}
