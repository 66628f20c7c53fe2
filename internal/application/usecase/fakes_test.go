package usecase_test

import (
	"sort"
	"strings"

	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
)

// Repositorios en memoria con el mismo contrato que los puertos:
// (nil, nil) cuando no hay fila, ErrDuplicate en violación de unicidad.

type fakeCategoryRepo struct {
	cats   []*entity.Category
	nextID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo { return &fakeCategoryRepo{nextID: 1} }

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, e := range r.cats {
		if e.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.cats = append(r.cats, &cp)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	for _, c := range r.cats {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.cats {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	for i, e := range r.cats {
		if e.ID == c.ID {
			cp := *c
			r.cats[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) List(filter string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.cats {
		if filter == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter)) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListActive() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.cats {
		if c.IsActive {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeAnimalRepo struct {
	animals []*entity.Animal
	nextID  int64
}

func newFakeAnimalRepo() *fakeAnimalRepo { return &fakeAnimalRepo{nextID: 1} }

func (r *fakeAnimalRepo) Create(a *entity.Animal) error {
	for _, e := range r.animals {
		if e.TagCurrent == a.TagCurrent {
			return domain.ErrDuplicate
		}
	}
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.animals = append(r.animals, &cp)
	return nil
}

func (r *fakeAnimalRepo) GetByID(id int64) (*entity.Animal, error) {
	for _, a := range r.animals {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAnimalRepo) GetByTag(tag string) (*entity.Animal, error) {
	for _, a := range r.animals {
		if a.TagCurrent == tag {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAnimalRepo) Update(a *entity.Animal) error {
	for i, e := range r.animals {
		if e.ID == a.ID {
			cp := *a
			r.animals[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeAnimalRepo) List(filter string) ([]*entity.Animal, error) {
	var out []*entity.Animal
	f := strings.ToLower(filter)
	for _, a := range r.animals {
		if filter == "" ||
			strings.Contains(strings.ToLower(a.TagCurrent), f) ||
			strings.Contains(strings.ToLower(a.TagPrevious), f) ||
			strings.Contains(strings.ToLower(a.Category), f) ||
			strings.Contains(strings.ToLower(a.Lot), f) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeAnimalRepo) Delete(id int64) error {
	for i, a := range r.animals {
		if a.ID == id {
			r.animals = append(r.animals[:i], r.animals[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUserRepo struct {
	users  []*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{nextID: 1} }

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAdmin() (*entity.User, error) {
	for _, u := range r.users {
		if u.IsAdmin {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, e := range r.users {
		if e.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) List(filter string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if filter == "" || strings.Contains(strings.ToLower(u.Email), strings.ToLower(filter)) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}
