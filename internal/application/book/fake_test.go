package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// fakeRepo 内存版图书仓储
type fakeRepo struct {
	rows     map[int]*book.Book
	nextID   int
	affected int // >=0时强制下一次提交的影响行数
	failWith error
	calls    []string
}

func newFakeRepo(rows ...*book.Book) *fakeRepo {
	r := &fakeRepo{rows: map[int]*book.Book{}, nextID: 1, affected: -1}
	for _, b := range rows {
		cp := *b
		r.rows[b.ID] = &cp
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
	return r
}

func (r *fakeRepo) factory() book.RepositoryFactory {
	return func() book.Repository { return r }
}

func (r *fakeRepo) commit(n int) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if r.affected >= 0 {
		n = r.affected
	}
	return n > 0, nil
}

func (r *fakeRepo) FindAll(context.Context) ([]*book.Book, error) {
	r.calls = append(r.calls, "FindAll")
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*book.Book, 0, len(r.rows))
	for id := 1; id < r.nextID; id++ {
		if b, ok := r.rows[id]; ok {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int) (*book.Book, error) {
	r.calls = append(r.calls, "FindByID")
	if r.failWith != nil {
		return nil, r.failWith
	}
	b, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) IsExist(_ context.Context, id int) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *fakeRepo) GetImageFileName(_ context.Context, id int) (string, error) {
	r.calls = append(r.calls, "GetImageFileName")
	if b, ok := r.rows[id]; ok {
		return b.Image, nil
	}
	return "", nil
}

func (r *fakeRepo) Create(_ context.Context, b *book.Book) (bool, error) {
	r.calls = append(r.calls, "Create")
	ok, err := r.commit(1)
	if ok {
		b.ID = r.nextID
		r.nextID++
		cp := *b
		r.rows[b.ID] = &cp
	}
	return ok, err
}

func (r *fakeRepo) Update(_ context.Context, b *book.Book) (bool, error) {
	r.calls = append(r.calls, "Update")
	n := 0
	if _, ok := r.rows[b.ID]; ok {
		n = 1
	}
	ok, err := r.commit(n)
	if ok {
		cp := *b
		r.rows[b.ID] = &cp
	}
	return ok, err
}

func (r *fakeRepo) Delete(_ context.Context, b *book.Book) (bool, error) {
	r.calls = append(r.calls, "Delete")
	ok, err := r.commit(1)
	if ok {
		delete(r.rows, b.ID)
	}
	return ok, err
}

func (r *fakeRepo) Save(context.Context) (bool, error) {
	return r.commit(0)
}
