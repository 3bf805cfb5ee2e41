package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"blogapi/src/core/domain"
)

// In-memory repository fakes. They honor the ports contract: lookups
// return (nil, nil) for absent rows, Save assigns the id.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]domain.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *user
	if saved.ID == 0 {
		f.seq++
		saved.ID = f.seq
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}
	f.users[saved.ID] = saved
	return &saved, nil
}

func (f *fakeUserRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	seq   int64
	posts map[int64]domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]domain.Post)}
}

func (f *fakePostRepo) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePostRepo) FindByTitle(_ context.Context, title string) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *domain.Post
	for id := range f.posts {
		p := f.posts[id]
		if !strings.EqualFold(p.Title, title) {
			continue
		}
		if best == nil || p.Date.After(best.Date) {
			best = &p
		}
	}
	return best, nil
}

func (f *fakePostRepo) FindAll(_ context.Context) ([]domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePostRepo) Save(_ context.Context, post *domain.Post) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *post
	if saved.ID == 0 {
		f.seq++
		saved.ID = f.seq
	}
	f.posts[saved.ID] = saved
	return &saved, nil
}

func (f *fakePostRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return false, nil
	}
	delete(f.posts, id)
	return true, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	seq      int64
	comments map[int64]domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]domain.Comment)}
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.comments[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCommentRepo) FindAll(_ context.Context) ([]domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Comment, 0, len(f.comments))
	for _, c := range f.comments {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCommentRepo) FindByPostID(_ context.Context, postID int64) ([]domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Comment
	for _, c := range f.comments {
		if c.Post != nil && c.Post.ID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Save(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *comment
	if saved.ID == 0 {
		f.seq++
		saved.ID = f.seq
	}
	f.comments[saved.ID] = saved
	return &saved, nil
}

func (f *fakeCommentRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[id]; !ok {
		return false, nil
	}
	delete(f.comments, id)
	return true, nil
}

type fakeAlbumRepo struct {
	mu     sync.Mutex
	seq    int64
	albums map[int64]domain.Album
}

func newFakeAlbumRepo() *fakeAlbumRepo {
	return &fakeAlbumRepo{albums: make(map[int64]domain.Album)}
}

func (f *fakeAlbumRepo) FindByID(_ context.Context, id int64) (*domain.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.albums[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAlbumRepo) FindAll(_ context.Context) ([]domain.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Album, 0, len(f.albums))
	for _, a := range f.albums {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAlbumRepo) Save(_ context.Context, album *domain.Album) (*domain.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *album
	if saved.ID == 0 {
		f.seq++
		saved.ID = f.seq
	}
	f.albums[saved.ID] = saved
	return &saved, nil
}

func (f *fakeAlbumRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.albums[id]; !ok {
		return false, nil
	}
	delete(f.albums, id)
	return true, nil
}
