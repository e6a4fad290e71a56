package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/database"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sentMail struct {
	To, Subject, Body string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeSender) last() sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeStore) Put(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = data
	return objectName, nil
}

func (f *fakeStore) Remove(_ context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)
	return nil
}

func (f *fakeStore) URL(objectName string) string {
	return "http://cdn.test/" + objectName
}

type testEnv struct {
	db    *gorm.DB
	mr    *miniredis.Miniredis
	mail  *fakeSender
	store *fakeStore

	reactions ReactionService
	follows   FollowService
	ranking   RankingService
	policy    SoftDeletePolicy
	posts     PostService
	comments  CommentService
	users     *UserServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	mr := miniredis.RunT(t)
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = redis.Rdb.Close()
		redis.Rdb = nil
	})

	security.PasswordCost = bcrypt.MinCost
	security.Configure("test-secret", 1)

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	tagRepo := repository.NewTagRepository(db)

	env := &testEnv{
		db:    db,
		mr:    mr,
		mail:  &fakeSender{},
		store: &fakeStore{objects: map[string][]byte{}},
	}
	env.reactions = NewReactionService(repository.NewReactionRepo(db), postRepo, commentRepo, userRepo)
	env.follows = NewFollowService(repository.NewFollowRepo(db), userRepo)
	env.ranking = NewRankingService(postRepo, userRepo)
	env.policy = NewSoftDeletePolicy(repository.NewSoftDeleteRepo(db))
	env.posts = NewPostService(postRepo, tagRepo, userRepo, commentRepo, env.reactions, env.ranking, env.policy, env.store)
	env.comments = NewCommentService(commentRepo, postRepo, env.reactions, env.policy)
	env.users = NewUserService(userRepo, env.follows, env.reactions, env.policy, env.mail, "http://inkwell.test").(*UserServiceImpl)
	return env
}

func (e *testEnv) user(t *testing.T, username string) *model.User {
	t.Helper()
	out, err := e.users.Register(context.Background(), &dto.RegisterDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret-" + username,
	})
	require.NoError(t, err)

	user := &model.User{}
	require.NoError(t, e.db.First(user, out.ID).Error)
	return user
}

func (e *testEnv) post(t *testing.T, author *model.User, title string, tags ...string) *dto.PostDTO {
	t.Helper()
	out, err := e.posts.CreatePost(context.Background(), author.ID, &dto.CreatePostDTO{
		Title: title,
		Text:  fmt.Sprintf("text of %s", title),
		Tags:  tags,
	})
	require.NoError(t, err)
	return out
}
