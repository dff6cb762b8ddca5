package integration_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-service/internal/app"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
	"github.com/metinatakli/movie-catalog-service/internal/repository"
	"github.com/metinatakli/movie-catalog-service/internal/token"
	"github.com/stretchr/testify/require"
)

const (
	TestUserName     = "alice"
	TestUserFullName = "Alice Liddell"
	TestUserEmail    = "alice@example.com"
	TestUserPassword = "Sup3rSecret!"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Tokens *token.Codec
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &TestApp{
		App:    app.New(cfg, logger, db),
		DB:     db,
		Tokens: token.NewCodec(cfg.JWT.Secret, cfg.JWT.TTL),
	}, nil
}

// bearerHeader issues a token with the same secret the app verifies with.
// The matching user row still has to exist when the request runs.
func (a *TestApp) bearerHeader(t testing.TB, username string) map[string]string {
	t.Helper()

	accessToken, _, err := a.Tokens.Issue(username)
	require.NoError(t, err)

	return map[string]string{"Authorization": "Bearer " + accessToken}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`TRUNCATE comments, ratings, movies, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, username, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Username: username,
		FullName: TestUserFullName,
		Email:    email,
	}
	require.NoError(t, user.Password.Set(TestUserPassword))

	repo := repository.NewPostgresUserRepository(db)
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, ownerID int64, title string) *domain.Movie {
	t.Helper()

	movie := &domain.Movie{
		Title:        title,
		CastMembers:  "Harrison Ford, Rutger Hauer",
		YearReleased: 1982,
		OwnerID:      ownerID,
	}

	repo := repository.NewPostgresMovieRepository(db)
	require.NoError(t, repo.Create(context.Background(), movie))

	return movie
}

func insertTestRating(t testing.TB, db *pgxpool.Pool, movieID, userID int64, value float64) {
	t.Helper()

	repo := repository.NewPostgresRatingRepository(db)
	require.NoError(t, repo.Create(context.Background(), &domain.Rating{
		MovieID: movieID,
		UserID:  userID,
		Rating:  value,
	}))
}

func insertTestComment(t testing.TB, db *pgxpool.Pool, movieID int64, text string) {
	t.Helper()

	repo := repository.NewPostgresCommentRepository(db)
	require.NoError(t, repo.Create(context.Background(), &domain.Comment{
		MovieID: movieID,
		Comment: text,
	}))
}
