package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-registry/internal/database"
	"project-registry/internal/model"
	"project-registry/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Email
	*dest[2].(*string) = u.FullName
	*dest[3].(*string) = u.PasswordHash
	*dest[4].(*bool) = u.IsActive
	*dest[5].(*time.Time) = u.CreatedAt
	*dest[6].(*time.Time) = u.UpdatedAt
	return nil
}

func newAuthCtx(e *echo.Echo, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	codec, err := service.NewTokenCodec("s", "HS256", time.Hour)
	require.NoError(t, err)
	resolver := service.NewResolver(codec)

	active := &model.User{ID: 1, Email: "alice@example.com", IsActive: true}
	db := func(u *model.User, scanErr error) *database.FakeDB {
		return &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{user: u, scanErr: scanErr}
			},
		}
	}

	next := func(c echo.Context) error {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		return c.String(http.StatusOK, user.Email)
	}

	t.Run("missing header", func(t *testing.T) {
		ctx, _ := newAuthCtx(e, "")
		err := RequireAuth(db(active, nil), resolver)(next)(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("bad scheme", func(t *testing.T) {
		ctx, _ := newAuthCtx(e, "Basic abc")
		err := RequireAuth(db(active, nil), resolver)(next)(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx, _ := newAuthCtx(e, "Bearer garbage")
		err := RequireAuth(db(active, nil), resolver)(next)(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("unknown subject", func(t *testing.T) {
		tok, err := codec.Issue("ghost@example.com", time.Minute)
		require.NoError(t, err)
		ctx, _ := newAuthCtx(e, "Bearer "+tok)
		mwErr := RequireAuth(db(nil, pgx.ErrNoRows), resolver)(next)(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, mwErr, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("inactive user is forbidden", func(t *testing.T) {
		inactive := &model.User{ID: 2, Email: "bob@example.com", IsActive: false}
		tok, err := codec.Issue("bob@example.com", time.Minute)
		require.NoError(t, err)
		ctx, _ := newAuthCtx(e, "Bearer "+tok)
		mwErr := RequireAuth(db(inactive, nil), resolver)(next)(ctx)
		he := &echo.HTTPError{}
		require.ErrorAs(t, mwErr, &he)
		require.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("success sets user in context", func(t *testing.T) {
		tok, err := codec.Issue("alice@example.com", time.Minute)
		require.NoError(t, err)
		ctx, rec := newAuthCtx(e, "Bearer "+tok)
		require.NoError(t, RequireAuth(db(active, nil), resolver)(next)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "alice@example.com", rec.Body.String())
	})

	t.Run("bearer scheme is case-insensitive", func(t *testing.T) {
		tok, err := codec.Issue("alice@example.com", time.Minute)
		require.NoError(t, err)
		ctx, rec := newAuthCtx(e, "bearer "+tok)
		require.NoError(t, RequireAuth(db(active, nil), resolver)(next)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCurrentUserMissing(t *testing.T) {
	e := echo.New()
	ctx, _ := newAuthCtx(e, "")
	_, ok := CurrentUser(ctx)
	require.False(t, ok)
}
