package services

import (
	"testing"
	"time"

	"spendwise/internal/auth"
	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func newTestSessionService(t *testing.T) (*sessionService, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := &sessionService{db: db, signer: auth.NewSigner("test-secret", time.Hour), now: time.Now}
	return svc, func() { testutil.TeardownTestDB(t, db) }
}

func TestSessionLifecycle(t *testing.T) {
	svc, done := newTestSessionService(t)
	defer done()
	user := testutil.CreateTestUser(t, svc.db)

	token, expiresAt, err := svc.Start(user.ID)
	testutil.AssertNoError(t, err)
	if token == "" {
		t.Fatal("expected a token")
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expected expiry in the future, got %v", expiresAt)
	}

	resolved, err := svc.Resolve(token)
	testutil.AssertNoError(t, err)
	if resolved.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, resolved.ID)
	}

	testutil.AssertNoError(t, svc.End(token))

	_, err = svc.Resolve(token)
	testutil.AssertAppError(t, err, "UNAUTHORIZED")
}

func TestResolve(t *testing.T) {
	t.Run("empty_token", func(t *testing.T) {
		svc, done := newTestSessionService(t)
		defer done()

		_, err := svc.Resolve("")
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("forged_token", func(t *testing.T) {
		svc, done := newTestSessionService(t)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)

		forged, _, err := auth.NewSigner("other-secret", time.Hour).Sign(user.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.Resolve(forged)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("signed_but_never_started", func(t *testing.T) {
		svc, done := newTestSessionService(t)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)

		token, _, err := svc.signer.Sign(user.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.Resolve(token)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("expired_row", func(t *testing.T) {
		svc, done := newTestSessionService(t)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)

		token, _, err := svc.Start(user.ID)
		testutil.AssertNoError(t, err)

		svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = svc.Resolve(token)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("deleted_user", func(t *testing.T) {
		svc, done := newTestSessionService(t)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)

		token, _, err := svc.Start(user.ID)
		testutil.AssertNoError(t, err)

		users := &userService{db: svc.db}
		testutil.AssertNoError(t, users.DeleteAccount(user.ID))

		_, err = svc.Resolve(token)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})
}

func TestEnd_IgnoresUnknownTokens(t *testing.T) {
	svc, done := newTestSessionService(t)
	defer done()

	testutil.AssertNoError(t, svc.End(""))
	testutil.AssertNoError(t, svc.End("garbage"))
}

func TestPurgeExpired(t *testing.T) {
	svc, done := newTestSessionService(t)
	defer done()
	user := testutil.CreateTestUser(t, svc.db)

	live, _, err := svc.Start(user.ID)
	testutil.AssertNoError(t, err)

	stale := &models.Session{UserID: user.ID, TokenHash: "stale", ExpiresAt: time.Now().Add(-time.Hour).UTC()}
	if err := svc.db.Create(stale).Error; err != nil {
		t.Fatalf("create stale session: %v", err)
	}

	n, err := svc.PurgeExpired()
	testutil.AssertNoError(t, err)
	if n != 1 {
		t.Errorf("expected 1 purged session, got %d", n)
	}

	if _, err := svc.Resolve(live); err != nil {
		t.Errorf("live session should survive: %v", err)
	}
}
