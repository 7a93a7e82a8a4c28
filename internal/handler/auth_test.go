package handler_test

import (
	"net/http"
	"testing"

	"github.com/vaibhavharit14/BudgetBox/internal/handler"
	"github.com/vaibhavharit14/BudgetBox/internal/models"
	"github.com/vaibhavharit14/BudgetBox/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	r, _ := setupServer(t)

	body := registerUser(t, r, "alice@example.com", "secret123")
	user := body["user"].(map[string]any)
	registeredID := user["id"].(string)
	require.NotEmpty(t, registeredID)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	token, loginBody := loginUser(t, r, "alice@example.com", "secret123")
	loggedIn := loginBody["user"].(map[string]any)
	assert.Equal(t, registeredID, loggedIn["id"], "user id must be stable across register and login")

	claims, err := util.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, registeredID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := setupServer(t)

	registerUser(t, r, "bob@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email":           "bob@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists", body["message"])

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "bob@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count, "no duplicate row may be created")
}

func TestRegisterValidationEnumeratesAllFields(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email":           "not-an-email",
		"password":        "short",
		"confirmPassword": "different",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].([]any)
	assert.Len(t, errs, 3, "every failing field must be enumerated: %v", errs)
	assert.Contains(t, errs, "Invalid email format")
	assert.Contains(t, errs, "password must be at least 6 characters")
	assert.Contains(t, errs, "Passwords do not match")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _ := setupServer(t)

	registerUser(t, r, "carol@example.com", "secret123")

	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "carol@example.com",
		"password": "wrong-password",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"wrong password and unknown email must produce byte-identical bodies")
}

func TestListUsers(t *testing.T) {
	r, _ := setupServer(t)

	registerUser(t, r, "dave@example.com", "secret123")
	registerUser(t, r, "erin@example.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/auth/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	users := body["users"].([]any)
	assert.Len(t, users, 2)
	first := users[0].(map[string]any)
	assert.NotContains(t, first, "password_hash")
}

func TestEnsureDemoUserIsIdempotent(t *testing.T) {
	_, db := setupServer(t)

	h := handler.NewAuthHandler(db, testSecret, "budgetbox-test", 1, 4)
	require.NoError(t, h.EnsureDemoUser("demo@example.com", "DemoPass1!"))
	require.NoError(t, h.EnsureDemoUser("demo@example.com", "DemoPass1!"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "demo@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := setupServer(t)

	for _, path := range []string{"/health", "/health/db"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"], path)
	}
}
