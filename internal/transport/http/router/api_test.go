package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"restaurant-api/internal/testutil"
)

func init() { gin.SetMode(gin.TestMode) }

func newDeps(t *testing.T) Deps {
	return Deps{DB: testutil.NewDB(t), JWT: testutil.NewJWTer(), AllowAdminSignup: true}
}

func newAPI(t *testing.T) *gin.Engine {
	return NewAPIEngine(zap.NewNop(), newDeps(t), Options{MaxBodyBytes: 1 << 20})
}

// signup registers and logs in, returning the token and the user id.
func signup(t *testing.T, h http.Handler, email, role string) (string, uint) {
	t.Helper()
	code, body := testutil.Do(t, h, http.MethodPost, "/auth/register", "", gin.H{
		"email": email, "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, code, body)
	id := testutil.ID(t, body, "user")

	code, body = testutil.Do(t, h, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, code, body)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok, id
}

func seedMenu(t *testing.T, h http.Handler, adminTok string) (restaurantID, menuID uint) {
	t.Helper()
	code, body := testutil.Do(t, h, http.MethodPost, "/restaurants", adminTok, gin.H{
		"nombre": "La Casa", "direccion": "Calle 1",
	})
	require.Equal(t, http.StatusCreated, code, body)
	restaurantID = testutil.ID(t, body, "restaurant")

	code, body = testutil.Do(t, h, http.MethodPost, fmt.Sprintf("/restaurants/%d/menus", restaurantID), adminTok, gin.H{
		"platillo": "Tacos", "precio": 9.5,
	})
	require.Equal(t, http.StatusCreated, code, body)
	return restaurantID, testutil.ID(t, body, "menu")
}

func TestRegisterTwice(t *testing.T) {
	h := newAPI(t)
	in := gin.H{"email": "ana@x.io", "password": "secret123"}

	code, body := testutil.Do(t, h, http.MethodPost, "/auth/register", "", in)
	require.Equal(t, http.StatusCreated, code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "ana@x.io", user["email"])
	assert.Equal(t, "customer", user["role"])
	assert.NotContains(t, user, "password")

	code, body = testutil.Do(t, h, http.MethodPost, "/auth/register", "", in)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "user already exists", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	h := newAPI(t)
	code, _ := testutil.Do(t, h, http.MethodPost, "/auth/register", "", gin.H{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = testutil.Do(t, h, http.MethodPost, "/auth/register", "", gin.H{"email": "a@x.io", "password": "x", "role": "root"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLoginFailures(t *testing.T) {
	h := newAPI(t)
	signup(t, h, "ana@x.io", "")

	code, body := testutil.Do(t, h, http.MethodPost, "/auth/login", "", gin.H{"email": "ana@x.io", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.NotContains(t, body, "token")

	code, _ = testutil.Do(t, h, http.MethodPost, "/auth/login", "", gin.H{"email": "ghost@x.io", "password": "secret123"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMissingOrBadToken(t *testing.T) {
	h := newAPI(t)

	code, body := testutil.Do(t, h, http.MethodGet, "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "No token provided", body["message"])

	code, body = testutil.Do(t, h, http.MethodGet, "/users/me", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token", body["message"])

	code, _ = testutil.Do(t, h, http.MethodPost, "/reservations", "", gin.H{"fecha": "2025-01-01", "hora": "20:00", "restaurante_id": 1})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestMe(t *testing.T) {
	h := newAPI(t)
	tok, id := signup(t, h, "ana@x.io", "")

	code, body := testutil.Do(t, h, http.MethodGet, "/users/me", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, testutil.ID(t, body, "user"))

	code, _ = testutil.Do(t, h, http.MethodDelete, fmt.Sprintf("/users/%d", id), tok, nil)
	require.Equal(t, http.StatusOK, code)

	// the token outlives the account
	code, _ = testutil.Do(t, h, http.MethodGet, "/users/me", tok, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeletedAccountCannotBook(t *testing.T) {
	h := newAPI(t)
	adminTok, _ := signup(t, h, "boss@x.io", "admin")
	rid, mid := seedMenu(t, h, adminTok)
	tok, id := signup(t, h, "ana@x.io", "")

	code, _ := testutil.Do(t, h, http.MethodDelete, fmt.Sprintf("/users/%d", id), tok, nil)
	require.Equal(t, http.StatusOK, code)

	code, body := testutil.Do(t, h, http.MethodPost, "/reservations", tok, gin.H{
		"fecha": "2025-03-14", "hora": "20:30", "restaurante_id": rid,
	})
	assert.Equal(t, http.StatusNotFound, code, body)
	code, body = testutil.Do(t, h, http.MethodPost, "/orders", tok, gin.H{"menu_id": mid, "cantidad": 1})
	assert.Equal(t, http.StatusNotFound, code, body)
}

func TestAdminOverridesOwnership(t *testing.T) {
	h := newAPI(t)
	adminTok, _ := signup(t, h, "boss@x.io", "admin")
	rid, mid := seedMenu(t, h, adminTok)
	tok, uid := signup(t, h, "ana@x.io", "")

	code, body := testutil.Do(t, h, http.MethodPost, "/reservations", tok, gin.H{
		"fecha": "2025-03-14", "hora": "20:30", "restaurante_id": rid,
	})
	require.Equal(t, http.StatusCreated, code, body)
	resPath := fmt.Sprintf("/reservations/%d", testutil.ID(t, body, "reservation"))
	code, body = testutil.Do(t, h, http.MethodPost, "/orders", tok, gin.H{"menu_id": mid, "cantidad": 1})
	require.Equal(t, http.StatusCreated, code, body)
	orderPath := fmt.Sprintf("/orders/%d", testutil.ID(t, body, "order"))

	code, body = testutil.Do(t, h, http.MethodGet, orderPath, adminTok, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.EqualValues(t, uid, body["order"].(map[string]any)["usuario_id"])
	code, _ = testutil.Do(t, h, http.MethodDelete, orderPath, adminTok, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = testutil.Do(t, h, http.MethodGet, orderPath, tok, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = testutil.Do(t, h, http.MethodDelete, resPath, adminTok, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = testutil.Do(t, h, http.MethodGet, resPath, tok, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = testutil.Do(t, h, http.MethodDelete, fmt.Sprintf("/users/%d", uid), adminTok, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = testutil.Do(t, h, http.MethodGet, "/users/me", tok, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAdminCreatesRestaurantAndMenu(t *testing.T) {
	h := newAPI(t)
	adminTok, _ := signup(t, h, "boss@x.io", "admin")
	customerTok, _ := signup(t, h, "ana@x.io", "")

	code, _ := testutil.Do(t, h, http.MethodPost, "/restaurants", customerTok, gin.H{"nombre": "X", "direccion": "Y"})
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = testutil.Do(t, h, http.MethodPost, "/restaurants", "", gin.H{"nombre": "X", "direccion": "Y"})
	assert.Equal(t, http.StatusUnauthorized, code)

	rid, mid := seedMenu(t, h, adminTok)

	code, body := testutil.Do(t, h, http.MethodGet, fmt.Sprintf("/menus/%d", mid), "", nil)
	require.Equal(t, http.StatusOK, code)
	menu := body["menu"].(map[string]any)
	assert.Equal(t, "Tacos", menu["platillo"])
	assert.Equal(t, 9.5, menu["precio"])
	assert.EqualValues(t, rid, menu["restaurante_id"])

	code, body = testutil.Do(t, h, http.MethodGet, fmt.Sprintf("/restaurants/%d/menus", rid), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["menus"], 1)

	code, body = testutil.Do(t, h, http.MethodGet, "/restaurants", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["restaurants"], 1)

	code, _ = testutil.Do(t, h, http.MethodPut, fmt.Sprintf("/menus/%d", mid), customerTok, gin.H{"platillo": "Z", "precio": 1})
	assert.Equal(t, http.StatusForbidden, code)
	code, body = testutil.Do(t, h, http.MethodPut, fmt.Sprintf("/restaurants/%d", rid), adminTok, gin.H{"nombre": "Nueva", "direccion": "Calle 2"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Nueva", body["restaurant"].(map[string]any)["nombre"])

	code, _ = testutil.Do(t, h, http.MethodPost, "/restaurants/9999/menus", adminTok, gin.H{"platillo": "Z", "precio": 1})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = testutil.Do(t, h, http.MethodDelete, fmt.Sprintf("/restaurants/%d", rid), adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = testutil.Do(t, h, http.MethodGet, fmt.Sprintf("/menus/%d", mid), "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestReservationCancelTwice(t *testing.T) {
	h := newAPI(t)
	adminTok, _ := signup(t, h, "boss@x.io", "admin")
	rid, _ := seedMenu(t, h, adminTok)
	tok, uid := signup(t, h, "ana@x.io", "cliente")

	code, body := testutil.Do(t, h, http.MethodPost, "/reservations", tok, gin.H{
		"fecha": "2025-03-14", "hora": "20:30", "restaurante_id": rid,
	})
	require.Equal(t, http.StatusCreated, code, body)
	res := body["reservation"].(map[string]any)
	assert.EqualValues(t, uid, res["usuario_id"])
	resID := testutil.ID(t, body, "reservation")

	code, body = testutil.Do(t, h, http.MethodGet, "/reservations", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["reservations"].(map[string]any)["total"])

	otherTok, _ := signup(t, h, "bob@x.io", "")
	code, _ = testutil.Do(t, h, http.MethodDelete, fmt.Sprintf("/reservations/%d", resID), otherTok, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = testutil.Do(t, h, http.MethodDelete, fmt.Sprintf("/reservations/%d", resID), tok, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = testutil.Do(t, h, http.MethodDelete, fmt.Sprintf("/reservations/%d", resID), tok, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = testutil.Do(t, h, http.MethodPost, "/reservations", tok, gin.H{
		"fecha": "14/03/2025", "hora": "20:30", "restaurante_id": rid,
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestOrderOwnership(t *testing.T) {
	h := newAPI(t)
	adminTok, _ := signup(t, h, "boss@x.io", "admin")
	rid, mid := seedMenu(t, h, adminTok)
	aTok, aID := signup(t, h, "ana@x.io", "")
	bTok, _ := signup(t, h, "bob@x.io", "")

	code, body := testutil.Do(t, h, http.MethodPost, "/orders", aTok, gin.H{"menu_id": mid, "cantidad": 2})
	require.Equal(t, http.StatusCreated, code, body)
	order := body["order"].(map[string]any)
	assert.EqualValues(t, rid, order["restaurante_id"])
	assert.EqualValues(t, aID, order["usuario_id"])
	assert.Nil(t, order["reserva_id"])
	oid := testutil.ID(t, body, "order")
	path := fmt.Sprintf("/orders/%d", oid)

	update := gin.H{"menu_id": mid, "cantidad": 5, "restaurante_id": rid}
	code, _ = testutil.Do(t, h, http.MethodPut, path, bTok, update)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = testutil.Do(t, h, http.MethodGet, path, bTok, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = testutil.Do(t, h, http.MethodPut, path, adminTok, update)
	require.Equal(t, http.StatusOK, code, body)
	assert.EqualValues(t, 5, body["order"].(map[string]any)["cantidad"])
	assert.EqualValues(t, aID, body["order"].(map[string]any)["usuario_id"])

	code, body = testutil.Do(t, h, http.MethodGet, "/orders?page=1&size=10", aTok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["orders"].(map[string]any)["items"], 1)

	code, _ = testutil.Do(t, h, http.MethodDelete, path, bTok, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = testutil.Do(t, h, http.MethodDelete, path, aTok, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = testutil.Do(t, h, http.MethodPost, "/orders", aTok, gin.H{"menu_id": 9999, "cantidad": 1})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUserUpdatePolicy(t *testing.T) {
	h := newAPI(t)
	adminTok, _ := signup(t, h, "boss@x.io", "admin")
	aTok, aID := signup(t, h, "ana@x.io", "")
	bTok, _ := signup(t, h, "bob@x.io", "")
	path := fmt.Sprintf("/users/%d", aID)

	code, _ := testutil.Do(t, h, http.MethodPut, path, bTok, gin.H{"email": "evil@x.io"})
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = testutil.Do(t, h, http.MethodPut, path, aTok, gin.H{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, code)

	code, body := testutil.Do(t, h, http.MethodPut, path, aTok, gin.H{"email": "ana2@x.io"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ana2@x.io", body["user"].(map[string]any)["email"])

	code, body = testutil.Do(t, h, http.MethodPut, path, adminTok, gin.H{"role": "admin"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "admin", body["user"].(map[string]any)["role"])
}

func TestNonexistentIDs(t *testing.T) {
	h := newAPI(t)
	adminTok, _ := signup(t, h, "boss@x.io", "admin")
	custTok, _ := signup(t, h, "ana@x.io", "")

	cases := []struct {
		method, path, tok string
		body              any
	}{
		{http.MethodGet, "/restaurants/9999", "", nil},
		{http.MethodGet, "/restaurants/abc", "", nil},
		{http.MethodGet, "/menus/9999", "", nil},
		{http.MethodPut, "/restaurants/9999", custTok, gin.H{"nombre": "X", "direccion": "Y"}},
		{http.MethodDelete, "/menus/9999", custTok, nil},
		{http.MethodPut, "/users/9999", custTok, gin.H{"email": "z@x.io"}},
		{http.MethodDelete, "/users/9999", adminTok, nil},
		{http.MethodGet, "/reservations/9999", adminTok, nil},
		{http.MethodDelete, "/reservations/9999", custTok, nil},
		{http.MethodGet, "/orders/9999", custTok, nil},
		{http.MethodPut, "/orders/9999", adminTok, gin.H{"menu_id": 1, "cantidad": 1}},
		{http.MethodDelete, "/orders/9999", custTok, nil},
	}
	for _, tc := range cases {
		code, _ := testutil.Do(t, h, tc.method, tc.path, tc.tok, tc.body)
		assert.Equal(t, http.StatusNotFound, code, tc.method+" "+tc.path)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	h := newAPI(t)
	code, body := testutil.Do(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["ok"])

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "restaurant_api_http_requests_total")
}

func TestAdminConsole(t *testing.T) {
	d := newDeps(t)
	api := NewAPIEngine(zap.NewNop(), d, Options{})
	admin := NewAdminEngine(zap.NewNop(), d, Options{})

	adminTok, _ := signup(t, api, "boss@x.io", "admin")
	custTok, _ := signup(t, api, "ana@x.io", "")
	rid, mid := seedMenu(t, api, adminTok)
	code, _ := testutil.Do(t, api, http.MethodPost, "/orders", custTok, gin.H{"menu_id": mid, "cantidad": 1})
	require.Equal(t, http.StatusCreated, code)

	code, _ = testutil.Do(t, admin, http.MethodGet, "/admin/v1/users", custTok, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = testutil.Do(t, admin, http.MethodGet, "/admin/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := testutil.Do(t, admin, http.MethodGet, "/admin/v1/users?q=ana", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	users := body["users"].(map[string]any)
	assert.EqualValues(t, 1, users["total"])

	code, body = testutil.Do(t, admin, http.MethodGet, fmt.Sprintf("/admin/v1/orders?restaurante_id=%d&limit=5", rid), adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	orders := body["orders"].(map[string]any)
	assert.EqualValues(t, 1, orders["total"])
	assert.EqualValues(t, 5, orders["limit"])

	code, body = testutil.Do(t, admin, http.MethodGet, "/admin/v1/reservations", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, body["reservations"].(map[string]any)["total"])
}
