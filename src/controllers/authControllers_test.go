package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/SGRH/SGRH-Backend/src/routes"
	"github.com/SGRH/SGRH-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *fakeUserService) *gin.Engine {
	router, api := newAPIRouter()
	routes.SetupAuthRoutes(api, svc)
	return router
}

func TestRegister_Created(t *testing.T) {
	svc := &fakeUserService{
		registerResp: models.RegisterResponse{ID: 1, Username: "alice", Role: models.RoleEmpleado},
	}
	router := newAuthRouter(svc)

	body := `{"username":"alice","email":"a@x.com","password":"pw123456","role":"empleado","salario":"3000000"}`
	rec := doJSON(router, http.MethodPost, "/api/auth/register", body, "")

	expectStatus(t, rec, http.StatusCreated)
	require.JSONEq(t, `{"id":1,"username":"alice","role":"empleado"}`, rec.Body.String())

	// The string salario reaches the service untouched; parsing is its job.
	require.NotNil(t, svc.gotRegister)
	require.Equal(t, "3000000", svc.gotRegister.Salario)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := &fakeUserService{}
	router := newAuthRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/auth/register", `{"username":"alice","email":"a@x.com"}`, "")

	expectStatus(t, rec, http.StatusBadRequest)
	require.Nil(t, svc.gotRegister)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := &fakeUserService{registerErr: services.ErrInvalidRole}
	router := newAuthRouter(svc)

	body := `{"username":"bob","email":"b@x.com","password":"pw","role":"superuser"}`
	rec := doJSON(router, http.MethodPost, "/api/auth/register", body, "")

	expectStatus(t, rec, http.StatusBadRequest)
}

func TestRegister_Duplicate(t *testing.T) {
	svc := &fakeUserService{registerErr: services.ErrDuplicate}
	router := newAuthRouter(svc)

	body := `{"username":"alice","email":"a@x.com","password":"pw","role":"empleado"}`
	rec := doJSON(router, http.MethodPost, "/api/auth/register", body, "")

	expectStatus(t, rec, http.StatusConflict)
}

func TestRegister_InternalError(t *testing.T) {
	svc := &fakeUserService{registerErr: errors.New("connection refused")}
	router := newAuthRouter(svc)

	body := `{"username":"alice","email":"a@x.com","password":"pw","role":"empleado"}`
	rec := doJSON(router, http.MethodPost, "/api/auth/register", body, "")

	expectStatus(t, rec, http.StatusInternalServerError)
	// The storage error never leaks to the client.
	require.JSONEq(t, `{"error":"Error del servidor"}`, rec.Body.String())
}

func TestLogin_OK(t *testing.T) {
	svc := &fakeUserService{
		loginResp: models.LoginResponse{
			Token: "tok",
			User:  models.UserModel{Id: 1, Username: "alice", Email: "a@x.com", Role: models.RoleEmpleado},
		},
	}
	router := newAuthRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw123456"}`, "")

	expectStatus(t, rec, http.StatusOK)
	require.JSONEq(t, `{"token":"tok","user":{"id":1,"username":"alice","email":"a@x.com","role":"empleado"}}`, rec.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	svc := &fakeUserService{}
	router := newAuthRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/auth/login", `{"email":"a@x.com"}`, "")

	expectStatus(t, rec, http.StatusBadRequest)
	require.Nil(t, svc.gotLogin)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Unknown email and wrong password share one response shape.
	svc := &fakeUserService{loginErr: services.ErrInvalidCredentials}
	router := newAuthRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/auth/login", `{"email":"nadie@x.com","password":"pw"}`, "")

	expectStatus(t, rec, http.StatusUnauthorized)
	require.JSONEq(t, `{"error":"Credenciales inválidas"}`, rec.Body.String())
}

func TestLogin_SinEmpleado(t *testing.T) {
	svc := &fakeUserService{loginErr: services.ErrSinEmpleado}
	router := newAuthRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw"}`, "")

	expectStatus(t, rec, http.StatusForbidden)
}
