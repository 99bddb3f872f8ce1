package controllers_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SGRH/SGRH-Backend/src/auth"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAPIRouter() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router, router.Group("/api")
}

func bearer(t *testing.T, userID int, role models.Role) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID, role, time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// fakeUserService implements controllers.UserService.
type fakeUserService struct {
	registerResp models.RegisterResponse
	registerErr  error
	loginResp    models.LoginResponse
	loginErr     error

	gotRegister *models.RegisterRequest
	gotLogin    *models.LoginRequest
}

func (f *fakeUserService) Register(req models.RegisterRequest) (models.RegisterResponse, error) {
	f.gotRegister = &req
	return f.registerResp, f.registerErr
}

func (f *fakeUserService) Login(req models.LoginRequest) (models.LoginResponse, error) {
	f.gotLogin = &req
	return f.loginResp, f.loginErr
}

// fakeEmpleadoService implements controllers.EmpleadoService.
type fakeEmpleadoService struct {
	listResult models.PageResult
	listErr    error
	created    *models.EmpleadoModel
	createErr  error
	updated    *models.EmpleadoModel
	updateErr  error
	deleteErr  error
	byUser     *models.EmpleadoModel
	byUserErr  error

	gotNombre    string
	gotPage      int
	gotLimit     int
	gotUpdateID  int
	gotDeleteID  int
	gotUserID    int
	deleteCalled bool
}

func (f *fakeEmpleadoService) List(nombre string, page, limit int) (models.PageResult, error) {
	f.gotNombre, f.gotPage, f.gotLimit = nombre, page, limit
	return f.listResult, f.listErr
}

func (f *fakeEmpleadoService) Create(req models.EmpleadoRequest) (*models.EmpleadoModel, error) {
	return f.created, f.createErr
}

func (f *fakeEmpleadoService) Update(id int, req models.EmpleadoRequest) (*models.EmpleadoModel, error) {
	f.gotUpdateID = id
	return f.updated, f.updateErr
}

func (f *fakeEmpleadoService) Delete(id int) error {
	f.gotDeleteID = id
	f.deleteCalled = true
	return f.deleteErr
}

func (f *fakeEmpleadoService) GetByUserID(userID int) (*models.EmpleadoModel, error) {
	f.gotUserID = userID
	return f.byUser, f.byUserErr
}

// fakeSolicitudService implements controllers.SolicitudService.
type fakeSolicitudService struct {
	listResult models.PageResult
	listErr    error
	createResp *models.SolicitudResponse
	createErr  error
	updateResp *models.SolicitudResponse
	updateErr  error
	deleteErr  error

	gotCreateReq  *models.SolicitudCreateRequest
	gotIDEmpleado int
	gotUpdateID   int
	gotDeleteID   int
	deleteCalled  bool
}

func (f *fakeSolicitudService) List(page, limit int) (models.PageResult, error) {
	return f.listResult, f.listErr
}

func (f *fakeSolicitudService) Create(req models.SolicitudCreateRequest, idEmpleado int) (*models.SolicitudResponse, error) {
	f.gotCreateReq = &req
	f.gotIDEmpleado = idEmpleado
	return f.createResp, f.createErr
}

func (f *fakeSolicitudService) Update(id int, req models.SolicitudUpdateRequest) (*models.SolicitudResponse, error) {
	f.gotUpdateID = id
	return f.updateResp, f.updateErr
}

func (f *fakeSolicitudService) Delete(id int) error {
	f.gotDeleteID = id
	f.deleteCalled = true
	return f.deleteErr
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
