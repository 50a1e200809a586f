package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/model/response"
	"todoapi/pkg/auth"
)

const testSecret = "test-secret"

type IdentityHandlerSuite struct {
	suite.Suite
	openRouter    *gin.Engine
	guardedRouter *gin.Engine
}

func (s *IdentityHandlerSuite) SetupTest() {
	s.openRouter = setupIdentityTestRouter("")
	s.guardedRouter = setupIdentityTestRouter(testSecret)
}

func TestIdentityHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(IdentityHandlerSuite))
}

func setupIdentityTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/me", middleware.Auth(secret), NewIdentityHandler().Me)

	return router
}

func (s *IdentityHandlerSuite) TestOpenModeReportsAnonymous() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)

	s.openRouter.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var identity response.IdentityResponse

	Expect(json.Unmarshal(rr.Body.Bytes(), &identity)).To(Succeed())
	Expect(identity.User).To(Equal("anonymous"))
	Expect(identity.Claims).To(BeEmpty())
}

func (s *IdentityHandlerSuite) TestMissingTokenRejected() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)

	s.guardedRouter.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *IdentityHandlerSuite) TestMalformedHeaderRejected() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")

	s.guardedRouter.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *IdentityHandlerSuite) TestInvalidTokenRejected() {
	verifier := &auth.JWT{Secret: "some-other-secret"}
	token, _ := verifier.CreateToken("mallory", nil)

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	s.guardedRouter.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *IdentityHandlerSuite) TestEchoesNameAndClaims() {
	verifier := &auth.JWT{Secret: testSecret}
	token, err := verifier.CreateToken("alice", map[string]string{"role": "admin"})

	Expect(err).To(BeNil())

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	s.guardedRouter.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var identity response.IdentityResponse

	Expect(json.Unmarshal(rr.Body.Bytes(), &identity)).To(Succeed())
	Expect(identity.User).To(Equal("alice"))
	Expect(identity.Claims).To(ContainElement(response.ClaimResponse{Type: "role", Value: "admin"}))
	Expect(identity.Claims).To(ContainElement(response.ClaimResponse{Type: "name", Value: "alice"}))
}
