package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vellumBackend/domain/permission"
	"vellumBackend/utils"

	"github.com/stretchr/testify/assert"
)

func grantPermission(t *testing.T, router http.Handler, roleId string, grant permission.PermissionIn) (utils.OkResponse[string], int) {
	t.Helper()

	body, _ := json.Marshal(grant)
	req, _ := http.NewRequest("POST", "/roles/"+roleId+"/permissions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var response utils.OkResponse[string]
	_ = json.Unmarshal(resp.Body.Bytes(), &response)

	return response, resp.Code
}

func TestGrantPermission(t *testing.T) {
	router, _ := SetupTestServer(t)

	// Actions are normalized to upper-case
	response, code := grantPermission(t, router, ReviewerRoleId, permission.PermissionIn{
		CollectionId: PostsCollectionId,
		Action:       "read",
	})

	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, response.Payload)

	req, _ := http.NewRequest("GET", "/roles/"+ReviewerRoleId+"/permissions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var granted utils.OkResponse[[]permission.PermissionOut]
	err := json.Unmarshal(resp.Body.Bytes(), &granted)
	assert.NoError(t, err)
	assert.Len(t, granted.Payload, 1)
	assert.Equal(t, permission.ActionRead, granted.Payload[0].Action)
	assert.Equal(t, PostsCollectionId, granted.Payload[0].CollectionId)
}

func TestGrantPermission_Duplicate(t *testing.T) {
	router, _ := SetupTestServer(t)

	grant := permission.PermissionIn{
		CollectionId: PostsCollectionId,
		Action:       permission.ActionUpdate,
	}

	_, code := grantPermission(t, router, ReviewerRoleId, grant)
	assert.Equal(t, http.StatusOK, code)

	_, code = grantPermission(t, router, ReviewerRoleId, grant)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGrantPermission_UnknownAction(t *testing.T) {
	router, _ := SetupTestServer(t)

	_, code := grantPermission(t, router, ReviewerRoleId, permission.PermissionIn{
		CollectionId: PostsCollectionId,
		Action:       "PUBLISH",
	})

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGrantPermission_UnknownCollection(t *testing.T) {
	router, _ := SetupTestServer(t)

	_, code := grantPermission(t, router, ReviewerRoleId, permission.PermissionIn{
		CollectionId: "00000000-dead-beef-0000-000000000000",
		Action:       permission.ActionRead,
	})

	assert.Equal(t, http.StatusNotFound, code)
}

func TestRevokePermission(t *testing.T) {
	router, _ := SetupTestServer(t)

	response, code := grantPermission(t, router, ReviewerRoleId, permission.PermissionIn{
		CollectionId: PostsCollectionId,
		Action:       permission.ActionDelete,
	})
	assert.Equal(t, http.StatusOK, code)

	req, _ := http.NewRequest("DELETE", "/roles/"+ReviewerRoleId+"/permissions/"+response.Payload, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	req, _ = http.NewRequest("DELETE", "/roles/"+ReviewerRoleId+"/permissions/"+response.Payload, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRevokePermission_Regrant(t *testing.T) {
	router, _ := SetupTestServer(t)

	grant := permission.PermissionIn{
		CollectionId: PostsCollectionId,
		Action:       permission.ActionRead,
	}

	response, code := grantPermission(t, router, ReviewerRoleId, grant)
	assert.Equal(t, http.StatusOK, code)

	req, _ := http.NewRequest("DELETE", "/roles/"+ReviewerRoleId+"/permissions/"+response.Payload, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	// A revoked grant can be granted again
	_, code = grantPermission(t, router, ReviewerRoleId, grant)
	assert.Equal(t, http.StatusOK, code)
}

func TestRevokePermission_WrongRole(t *testing.T) {
	router, _ := SetupTestServer(t)

	response, code := grantPermission(t, router, ReviewerRoleId, permission.PermissionIn{
		CollectionId: PostsCollectionId,
		Action:       permission.ActionCreate,
	})
	assert.Equal(t, http.StatusOK, code)

	// A grant is only addressable through its own role
	req, _ := http.NewRequest("DELETE", "/roles/"+EditorRoleId+"/permissions/"+response.Payload, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
