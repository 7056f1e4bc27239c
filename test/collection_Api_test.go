package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vellumBackend/auth"
	"vellumBackend/domain/collection"
	"vellumBackend/utils"

	"github.com/stretchr/testify/assert"
)

// === GET ===

func TestGetCollections(t *testing.T) {
	router, _ := SetupTestServer(t)

	req, _ := http.NewRequest("GET", "/collections", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.OkResponse[[]collection.CollectionOut]
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.GreaterOrEqual(t, len(response.Payload), 3)
	assert.Equal(t, "posts", response.Payload[0].Name)
	assert.Len(t, response.Payload[0].Fields, 4)
}

func TestGetCollections_Unauthorized(t *testing.T) {
	router, _ := SetupTestServerWithUser(t, auth.AuthenticatedUser{})

	req, _ := http.NewRequest("GET", "/collections", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestGetCollection(t *testing.T) {
	router, _ := SetupTestServer(t)

	req, _ := http.NewRequest("GET", "/collections/"+PostsCollectionId, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.OkResponse[collection.CollectionOut]
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "posts", response.Payload.Name)
	assert.Equal(t, collection.StatusActive, response.Payload.Status)
}

// === POST ===

func TestCreateCollection(t *testing.T) {
	router, _ := SetupTestServer(t)

	newCollection := collection.CollectionIn{
		Name:        "events",
		DisplayName: "Events",
		TableName:   "events",
		Fields: []collection.FieldIn{
			{Name: "name", DbColumn: "name", Type: collection.FieldTypeText, Required: true},
			{Name: "starts_at", DbColumn: "starts_at", Type: collection.FieldTypeDatetime},
		},
	}
	payload, _ := json.Marshal(newCollection)

	req, _ := http.NewRequest("POST", "/collections", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.OkResponse[string]
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Payload)
}

func TestCreateCollection_DuplicateTable(t *testing.T) {
	router, _ := SetupTestServer(t)

	newCollection := collection.CollectionIn{
		Name:        "articles",
		DisplayName: "Articles",
		TableName:   "posts",
	}
	payload, _ := json.Marshal(newCollection)

	req, _ := http.NewRequest("POST", "/collections", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateCollection_UnsafeTableName(t *testing.T) {
	router, _ := SetupTestServer(t)

	newCollection := collection.CollectionIn{
		Name:        "articles",
		DisplayName: "Articles",
		TableName:   "articles; DROP TABLE posts",
	}
	payload, _ := json.Marshal(newCollection)

	req, _ := http.NewRequest("POST", "/collections", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateCollection_InvalidFieldType(t *testing.T) {
	router, _ := SetupTestServer(t)

	newCollection := collection.CollectionIn{
		Name:        "articles",
		DisplayName: "Articles",
		TableName:   "articles",
		Fields: []collection.FieldIn{
			{Name: "name", DbColumn: "name", Type: "GEOMETRY"},
		},
	}
	payload, _ := json.Marshal(newCollection)

	req, _ := http.NewRequest("POST", "/collections", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// === PATCH ===

func TestUpdateCollection(t *testing.T) {
	router, _ := SetupTestServer(t)

	displayName := "All Blog Posts"
	update := collection.CollectionUpdateIn{DisplayName: &displayName}
	payload, _ := json.Marshal(update)

	req, _ := http.NewRequest("PATCH", "/collections/"+PostsCollectionId, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	req, _ = http.NewRequest("GET", "/collections/"+PostsCollectionId, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var response utils.OkResponse[collection.CollectionOut]
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "All Blog Posts", response.Payload.DisplayName)
}

// === DELETE (archive) ===

func TestArchiveCollection(t *testing.T) {
	router, _ := SetupTestServer(t)

	req, _ := http.NewRequest("DELETE", "/collections/"+PagesCollectionId, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	// Archived collections stay readable but reject record mutations
	req, _ = http.NewRequest("GET", "/collections/"+PagesCollectionId, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var response utils.OkResponse[collection.CollectionOut]
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, collection.StatusArchived, response.Payload.Status)

	record, _ := json.Marshal(map[string]any{"slug": "home"})
	req, _ = http.NewRequest("POST", "/collections/"+PagesCollectionId+"/records", bytes.NewBuffer(record))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
