package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vellumBackend/domain/record"
	"vellumBackend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listRecords(t *testing.T, router http.Handler, collectionId string, query string) (utils.OkResponse[record.RecordPage], int) {
	t.Helper()

	req, _ := http.NewRequest("GET", "/collections/"+collectionId+"/records"+query, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var response utils.OkResponse[record.RecordPage]
	_ = json.Unmarshal(resp.Body.Bytes(), &response)

	return response, resp.Code
}

func createRecord(t *testing.T, router http.Handler, collectionId string, payload map[string]any) (utils.OkResponse[record.Record], int) {
	t.Helper()

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/collections/"+collectionId+"/records", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var response utils.OkResponse[record.Record]
	_ = json.Unmarshal(resp.Body.Bytes(), &response)

	return response, resp.Code
}

// === GET ===

func TestListRecords(t *testing.T) {
	router, _ := SetupTestServer(t)

	response, code := listRecords(t, router, PostsCollectionId, "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(3), response.Payload.Total)
	assert.Equal(t, 1, response.Payload.Page)
	assert.Equal(t, 25, response.Payload.Limit)
	assert.Equal(t, 1, response.Payload.Pages)
	require.Len(t, response.Payload.Data, 3)

	// Records are ordered by creation time, newest first
	assert.Equal(t, "Third post", response.Payload.Data[0]["title"])
	assert.Equal(t, "First post", response.Payload.Data[2]["title"])
}

func TestListRecords_Pagination(t *testing.T) {
	router, _ := SetupTestServer(t)

	response, code := listRecords(t, router, PostsCollectionId, "?page=1&limit=2")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(3), response.Payload.Total)
	assert.Equal(t, 2, response.Payload.Pages)
	require.Len(t, response.Payload.Data, 2)

	response, code = listRecords(t, router, PostsCollectionId, "?page=2&limit=2")

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, response.Payload.Data, 1)
	assert.Equal(t, "First post", response.Payload.Data[0]["title"])
}

func TestListRecords_Empty(t *testing.T) {
	router, _ := SetupTestServer(t)

	response, code := listRecords(t, router, PagesCollectionId, "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), response.Payload.Total)
	assert.Equal(t, 0, response.Payload.Pages)
	assert.NotNil(t, response.Payload.Data)
	assert.Len(t, response.Payload.Data, 0)
}

func TestListRecords_InvalidPagination(t *testing.T) {
	router, _ := SetupTestServer(t)

	for _, query := range []string{"?page=0", "?limit=0", "?limit=101", "?page=abc", "?limit=abc"} {
		_, code := listRecords(t, router, PostsCollectionId, query)
		assert.Equal(t, http.StatusBadRequest, code, "query %s", query)
	}
}

func TestListRecords_UnknownCollection(t *testing.T) {
	router, _ := SetupTestServer(t)

	_, code := listRecords(t, router, "00000000-dead-beef-0000-000000000000", "")

	assert.Equal(t, http.StatusNotFound, code)
}

// === POST ===

func TestCreateRecord(t *testing.T) {
	router, _ := SetupTestServer(t)

	response, code := createRecord(t, router, PostsCollectionId, map[string]any{"title": "Hello"})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello", response.Payload["title"])
	assert.NotNil(t, response.Payload["id"])
	assert.NotNil(t, response.Payload["created_at"])
	assert.NotNil(t, response.Payload["updated_at"])

	listed, _ := listRecords(t, router, PostsCollectionId, "")
	assert.Equal(t, int64(4), listed.Payload.Total)
	require.Len(t, listed.Payload.Data, 4)
	assert.Equal(t, "Hello", listed.Payload.Data[0]["title"])
}

func TestCreateRecord_EmptyPayload(t *testing.T) {
	router, _ := SetupTestServer(t)

	_, code := createRecord(t, router, PostsCollectionId, map[string]any{})

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateRecord_UnknownColumn(t *testing.T) {
	router, _ := SetupTestServer(t)

	// The posts collection has registered fields, so unknown columns
	// are rejected instead of being interpolated
	_, code := createRecord(t, router, PostsCollectionId, map[string]any{"color": "red"})

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateRecord_ReservedColumn(t *testing.T) {
	router, _ := SetupTestServer(t)

	_, code := createRecord(t, router, PostsCollectionId, map[string]any{"id": 99})

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateRecord_SchemaFree(t *testing.T) {
	router, _ := SetupTestServer(t)

	// The pages collection has no registered fields and accepts any
	// identifier-safe column
	response, code := createRecord(t, router, PagesCollectionId, map[string]any{"slug": "home", "content": "Welcome"})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "home", response.Payload["slug"])
}

func TestCreateRecord_UnsafeColumn(t *testing.T) {
	router, _ := SetupTestServer(t)

	_, code := createRecord(t, router, PagesCollectionId, map[string]any{`slug"; DROP TABLE pages; --`: "x"})

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateRecord_ArchivedCollection(t *testing.T) {
	router, _ := SetupTestServer(t)

	_, code := createRecord(t, router, LegacyCollectionId, map[string]any{"title": "x"})

	assert.Equal(t, http.StatusBadRequest, code)
}

// === PATCH ===

func TestUpdateRecord(t *testing.T) {
	router, _ := SetupTestServer(t)

	created, _ := createRecord(t, router, PostsCollectionId, map[string]any{"title": "Hello", "body": "First draft"})
	recordId := fmt.Sprintf("%v", created.Payload["id"])

	body, _ := json.Marshal(map[string]any{"title": "Bye"})
	req, _ := http.NewRequest("PATCH", "/collections/"+PostsCollectionId+"/records/"+recordId, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.OkResponse[record.Record]
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	// Only the submitted column changes
	assert.Equal(t, "Bye", response.Payload["title"])
	assert.Equal(t, "First draft", response.Payload["body"])

	// updated_at advances, created_at stays as written
	assert.NotEqual(t, created.Payload["updated_at"], response.Payload["updated_at"])
	assert.Equal(t, created.Payload["created_at"], response.Payload["created_at"])
}

func TestUpdateRecord_NotFound(t *testing.T) {
	router, _ := SetupTestServer(t)

	body, _ := json.Marshal(map[string]any{"title": "x"})
	req, _ := http.NewRequest("PATCH", "/collections/"+PostsCollectionId+"/records/99999", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// === DELETE ===

func TestDeleteRecord(t *testing.T) {
	router, _ := SetupTestServer(t)

	created, _ := createRecord(t, router, PostsCollectionId, map[string]any{"title": "Doomed"})
	recordId := fmt.Sprintf("%v", created.Payload["id"])

	req, _ := http.NewRequest("DELETE", "/collections/"+PostsCollectionId+"/records/"+recordId, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	// Further operations on the deleted record fail with 404
	req, _ = http.NewRequest("DELETE", "/collections/"+PostsCollectionId+"/records/"+recordId, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	body, _ := json.Marshal(map[string]any{"title": "x"})
	req, _ = http.NewRequest("PATCH", "/collections/"+PostsCollectionId+"/records/"+recordId, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// === Files ===

func TestRecordFiles(t *testing.T) {
	router, _ := SetupTestServer(t)

	created, _ := createRecord(t, router, PostsCollectionId, map[string]any{"title": "Illustrated"})
	recordId := fmt.Sprintf("%v", created.Payload["id"])
	fileUrl := "/collections/" + PostsCollectionId + "/records/" + recordId + "/files/cover"

	req, _ := http.NewRequest("PUT", fileUrl, bytes.NewBufferString("image-bytes"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	req, _ = http.NewRequest("GET", fileUrl, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image-bytes", resp.Body.String())

	req, _ = http.NewRequest("DELETE", fileUrl, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	req, _ = http.NewRequest("GET", fileUrl, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRecordFiles_NotFileField(t *testing.T) {
	router, _ := SetupTestServer(t)

	created, _ := createRecord(t, router, PostsCollectionId, map[string]any{"title": "Plain"})
	recordId := fmt.Sprintf("%v", created.Payload["id"])

	req, _ := http.NewRequest("PUT", "/collections/"+PostsCollectionId+"/records/"+recordId+"/files/title", bytes.NewBufferString("x"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
