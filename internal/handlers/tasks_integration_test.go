package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daylist-io/daylist/internal/handlers/testutil"
)

func TestTaskLifecycle(t *testing.T) {
	env := testutil.NewEnv(t)
	_, token := env.MustUser("tasks@example.com", "a-strong-password")

	created := env.Request(http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":       "Ship the release",
		"description": "Tag and publish",
	}, token)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var task map[string]any
	testutil.DecodeInto(t, testutil.DecodeResponse(t, created).Data, &task)
	id, _ := task["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, false, task["completed"])

	// Partial update via PATCH keeps untouched fields.
	patched := env.Request(http.MethodPatch, "/api/v1/tasks/"+id, map[string]any{
		"title": "Ship v2",
	}, token)
	require.Equal(t, http.StatusOK, patched.Code)
	testutil.DecodeInto(t, testutil.DecodeResponse(t, patched).Data, &task)
	require.Equal(t, "Ship v2", task["title"])
	require.Equal(t, "Tag and publish", task["description"])

	// PUT behaves the same as PATCH.
	put := env.Request(http.MethodPut, "/api/v1/tasks/"+id, map[string]any{
		"description": "Tag, publish, announce",
	}, token)
	require.Equal(t, http.StatusOK, put.Code)
	testutil.DecodeInto(t, testutil.DecodeResponse(t, put).Data, &task)
	require.Equal(t, "Ship v2", task["title"])
	require.Equal(t, "Tag, publish, announce", task["description"])

	complete := env.Request(http.MethodPatch, "/api/v1/tasks/"+id+"/complete", map[string]any{
		"completed": true,
	}, token)
	require.Equal(t, http.StatusOK, complete.Code, complete.Body.String())
	testutil.DecodeInto(t, testutil.DecodeResponse(t, complete).Data, &task)
	require.Equal(t, true, task["completed"])

	// The same endpoint flips a task back to open.
	reopen := env.Request(http.MethodPatch, "/api/v1/tasks/"+id+"/complete", map[string]any{
		"completed": false,
	}, token)
	require.Equal(t, http.StatusOK, reopen.Code)
	testutil.DecodeInto(t, testutil.DecodeResponse(t, reopen).Data, &task)
	require.Equal(t, false, task["completed"])

	// A body without the completed flag is rejected.
	missing := env.Request(http.MethodPatch, "/api/v1/tasks/"+id+"/complete", map[string]any{}, token)
	require.Equal(t, http.StatusUnprocessableEntity, missing.Code)

	deleted := env.Request(http.MethodDelete, "/api/v1/tasks/"+id, nil, token)
	require.Equal(t, http.StatusNoContent, deleted.Code)
	require.Empty(t, deleted.Body.String())

	gone := env.Request(http.MethodGet, "/api/v1/tasks/"+id, nil, token)
	require.Equal(t, http.StatusNotFound, gone.Code)
}

func TestTaskListPaginationAndFilter(t *testing.T) {
	env := testutil.NewEnv(t)
	_, token := env.MustUser("lists@example.com", "a-strong-password")

	for i := 0; i < 4; i++ {
		resp := env.Request(http.MethodPost, "/api/v1/tasks", map[string]any{
			"title": fmt.Sprintf("task %d", i),
		}, token)
		require.Equal(t, http.StatusCreated, resp.Code)
	}
	resp := env.Request(http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":     "done already",
		"completed": true,
	}, token)
	require.Equal(t, http.StatusCreated, resp.Code)

	page := env.Request(http.MethodGet, "/api/v1/tasks?limit=2&offset=0", nil, token)
	require.Equal(t, http.StatusOK, page.Code)
	payload := testutil.DecodeResponse(t, page)
	require.NotNil(t, payload.Meta)
	require.EqualValues(t, 5, payload.Meta.Total)
	require.Equal(t, 2, payload.Meta.Limit)
	var tasks []map[string]any
	testutil.DecodeInto(t, payload.Data, &tasks)
	require.Len(t, tasks, 2)

	// Limit caps at 100.
	capped := env.Request(http.MethodGet, "/api/v1/tasks?limit=500", nil, token)
	require.Equal(t, http.StatusOK, capped.Code)
	require.Equal(t, 100, testutil.DecodeResponse(t, capped).Meta.Limit)

	filtered := env.Request(http.MethodGet, "/api/v1/tasks?completed=true", nil, token)
	require.Equal(t, http.StatusOK, filtered.Code)
	payload = testutil.DecodeResponse(t, filtered)
	require.EqualValues(t, 1, payload.Meta.Total)
	testutil.DecodeInto(t, payload.Data, &tasks)
	require.Len(t, tasks, 1)
	require.Equal(t, "done already", tasks[0]["title"])
}

func TestTaskOwnershipIsolation(t *testing.T) {
	env := testutil.NewEnv(t)
	_, ownerToken := env.MustUser("owner@example.com", "a-strong-password")
	_, otherToken := env.MustUser("other@example.com", "a-strong-password")

	created := env.Request(http.MethodPost, "/api/v1/tasks", map[string]any{"title": "mine"}, ownerToken)
	require.Equal(t, http.StatusCreated, created.Code)
	var task map[string]any
	testutil.DecodeInto(t, testutil.DecodeResponse(t, created).Data, &task)
	id, _ := task["id"].(string)

	// Another user sees a uniform 404, never a 403.
	resp := env.Request(http.MethodGet, "/api/v1/tasks/"+id, nil, otherToken)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = env.Request(http.MethodDelete, "/api/v1/tasks/"+id, nil, otherToken)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = env.Request(http.MethodGet, "/api/v1/tasks/not-a-uuid", nil, ownerToken)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestTaskValidation(t *testing.T) {
	env := testutil.NewEnv(t)
	_, token := env.MustUser("invalid@example.com", "a-strong-password")

	resp := env.Request(http.MethodPost, "/api/v1/tasks", map[string]any{"title": ""}, token)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = env.Request(http.MethodPost, "/api/v1/tasks", map[string]any{"description": "no title"}, token)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
