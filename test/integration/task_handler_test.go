//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/models"
)

func TestTaskHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router)

	t.Run("GetTasks - Requires projectId", func(t *testing.T) {
		resp, err := client.GET("/tasks")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		require.NoError(t, resp.DecodeJSON(&body))
		assert.Equal(t, "projectId is required", body["message"])
	})

	t.Run("GetTasks - Includes Relations", func(t *testing.T) {
		resp, err := client.GET("/tasks?projectId=1")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tasks []models.Task
		require.NoError(t, resp.DecodeJSON(&tasks))
		require.NotEmpty(t, tasks)
		for _, task := range tasks {
			assert.Equal(t, uint(1), task.ProjectID)
			require.NotNil(t, task.Author, "task %d missing author", task.ID)
		}
	})

	t.Run("GetTasks - Unknown Project Returns Empty List", func(t *testing.T) {
		resp, err := client.GET("/tasks?projectId=9999")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tasks []models.Task
		require.NoError(t, resp.DecodeJSON(&tasks))
		assert.Empty(t, tasks)
	})

	t.Run("CreateTask - Missing Required Fields Rejected", func(t *testing.T) {
		for _, payload := range []map[string]interface{}{
			{"projectId": 1, "authorUserId": 1},
			{"title": "t", "authorUserId": 1},
			{"title": "t", "projectId": 1},
		} {
			resp, err := client.POST("/tasks", payload)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, resp.DecodeJSON(&body))
			assert.Equal(t, "Title, projectId, and authorUserId are required", body["message"])
		}
	})

	t.Run("CreateTask - String IDs Accepted", func(t *testing.T) {
		resp, err := client.POST("/tasks", map[string]interface{}{
			"title":        "integration task",
			"projectId":    "1",
			"authorUserId": "2",
			"status":       "To Do",
			"priority":     "High",
			"points":       "5",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created models.Task
		require.NoError(t, resp.DecodeJSON(&created))
		assert.Equal(t, uint(1), created.ProjectID)
		assert.Equal(t, uint(2), created.AuthorUserID)
		require.NotNil(t, created.Points)
		assert.Equal(t, 5, *created.Points)
	})

	t.Run("UpdateTaskStatus - Only Status Changes", func(t *testing.T) {
		listResp, err := client.GET("/tasks?projectId=1")
		require.NoError(t, err)
		var tasks []models.Task
		require.NoError(t, listResp.DecodeJSON(&tasks))
		require.NotEmpty(t, tasks)
		before := tasks[0]

		resp, err := client.PATCH(fmt.Sprintf("/tasks/%d/status", before.ID), map[string]interface{}{
			"status": "Under Review",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var after models.Task
		require.NoError(t, resp.DecodeJSON(&after))
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.Title, after.Title)
		assert.Equal(t, before.AuthorUserID, after.AuthorUserID)
		require.NotNil(t, after.Status)
		assert.Equal(t, models.StatusUnderReview, *after.Status)
	})

	t.Run("UpdateTaskStatus - Unknown Status Rejected", func(t *testing.T) {
		resp, err := client.PATCH("/tasks/1/status", map[string]interface{}{
			"status": "Done",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
