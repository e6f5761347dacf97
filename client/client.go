package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"taskboard/dto"
	"taskboard/models"
	"taskboard/response"
)

// APIError carries the status code and the server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the taskboard API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr response.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) GetProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &projects)
	return projects, err
}

func (c *Client) CreateProject(ctx context.Context, input dto.CreateProjectDTO) (models.Project, error) {
	var project models.Project
	err := c.do(ctx, http.MethodPost, "/projects", input, &project)
	return project, err
}

func (c *Client) GetTasks(ctx context.Context, projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks?projectId=%d", projectID), nil, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(ctx context.Context, input dto.CreateTaskDTO) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPost, "/tasks", input, &task)
	return task, err
}

func (c *Client) UpdateTaskStatus(ctx context.Context, taskID uint, status string) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", taskID), dto.UpdateTaskStatusDTO{Status: status}, &task)
	return task, err
}

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

func (c *Client) GetTeams(ctx context.Context) ([]dto.TeamWithUsernames, error) {
	var teams []dto.TeamWithUsernames
	err := c.do(ctx, http.MethodGet, "/teams", nil, &teams)
	return teams, err
}

func (c *Client) Search(ctx context.Context, query string) (dto.SearchResults, error) {
	var results dto.SearchResults
	err := c.do(ctx, http.MethodGet, "/search?query="+url.QueryEscape(query), nil, &results)
	return results, err
}
