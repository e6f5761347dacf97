package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/client"
	"taskboard/dto"
	"taskboard/models"
)

// countingServer serves the task and project endpoints from in-memory
// state and counts hits per request key, so tests can assert how many
// fetches the cache actually let through.
type countingServer struct {
	mu       sync.Mutex
	hits     map[string]int
	tasks    map[uint][]models.Task
	projects []models.Project
	nextID   uint

	// when set, the task-list handler signals entered and waits on
	// release, so a test can act while a fetch is in flight
	tasksEntered chan struct{}
	tasksRelease chan struct{}
}

func newCountingServer() *countingServer {
	return &countingServer{
		hits:   map[string]int{},
		tasks:  map[uint][]models.Task{},
		nextID: 100,
	}
}

func (s *countingServer) hitCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key]
}

func (s *countingServer) holdTasks(entered, release chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasksEntered = entered
	s.tasksRelease = release
}

func (s *countingServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits["getProjects"]++
		projects := s.projects
		s.mu.Unlock()
		json.NewEncoder(w).Encode(projects)
	})
	mux.HandleFunc("POST /projects", func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		json.NewDecoder(r.Body).Decode(&project)
		s.mu.Lock()
		s.nextID++
		project.ID = s.nextID
		s.projects = append(s.projects, project)
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(project)
	})
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		projectID := r.URL.Query().Get("projectId")
		s.mu.Lock()
		s.hits["getTasks?projectId="+projectID]++
		entered, release := s.tasksEntered, s.tasksRelease
		s.mu.Unlock()
		if entered != nil {
			entered <- struct{}{}
			<-release
		}
		s.mu.Lock()
		var tasks []models.Task
		for id, list := range s.tasks {
			if fmt.Sprint(id) == projectID {
				tasks = list
			}
		}
		s.mu.Unlock()
		if tasks == nil {
			tasks = []models.Task{}
		}
		json.NewEncoder(w).Encode(tasks)
	})
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		var task models.Task
		json.NewDecoder(r.Body).Decode(&task)
		s.mu.Lock()
		s.nextID++
		task.ID = s.nextID
		s.tasks[task.ProjectID] = append(s.tasks[task.ProjectID], task)
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(task)
	})
	mux.HandleFunc("PATCH /tasks/{taskId}/status", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status models.Status `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		defer s.mu.Unlock()
		for projectID, list := range s.tasks {
			for i, task := range list {
				if fmt.Sprint(task.ID) == r.PathValue("taskId") {
					status := body.Status
					list[i].Status = &status
					s.tasks[projectID] = list
					json.NewEncoder(w).Encode(list[i])
					return
				}
			}
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "no such task"})
	})
	return mux
}

func setupCache(t *testing.T, srv *countingServer) *client.Cache {
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	return client.NewCache(client.New(ts.URL))
}

func seedTask(srv *countingServer, id, projectID uint, title string, status models.Status) {
	srv.tasks[projectID] = append(srv.tasks[projectID], models.Task{
		ID: id, Title: title, ProjectID: projectID, AuthorUserID: 1, Status: &status,
	})
}

func TestCacheCoalescesAndCaches(t *testing.T) {
	srv := newCountingServer()
	seedTask(srv, 1, 1, "one", models.StatusToDo)
	c := setupCache(t, srv)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks, err := c.GetTasks(ctx, 1)
			assert.NoError(t, err)
			assert.Len(t, tasks, 1)
		}()
	}
	wg.Wait()

	// Cached result, no extra round trip.
	_, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.hitCount("getTasks?projectId=1"))
}

func TestCreateTaskInvalidatesTaskLists(t *testing.T) {
	srv := newCountingServer()
	seedTask(srv, 1, 1, "one", models.StatusToDo)
	c := setupCache(t, srv)
	ctx := context.Background()

	_, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, srv.hitCount("getTasks?projectId=1"))

	created, err := c.CreateTask(ctx, taskInput("two", 1, 1))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	tasks, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, 2, srv.hitCount("getTasks?projectId=1"))
}

func TestUpdateTaskStatusInvalidatesOnlyContainingLists(t *testing.T) {
	srv := newCountingServer()
	seedTask(srv, 1, 1, "one", models.StatusToDo)
	seedTask(srv, 2, 2, "other project", models.StatusToDo)
	c := setupCache(t, srv)
	ctx := context.Background()

	_, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)
	_, err = c.GetTasks(ctx, 2)
	require.NoError(t, err)

	_, err = c.UpdateTaskStatus(ctx, 1, string(models.StatusCompleted))
	require.NoError(t, err)

	tasks, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, tasks[0].Status)
	assert.Equal(t, models.StatusCompleted, *tasks[0].Status)
	assert.Equal(t, 2, srv.hitCount("getTasks?projectId=1"))

	// Project 2 never held task 1, so its list stays cached.
	_, err = c.GetTasks(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.hitCount("getTasks?projectId=2"))
}

func TestCreateProjectInvalidatesProjects(t *testing.T) {
	srv := newCountingServer()
	c := setupCache(t, srv)
	ctx := context.Background()

	projects, err := c.GetProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	form := client.ProjectForm{
		Name:        "Website Redesign",
		Description: "rebuild",
		StartDate:   "2025-01-06",
		EndDate:     "2025-03-30",
	}
	_, err = form.Submit(ctx, c)
	require.NoError(t, err)

	projects, err = c.GetProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, 2, srv.hitCount("getProjects"))
}

func TestSubscribedKeysRefetchOnInvalidation(t *testing.T) {
	srv := newCountingServer()
	seedTask(srv, 1, 1, "one", models.StatusToDo)
	c := setupCache(t, srv)
	ctx := context.Background()

	_, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)

	var notified atomic.Int32
	cancel := c.Subscribe(client.KeyTasks(1), func() {
		notified.Add(1)
	})
	defer cancel()

	_, err = c.CreateTask(ctx, taskInput("two", 1, 1))
	require.NoError(t, err)

	// The refetch runs on its own goroutine.
	require.Eventually(t, func() bool {
		return srv.hitCount("getTasks?projectId=1") >= 2 && notified.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSupersededResponseIsDroppedNotCached(t *testing.T) {
	srv := newCountingServer()
	seedTask(srv, 1, 1, "one", models.StatusToDo)
	c := setupCache(t, srv)
	ctx := context.Background()

	_, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, srv.hitCount("getTasks?projectId=1"))

	// Mark the entry stale so the next read goes back to the server, and
	// hold that fetch open at the server.
	c.Invalidate(client.TaskTag(1))
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	srv.holdTasks(entered, release)

	done := make(chan struct{})
	var held []models.Task
	var heldErr error
	go func() {
		defer close(done)
		held, heldErr = c.GetTasks(ctx, 1)
	}()

	// Supersede the in-flight fetch, then let it finish.
	<-entered
	c.Invalidate(client.TaskTag(1))
	srv.holdTasks(nil, nil)
	close(release)
	<-done

	// The caller still gets the response, but the cache never keeps it.
	require.NoError(t, heldErr)
	assert.Len(t, held, 1)
	assert.Equal(t, uint64(1), c.StaleDropped())

	loading, failed := c.Status(client.KeyTasks(1))
	assert.False(t, loading)
	assert.False(t, failed)

	// The entry stayed stale, so the next read fetches fresh data
	// instead of serving the dropped payload.
	tasks, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, 3, srv.hitCount("getTasks?projectId=1"))
	assert.Equal(t, uint64(1), c.StaleDropped())
}

func TestMutationErrorSkipsInvalidation(t *testing.T) {
	srv := newCountingServer()
	seedTask(srv, 1, 1, "one", models.StatusToDo)
	c := setupCache(t, srv)
	ctx := context.Background()

	_, err := c.GetTasks(ctx, 1)
	require.NoError(t, err)

	_, err = c.UpdateTaskStatus(ctx, 999, string(models.StatusCompleted))
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	_, err = c.GetTasks(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.hitCount("getTasks?projectId=1"))
}

func taskInput(title string, projectID, authorUserID uint) dto.CreateTaskDTO {
	return dto.CreateTaskDTO{
		Title:        title,
		ProjectID:    dto.FlexUint(projectID),
		AuthorUserID: dto.FlexUint(authorUserID),
	}
}
