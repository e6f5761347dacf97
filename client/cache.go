package client

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"taskboard/dto"
	"taskboard/models"
)

// Cache tags. A mutation declares which tags become stale; every cached
// query carrying one of those tags is invalidated and, when subscribed,
// refetched.
const (
	TagProjects = "Projects"
	TagTasks    = "Tasks"
	TagUsers    = "Users"
	TagTeams    = "Teams"
)

// TaskTag scopes invalidation to queries whose result contains the task.
func TaskTag(id uint) string {
	return fmt.Sprintf("Tasks/%d", id)
}

func KeyProjects() string { return "getProjects" }

func KeyTasks(projectID uint) string {
	return fmt.Sprintf("getTasks?projectId=%d", projectID)
}

func KeyUsers() string { return "getUsers" }
func KeyTeams() string { return "getTeams" }

func KeySearch(query string) string {
	return "search?query=" + query
}

type queryEntry struct {
	data    any
	err     error
	loading bool
	stale   bool
	tags    map[string]struct{}
	refetch func()
}

// Cache is the client-side single source of truth for server state.
// Queries are keyed by endpoint plus parameters, concurrent identical
// queries are coalesced, and mutations invalidate tagged entries. The
// cache itself is never persisted.
type Cache struct {
	api   *Client
	group singleflight.Group

	mu           sync.Mutex
	entries      map[string]*queryEntry
	versions     map[string]uint64
	subs         map[string]map[int]func()
	nextSubID    int
	staleDropped uint64
}

func NewCache(api *Client) *Cache {
	return &Cache{
		api:      api,
		entries:  map[string]*queryEntry{},
		versions: map[string]uint64{},
		subs:     map[string]map[int]func(){},
	}
}

type flightResult[T any] struct {
	data    T
	err     error
	version uint64
}

func getQuery[T any](ctx context.Context, c *Cache, key string, provides func(T) []string, fetch func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &queryEntry{}
		e.refetch = func() {
			_, _ = getQuery(context.Background(), c, key, provides, fetch)
		}
		c.entries[key] = e
	}
	if e.data != nil && !e.stale && e.err == nil {
		data := e.data.(T)
		c.mu.Unlock()
		return data, nil
	}
	e.loading = true
	c.mu.Unlock()

	res, _, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.Lock()
		c.versions[key]++
		version := c.versions[key]
		c.mu.Unlock()

		data, err := fetch(ctx)
		return flightResult[T]{data: data, err: err, version: version}, nil
	})
	fr := res.(flightResult[T])

	c.mu.Lock()
	if fr.version < c.versions[key] {
		// Superseded while in flight; a fresher request owns the entry
		// now. Hand the caller its response but never cache it.
		e.loading = false
		c.staleDropped++
		c.mu.Unlock()
		return fr.data, fr.err
	}
	e.loading = false
	e.err = fr.err
	if fr.err == nil {
		e.data = fr.data
		e.stale = false
		e.tags = map[string]struct{}{}
		for _, tag := range provides(fr.data) {
			e.tags[tag] = struct{}{}
		}
	}
	listeners := c.listeners(key)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return fr.data, fr.err
}

func (c *Cache) listeners(key string) []func() {
	fns := make([]func(), 0, len(c.subs[key]))
	for _, fn := range c.subs[key] {
		fns = append(fns, fn)
	}
	return fns
}

// Invalidate marks every cached query carrying one of the tags stale and
// refetches those with active subscribers. In-flight fetches for those
// keys are superseded.
func (c *Cache) Invalidate(tags ...string) {
	c.mu.Lock()
	var refetches []func()
	for key, e := range c.entries {
		if !hasAnyTag(e.tags, tags) {
			continue
		}
		e.stale = true
		c.versions[key]++
		c.group.Forget(key)
		if len(c.subs[key]) > 0 && e.refetch != nil {
			refetches = append(refetches, e.refetch)
		}
	}
	c.mu.Unlock()

	for _, fn := range refetches {
		go fn()
	}
}

func hasAnyTag(have map[string]struct{}, want []string) bool {
	for _, tag := range want {
		if _, ok := have[tag]; ok {
			return true
		}
	}
	return false
}

// Subscribe registers a callback invoked whenever the keyed query stores a
// new result. The returned func cancels the subscription.
func (c *Cache) Subscribe(key string, fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subs[key] == nil {
		c.subs[key] = map[int]func(){}
	}
	id := c.nextSubID
	c.nextSubID++
	c.subs[key][id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs[key], id)
	}
}

// Status reports the loading and error flags for a keyed query.
func (c *Cache) Status(key string) (loading, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return false, false
	}
	return e.loading, e.err != nil
}

// StaleDropped counts responses discarded because a newer request for the
// same key superseded them.
func (c *Cache) StaleDropped() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staleDropped
}

func (c *Cache) GetProjects(ctx context.Context) ([]models.Project, error) {
	return getQuery(ctx, c, KeyProjects(), func([]models.Project) []string {
		return []string{TagProjects}
	}, c.api.GetProjects)
}

func (c *Cache) GetTasks(ctx context.Context, projectID uint) ([]models.Task, error) {
	return getQuery(ctx, c, KeyTasks(projectID), func(tasks []models.Task) []string {
		tags := []string{TagTasks}
		for _, task := range tasks {
			tags = append(tags, TaskTag(task.ID))
		}
		return tags
	}, func(ctx context.Context) ([]models.Task, error) {
		return c.api.GetTasks(ctx, projectID)
	})
}

func (c *Cache) GetUsers(ctx context.Context) ([]models.User, error) {
	return getQuery(ctx, c, KeyUsers(), func([]models.User) []string {
		return []string{TagUsers}
	}, c.api.GetUsers)
}

func (c *Cache) GetTeams(ctx context.Context) ([]dto.TeamWithUsernames, error) {
	return getQuery(ctx, c, KeyTeams(), func([]dto.TeamWithUsernames) []string {
		return []string{TagTeams}
	}, c.api.GetTeams)
}

// Search results carry no tags, so no mutation invalidates them; entries
// for distinct query strings are independent. A slow response for an
// older query string can still land after a newer one resolves — per-key
// versioning does not order distinct keys.
func (c *Cache) Search(ctx context.Context, query string) (dto.SearchResults, error) {
	return getQuery(ctx, c, KeySearch(query), func(dto.SearchResults) []string {
		return nil
	}, func(ctx context.Context) (dto.SearchResults, error) {
		return c.api.Search(ctx, query)
	})
}

func (c *Cache) CreateProject(ctx context.Context, input dto.CreateProjectDTO) (models.Project, error) {
	project, err := c.api.CreateProject(ctx, input)
	if err != nil {
		return models.Project{}, err
	}
	c.Invalidate(TagProjects)
	return project, nil
}

func (c *Cache) CreateTask(ctx context.Context, input dto.CreateTaskDTO) (models.Task, error) {
	task, err := c.api.CreateTask(ctx, input)
	if err != nil {
		return models.Task{}, err
	}
	c.Invalidate(TagTasks)
	return task, nil
}

// UpdateTaskStatus invalidates only the affected task's tag, so only task
// lists containing that task refetch.
func (c *Cache) UpdateTaskStatus(ctx context.Context, taskID uint, status string) (models.Task, error) {
	task, err := c.api.UpdateTaskStatus(ctx, taskID, status)
	if err != nil {
		return models.Task{}, err
	}
	c.Invalidate(TaskTag(taskID))
	return task, nil
}
