// Package board implements the use-cases behind the HTTP surface: it turns
// validated intents into next collections via the changelog builders and
// hands them to the reconciliation engine in a single Mutate call.
package board

import (
	"context"
	"sync"

	"github.com/onurcagigan-dotcom/planet-event/internal/app/changelog"
	"github.com/onurcagigan-dotcom/planet-event/internal/app/reconcile"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

type Service struct {
	engine        *reconcile.Engine
	store         ports.LocalStore
	adminPassword string

	// Writes read the snapshot, compute the next collections, and swap them
	// in; mu orders those sequences so concurrent requests never compute
	// from the same base and drop each other's work.
	mu sync.Mutex
}

var _ ports.BoardService = (*Service)(nil)

func NewService(engine *reconcile.Engine, store ports.LocalStore, adminPassword string) *Service {
	return &Service{engine: engine, store: store, adminPassword: adminPassword}
}

func (s *Service) Snapshot() domain.Snapshot {
	return s.engine.Snapshot()
}

func (s *Service) CreateTask(input domain.CreateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.engine.Snapshot()
	actor := s.engine.Session().Nickname

	task := changelog.BuildTask(input.Category, input.Title, input.Status, input.Notes, input.Deadline, input.Assignee)
	tasks, logs := changelog.AddTask(snapshot.Tasks, snapshot.Logs, task, actor)

	if err := s.engine.Mutate(tasks, snapshot.Categories, logs); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *Service) UpdateTask(id string, update domain.TaskUpdate) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.engine.Snapshot()
	actor := s.engine.Session().Nickname

	var current domain.Task
	found := false
	for _, task := range snapshot.Tasks {
		if task.ID == id {
			current = task
			found = true
			break
		}
	}
	if !found {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	action := changelog.DescribeTaskUpdate(current, update)
	tasks, _ := changelog.ApplyTaskUpdate(snapshot.Tasks, id, update)
	logs := changelog.AppendLog(snapshot.Logs, changelog.NewEntry(id, current.Title, actor, action))

	if err := s.engine.Mutate(tasks, snapshot.Categories, logs); err != nil {
		return domain.Task{}, err
	}

	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return current, nil
}

func (s *Service) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.engine.Snapshot()
	actor := s.engine.Session().Nickname

	tasks, logs, ok := changelog.RemoveTask(snapshot.Tasks, snapshot.Logs, id, actor)
	if !ok {
		return domain.ErrTaskNotFound
	}
	return s.engine.Mutate(tasks, snapshot.Categories, logs)
}

func (s *Service) CreateCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.engine.Snapshot()
	actor := s.engine.Session().Nickname

	categories, logs, err := changelog.AddCategory(snapshot.Categories, snapshot.Logs, name, actor)
	if err != nil {
		return err
	}
	return s.engine.Mutate(snapshot.Tasks, categories, logs)
}

// Login records the participant locally. Admin is a straight comparison
// against the configured password; there is no account database.
func (s *Service) Login(nickname, password string) (domain.Session, error) {
	session := domain.Session{
		Nickname: nickname,
		Admin:    password != "" && password == s.adminPassword,
	}
	if err := s.store.SaveSession(session); err != nil {
		return domain.Session{}, err
	}
	s.engine.SetSession(session)
	return session, nil
}

func (s *Service) Logout() error {
	if err := s.store.ClearSession(); err != nil {
		return err
	}
	s.engine.SetSession(domain.Session{})
	return nil
}

func (s *Service) CurrentSession() (domain.Session, error) {
	session := s.engine.Session()
	if session.Nickname == "" {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

// Sync forces a manual pull; an absent remote document is initialized from
// the local snapshot inside the engine.
func (s *Service) Sync(ctx context.Context) error {
	return s.engine.Pull(ctx, true)
}

func (s *Service) SyncState() ports.SyncState {
	return ports.SyncState{
		Status:       s.engine.Status(),
		LastSyncedAt: s.engine.LastSyncedAt(),
		Version:      s.engine.Version(),
		Dirty:        s.engine.Dirty(),
	}
}
