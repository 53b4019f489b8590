package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

type boardServiceMock struct {
	mock.Mock
}

func (m *boardServiceMock) Snapshot() domain.Snapshot {
	args := m.Called()
	return args.Get(0).(domain.Snapshot)
}

func (m *boardServiceMock) CreateTask(input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *boardServiceMock) UpdateTask(id string, update domain.TaskUpdate) (domain.Task, error) {
	args := m.Called(id, update)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *boardServiceMock) DeleteTask(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *boardServiceMock) CreateCategory(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *boardServiceMock) Login(nickname, password string) (domain.Session, error) {
	args := m.Called(nickname, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *boardServiceMock) Logout() error {
	args := m.Called()
	return args.Error(0)
}

func (m *boardServiceMock) CurrentSession() (domain.Session, error) {
	args := m.Called()
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *boardServiceMock) Sync(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *boardServiceMock) SyncState() ports.SyncState {
	args := m.Called()
	return args.Get(0).(ports.SyncState)
}

var _ ports.BoardService = (*boardServiceMock)(nil)
