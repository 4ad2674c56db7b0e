package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/campusconnect/helpmatch-api/store"
)

// BackgroundManager runs the helpmatch background jobs off a machinery
// task queue.
type BackgroundManager struct {
	store store.HelpmatchStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(helpmatchStore store.HelpmatchStore, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      helpmatchStore,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("helpmatch-worker", 5)
	return m.worker.Launch()
}
