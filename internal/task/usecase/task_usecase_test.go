package usecase

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	authdomain "todolist-api/internal/auth/domain"
	"todolist-api/internal/task/domain"
	"todolist-api/internal/task/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	alice = Caller{UserID: 1, Role: authdomain.RoleUser}
	bob   = Caller{UserID: 2, Role: authdomain.RoleUser}
	root  = Caller{UserID: 3, Role: authdomain.RoleAdmin}
)

func newTestUsecase(t *testing.T) TaskUsecase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tasks.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewTaskUsecase(repository.NewGormTaskRepository(db))
}

func mustCreate(t *testing.T, uc TaskUsecase, caller Caller, description string) *domain.Task {
	t.Helper()
	task, err := uc.CreateTask(caller, description, false)
	if err != nil {
		t.Fatalf("create %q: %v", description, err)
	}
	return task
}

func TestListTasksScopedToOwner(t *testing.T) {
	uc := newTestUsecase(t)
	mustCreate(t, uc, alice, "alice 1")
	mustCreate(t, uc, alice, "alice 2")
	mustCreate(t, uc, bob, "bob 1")

	tasks, err := uc.ListTasks(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.UserID != alice.UserID {
			t.Errorf("task %d owned by %v leaked to alice", task.ID, task.UserID)
		}
	}
}

func TestListTasksAdminSeesAll(t *testing.T) {
	uc := newTestUsecase(t)
	mustCreate(t, uc, alice, "alice 1")
	mustCreate(t, uc, bob, "bob 1")

	tasks, err := uc.ListTasks(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2 (tasks across all owners)", len(tasks))
	}
}

func TestListTasksEmpty(t *testing.T) {
	uc := newTestUsecase(t)

	if _, err := uc.ListTasks(alice); !errors.Is(err, domain.ErrNoTasks) {
		t.Fatalf("expected ErrNoTasks, got %v", err)
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	uc := newTestUsecase(t)
	mustCreate(t, uc, alice, "x")

	tasks, err := uc.ListTasks(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "x" || tasks[0].IsCompleted {
		t.Fatalf("round trip mismatch: %+v", tasks[0])
	}
}

func TestCreateTaskValidation(t *testing.T) {
	uc := newTestUsecase(t)

	if _, err := uc.CreateTask(alice, "", false); !errors.Is(err, domain.ErrDescriptionRequired) {
		t.Errorf("empty description: got %v", err)
	}
	long := strings.Repeat("a", domain.MaxDescriptionLength+1)
	if _, err := uc.CreateTask(alice, long, false); !errors.Is(err, domain.ErrDescriptionTooLong) {
		t.Errorf("oversized description: got %v", err)
	}
	if _, err := uc.CreateTask(alice, strings.Repeat("a", domain.MaxDescriptionLength), false); err != nil {
		t.Errorf("description at the limit should be accepted: %v", err)
	}
}

func TestMutationHidesForeignAndMissingTasks(t *testing.T) {
	uc := newTestUsecase(t)
	theirs := mustCreate(t, uc, bob, "bob's task")
	const missing = 12345

	// A task someone else owns and a task that does not exist must be
	// indistinguishable to a non-admin caller.
	for name, id := range map[string]uint{"foreign": theirs.ID, "missing": missing} {
		if err := uc.UpdateTask(alice, id, "hijacked", true); !errors.Is(err, domain.ErrTaskNotFound) {
			t.Errorf("update %s: got %v, want ErrTaskNotFound", name, err)
		}
		if err := uc.ToggleTaskStatus(alice, id); !errors.Is(err, domain.ErrTaskNotFound) {
			t.Errorf("toggle %s: got %v, want ErrTaskNotFound", name, err)
		}
		if err := uc.DeleteTask(alice, id); !errors.Is(err, domain.ErrTaskNotFound) {
			t.Errorf("delete %s: got %v, want ErrTaskNotFound", name, err)
		}
	}

	// Bob's task is untouched.
	tasks, err := uc.ListTasks(bob)
	if err != nil || len(tasks) != 1 || tasks[0].Description != "bob's task" {
		t.Fatalf("bob's task was modified: tasks=%+v err=%v", tasks, err)
	}
}

func TestAdminCanMutateForeignTask(t *testing.T) {
	uc := newTestUsecase(t)
	task := mustCreate(t, uc, alice, "alice's task")

	if err := uc.UpdateTask(root, task.ID, "updated by admin", true); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if err := uc.ToggleTaskStatus(root, task.ID); err != nil {
		t.Fatalf("admin toggle: %v", err)
	}
	if err := uc.DeleteTask(root, task.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestToggleIdempotence(t *testing.T) {
	uc := newTestUsecase(t)
	task := mustCreate(t, uc, alice, "toggle me")

	if err := uc.ToggleTaskStatus(alice, task.ID); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if err := uc.ToggleTaskStatus(alice, task.ID); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	tasks, err := uc.ListTasks(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks[0].IsCompleted {
		t.Error("two toggles should restore the original completion value")
	}
}

func TestUpdateTaskPersists(t *testing.T) {
	uc := newTestUsecase(t)
	task := mustCreate(t, uc, alice, "before")

	if err := uc.UpdateTask(alice, task.ID, "after", true); err != nil {
		t.Fatalf("update: %v", err)
	}

	tasks, err := uc.ListTasks(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks[0].Description != "after" || !tasks[0].IsCompleted {
		t.Fatalf("update not persisted: %+v", tasks[0])
	}
}

func TestDeleteTask(t *testing.T) {
	uc := newTestUsecase(t)
	task := mustCreate(t, uc, alice, "delete me")

	if err := uc.DeleteTask(alice, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.ListTasks(alice); !errors.Is(err, domain.ErrNoTasks) {
		t.Fatalf("expected ErrNoTasks after delete, got %v", err)
	}
}
