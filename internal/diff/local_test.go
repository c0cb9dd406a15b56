package diff

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a temp git repo with one committed file.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test",
			"GIT_AUTHOR_EMAIL=test@test.com",
			"GIT_COMMITTER_NAME=test",
			"GIT_COMMITTER_EMAIL=test@test.com",
		)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("command %v failed: %v\n%s", args, err, out)
		}
	}

	run("git", "init")
	run("git", "checkout", "-b", "main")

	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run("git", "add", "-A")
	run("git", "commit", "-m", "init")

	return dir
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func TestLocalChanges_Unstaged(t *testing.T) {
	dir := setupTestRepo(t)

	content := "package main\n\nimport \"fmt\"\n\nfunc main() { fmt.Println(\"hi\") }\n"
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := LocalChanges(LocalOptions{Dir: dir})
	if err != nil {
		t.Fatalf("LocalChanges error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Filename != "main.go" {
		t.Errorf("Filename = %q, want main.go", files[0].Filename)
	}
	if files[0].Status != StatusModified {
		t.Errorf("Status = %q, want modified", files[0].Status)
	}
	if files[0].Patch == "" {
		t.Error("expected a non-empty patch")
	}
}

func TestLocalChanges_Staged(t *testing.T) {
	dir := setupTestRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "extra.go"), []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	gitRun(t, dir, "add", "extra.go")

	// Staged view picks up the added file, unstaged view does not.
	staged, err := LocalChanges(LocalOptions{Dir: dir, Staged: true})
	if err != nil {
		t.Fatalf("LocalChanges error: %v", err)
	}
	if len(staged) != 1 || staged[0].Filename != "extra.go" {
		t.Fatalf("staged = %v, want [extra.go]", staged)
	}
	if staged[0].Status != StatusAdded {
		t.Errorf("Status = %q, want added", staged[0].Status)
	}

	unstaged, err := LocalChanges(LocalOptions{Dir: dir})
	if err != nil {
		t.Fatalf("LocalChanges error: %v", err)
	}
	if len(unstaged) != 0 {
		t.Errorf("unstaged = %d files, want 0", len(unstaged))
	}
}

func TestLocalChanges_BranchRange(t *testing.T) {
	dir := setupTestRepo(t)

	gitRun(t, dir, "checkout", "-b", "feature")
	if err := os.WriteFile(filepath.Join(dir, "feature.go"), []byte("package main\n\nfunc feature() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	gitRun(t, dir, "add", "-A")
	gitRun(t, dir, "commit", "-m", "add feature")

	files, err := LocalChanges(LocalOptions{Dir: dir, Base: "main", Head: "feature"})
	if err != nil {
		t.Fatalf("LocalChanges error: %v", err)
	}
	if len(files) != 1 || files[0].Filename != "feature.go" {
		t.Fatalf("files = %v, want [feature.go]", files)
	}
	if files[0].Status != StatusAdded {
		t.Errorf("Status = %q, want added", files[0].Status)
	}
}

func TestLocalChanges_Clean(t *testing.T) {
	dir := setupTestRepo(t)

	files, err := LocalChanges(LocalOptions{Dir: dir})
	if err != nil {
		t.Fatalf("LocalChanges error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files for a clean tree, want 0", len(files))
	}
}

func TestLocalChanges_NotARepo(t *testing.T) {
	if _, err := LocalChanges(LocalOptions{Dir: t.TempDir()}); err == nil {
		t.Error("expected error outside a git repository")
	}
}

func TestRepoRootAndBranch(t *testing.T) {
	dir := setupTestRepo(t)

	root, err := RepoRoot(dir)
	if err != nil {
		t.Fatalf("RepoRoot error: %v", err)
	}
	if root == "" {
		t.Error("RepoRoot returned empty path")
	}

	if got := Branch(dir); got != "main" {
		t.Errorf("Branch = %q, want main", got)
	}
}
