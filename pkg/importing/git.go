package importing

import (
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// Status describes how an imported file relates to the git worktree containing it.
type Status string

const (
	StatusUnknown   Status = ""
	StatusNew       Status = "new"
	StatusModified  Status = "modified"
	StatusUnchanged Status = "unchanged"
)

// AnnotateGitStatus fills in the status of each imported file, if the destination folder is in a
// git worktree. A destination outside of any git repository leaves every status unknown.
func AnnotateGitStatus(dest string, imported []Imported) error {
	repo, err := git.PlainOpenWithOptions(dest, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil
		}
		return errors.Wrapf(err, "couldn't open git repository containing %s", dest)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return errors.Wrapf(err, "couldn't open git worktree containing %s", dest)
	}
	status, err := worktree.Status()
	if err != nil {
		return errors.Wrapf(err, "couldn't determine git status of worktree containing %s", dest)
	}

	worktreeRoot, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return errors.Wrapf(err, "couldn't resolve git worktree path %s", worktree.Filesystem.Root())
	}
	for i := range imported {
		importedPath, err := filepath.Abs(imported[i].Path)
		if err != nil {
			return errors.Wrapf(err, "couldn't resolve path %s", imported[i].Path)
		}
		if importedPath, err = filepath.EvalSymlinks(importedPath); err != nil {
			return errors.Wrapf(err, "couldn't resolve path %s", imported[i].Path)
		}
		rel, err := filepath.Rel(worktreeRoot, importedPath)
		if err != nil {
			return errors.Wrapf(err, "couldn't determine path of %s in git worktree", importedPath)
		}
		imported[i].Status = statusOf(status, filepath.ToSlash(rel))
	}
	return nil
}

func statusOf(status git.Status, worktreePath string) Status {
	fileStatus, ok := status[worktreePath]
	if !ok {
		return StatusUnchanged
	}
	switch fileStatus.Worktree {
	case git.Untracked, git.Added:
		return StatusNew
	case git.Unmodified:
		if fileStatus.Staging == git.Added {
			return StatusNew
		}
		if fileStatus.Staging == git.Unmodified {
			return StatusUnchanged
		}
		return StatusModified
	default:
		return StatusModified
	}
}
