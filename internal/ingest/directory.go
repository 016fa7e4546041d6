package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/statements-tracker/constants"
	"github.com/joseph-ayodele/statements-tracker/internal/common"
)

// ListDocuments walks root, filters by includeExts (or the defaults), skips
// hidden files and directories, and returns matching paths sorted by
// filename for a stable processing order.
//
// A missing root or an empty match set is an error: those are the only
// conditions that terminate a batch before per-document processing begins.
func ListDocuments(root string, includeExts []string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, common.NewAppError("INGEST_ERROR", "input directory is required", common.ErrInvalidInput)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, common.NewAppError("INGEST_ERROR", fmt.Sprintf("input directory %q does not exist", root), common.ErrNotFound)
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = constants.AllowedExtensions
	} else {
		for _, e := range includeExts {
			e = constants.NormalizeExt(strings.TrimSpace(e))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // unreadable entries degrade per document downstream
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	if len(paths) == 0 {
		return nil, common.NewAppError("INGEST_ERROR", fmt.Sprintf("no matching documents in %q", root), common.ErrNoDocuments)
	}

	sort.Slice(paths, func(i, j int) bool {
		return filepath.Base(paths[i]) < filepath.Base(paths[j])
	})
	return paths, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
