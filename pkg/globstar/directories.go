package globstar

import (
	"io/fs"
	"path/filepath"
)

// dirNode is a directory waiting to be listed.
type dirNode struct {
	// path is where the directory is read from.
	path string
	// candidate is how the directory is spelled in expanded patterns.
	candidate string
	depth     int
}

// directories returns prefix followed by every directory below it.
// An empty prefix stands for the current working directory. Listing
// failures are logged and only prune the failing branch.
func (e *realExpander) directories(prefix string) []string {
	root := prefix
	if root == "" {
		root = "."
	}

	candidates := []string{prefix}
	visited := make(map[string]struct{})
	if e.followSymlinks {
		e.markVisited(visited, root)
	}

	queue := []dirNode{{path: root, candidate: prefix}}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		entries, err := e.FS.ReadDir(node.path)
		if err != nil {
			if e.FS.IsNotExist(err) {
				e.VerbosePrint("Directory %s disappeared during expansion", node.path)
			} else {
				e.Logger.Warnf("Error reading directory %s: %v", node.path, err)
			}
			continue
		}

		depth := node.depth + 1
		for _, entry := range entries {
			path := filepath.Join(node.path, entry.Name())

			isDir, descend := e.classify(path, entry, visited)
			if !isDir {
				continue
			}

			candidate := entry.Name()
			if node.candidate != "" {
				candidate = filepath.Join(node.candidate, entry.Name())
			}
			candidates = append(candidates, candidate)

			if descend && (e.maxDepth == 0 || depth < e.maxDepth) {
				queue = append(queue, dirNode{path: path, candidate: candidate, depth: depth})
			}
		}
	}

	return candidates
}

// classify reports whether an entry is a directory and whether it should be
// listed in turn. Symlinks count as directories when their target is one,
// but are only descended into when following symlinks, once per target.
func (e *realExpander) classify(path string, entry fs.DirEntry, visited map[string]struct{}) (bool, bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		if !entry.IsDir() {
			return false, false
		}
		if e.followSymlinks {
			e.markVisited(visited, path)
		}
		return true, true
	}

	isDir, err := e.FS.IsDir(path)
	if err != nil || !isDir {
		// Dangling links and links to files cannot hold matches.
		return false, false
	}

	if !e.followSymlinks {
		return true, false
	}

	return true, e.markVisited(visited, path)
}

// markVisited records the resolved form of path and reports whether it was
// seen for the first time.
func (e *realExpander) markVisited(visited map[string]struct{}, path string) bool {
	resolved, err := e.FS.EvalSymlinks(path)
	if err != nil {
		e.Logger.Warnf("Error resolving %s: %v", path, err)
		return false
	}

	if _, seen := visited[resolved]; seen {
		return false
	}
	visited[resolved] = struct{}{}
	return true
}
