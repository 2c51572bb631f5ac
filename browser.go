package termui

import (
	"os"
	"sort"
	"strings"
)

// DirEntry is one row of a directory listing.
type DirEntry struct {
	Name  string
	IsDir bool
}

// DirLister lists the entries of a directory. The OS-backed implementation
// is the default; tests substitute in-memory listers.
type DirLister interface {
	List(path string) []DirEntry
}

// OSDirLister reads directories from the filesystem. Dotfiles are skipped
// and symlinks count as directories when their target is one. A directory
// that cannot be read lists as empty rather than failing.
type OSDirLister struct{}

func (OSDirLister) List(path string) []DirEntry {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var out []DirEntry
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		isDir := e.IsDir()
		if !isDir {
			// Follow symlinks so a link to a directory is enterable.
			if info, err := os.Stat(joinPath(path, name)); err == nil && info.IsDir() {
				isDir = true
			}
		}
		out = append(out, DirEntry{Name: name, IsDir: isDir})
	}
	return out
}

// FileBrowser presents a navigable directory listing inside a
// SelectableList. Entering a directory replaces the listing in place;
// ".." walks back up. Selecting a file records it, invokes the file
// callback with its full path, and refreshes the listing so the header
// shows the selection.
type FileBrowser struct {
	list         *SelectableList
	lister       DirLister
	path         string
	selectedFile string
	onFile       func(path string)
	page         *Page
}

// NewFileBrowser returns a browser rooted at startPath using the
// OS-backed lister.
func NewFileBrowser(startPath string, onFile func(path string)) *FileBrowser {
	return NewFileBrowserWithLister(startPath, onFile, OSDirLister{})
}

// NewFileBrowserWithLister is NewFileBrowser with an explicit lister.
func NewFileBrowserWithLister(startPath string, onFile func(path string), lister DirLister) *FileBrowser {
	b := &FileBrowser{
		list:   NewSelectableList(),
		lister: lister,
		onFile: onFile,
	}
	b.navigateTo(startPath)
	return b
}

// List returns the underlying selectable list, for embedding in a page.
func (b *FileBrowser) List() *SelectableList {
	return b.list
}

// Path returns the directory currently shown.
func (b *FileBrowser) Path() string {
	return b.path
}

// SelectedFile returns the full path of the last selected file, or "" if
// nothing has been selected yet.
func (b *FileBrowser) SelectedFile() string {
	return b.selectedFile
}

// Attach adds a page named tabName to the app, installs the browser's list
// on it and keeps the page header in sync with the current directory.
func (b *FileBrowser) Attach(app *App, tabName string) *Page {
	p := app.AddPage(tabName)
	p.SetList(b.list)
	b.page = p
	b.navigateTo(b.path)
	return p
}

// navigateTo rebuilds the browser for a directory: the header lines on the
// attached page, then the listing, resetting the cursor and scroll
// position. Re-navigating to the current directory is the refresh path
// after a file selection.
func (b *FileBrowser) navigateTo(path string) {
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	b.path = path

	if b.page != nil {
		b.page.Clear()
		b.page.AddLine(Styled("File Browser", BoldStyle(Cyan)))
		b.page.AddLine(Styled("Path: "+b.path, NewStyle(BrightBlack)))
		b.page.AddBlank()
		if b.selectedFile != "" {
			b.page.AddLine(Plain("Selected: ").Add(b.selectedFile, NewStyle(Green)))
		}
	}

	b.list.ClearItems()

	parent := parentPath(b.path)
	b.list.AddItem("../", func() { b.navigateTo(parent) })

	entries := b.lister.List(b.path)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	for _, e := range entries {
		full := joinPath(b.path, e.Name)
		if e.IsDir {
			b.list.AddItem(e.Name+"/", func() { b.navigateTo(full) })
		} else {
			b.list.AddItem(e.Name, func() {
				b.selectedFile = full
				if b.onFile != nil {
					b.onFile(full)
				}
				b.navigateTo(b.path)
			})
		}
	}
}

// parentPath returns the directory above path, which must carry no
// trailing slash: "." for a relative path with no separator, "/" when the
// only separator is the leading one, otherwise everything before the last
// separator. The parent of "/" is "/" and of "." is ".", so the ".." entry
// at a root navigates to the root itself.
func parentPath(path string) string {
	pos := strings.LastIndexByte(path, '/')
	if pos < 0 {
		return "."
	}
	if pos == 0 {
		return "/"
	}
	return path[:pos]
}

// joinPath appends name below dir without doubling the separator when dir
// is the filesystem root.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
