// Package notebook resolves paths inside a notebook directory and exposes the
// notes it contains as a tree of items.
//
// A notebook is a directory with a "Notes" subdirectory. Every path handed to
// this package is canonicalized and must land inside Notes; anything else is
// invisible. Regular files are visible only with the ".md" extension.
//
// Absence is reported with the comma-ok idiom instead of errors. A path that
// escapes the notes root, a missing file, a non-markdown file and an entry
// that vanished mid-listing all look the same to the caller.
//
// Usage:
//
//	nb, err := notebook.Open("./my-notebook")
//	if err != nil {
//		return err
//	}
//	root, ok := nb.Root()
//	if !ok {
//		return nil // no Notes directory yet
//	}
//	for _, item := range root.Children() {
//		fmt.Println(item.Name, item.IsFolder)
//	}
package notebook
