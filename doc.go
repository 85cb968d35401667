// Package iroiro is the entry point for opening IroIro notebooks.
//
// A notebook is a directory holding a "Notes" folder of Markdown files and
// sub-folders. IroIro resolves paths inside that folder without ever letting
// them escape it, and presents what it finds as a tree of items that a note
// taking application can navigate.
//
// Features:
//
//   - **Sandboxed Resolution**: every path is canonicalized and checked
//     against the Notes folder, including absolute paths and symlinks.
//   - **Markdown Only**: only folders and ".md" files are visible; dotfiles
//     are hidden by default.
//   - **Natural Ordering**: "note2" sorts before "note10".
//   - **No Cache**: every listing reflects the disk at the moment it is made.
//
// Usage:
//
//	nb, err := iroiro.Open("./notebook", iroiro.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	root, ok := nb.Root()
//	if ok {
//		for _, item := range root.Children() {
//			fmt.Println(item.Name)
//		}
//	}
package iroiro
