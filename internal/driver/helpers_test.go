package driver

import "c0nst/internal/source"

func newFileSet(src string) *source.FileSet {
	fs := source.NewFileSet()
	fs.AddVirtual("test.rs", []byte(src))
	return fs
}
