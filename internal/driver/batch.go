package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"c0nst/internal/diag"
	"c0nst/internal/observ"
	"c0nst/internal/source"
	"c0nst/internal/trace"
)

// SourceExt is the extension ListSources collects from directories.
const SourceExt = ".rs"

// ListSources expands paths into a sorted, de-duplicated list of files.
// Directories are walked for *.rs files, skipping hidden directories and
// `target`; plain file arguments are taken as given.
func ListSources(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(root))
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, SourceExt) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return slices.Compact(files), nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "target"
}

// ProcessPaths обрабатывает все файлы параллельно; jobs <= 0 означает GOMAXPROCS.
// Results follow the sorted file order. A file that fails to load gets an
// IOLoadFileError diagnostic and does not stop the batch.
func ProcessPaths(ctx context.Context, paths []string, opts Options, jobs int) (*source.FileSet, []*Result, error) {
	files, err := ListSources(paths)
	if err != nil {
		return nil, nil, err
	}

	ctx, span := trace.BeginCtx(ctx, trace.ScopePhase, "process_paths")
	defer span.End("")

	// FileSet не потокобезопасен на запись: всё загружаем заранее
	fileSet := source.NewFileSet()
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			id = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*Result, len(files))
	progress := trace.ProgressFrom(ctx)
	progress.Plan(len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileIDs[i]},
					"failed to load file: "+loadErr.Error()))
				results[i] = &Result{Path: path, FileID: fileIDs[i], Bag: bag}
				progress.Finish(true)
				return nil
			}

			fileOpts := opts
			if opts.Timer != nil {
				fileOpts.Timer = observ.NewTimer()
			}
			res, err := ProcessFile(gctx, fileSet, fileIDs[i], fileOpts)
			if err != nil {
				return err
			}
			if opts.Timer != nil {
				opts.Timer.Merge(fileOpts.Timer)
			}
			results[i] = res
			progress.Finish(res.HasErrors())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects the diagnostics of all results into one sorted bag.
func MergeBags(results []*Result, limit int) *diag.Bag {
	out := diag.NewBag(limit)
	for _, r := range results {
		if r == nil || r.Bag == nil {
			continue
		}
		for _, d := range r.Bag.Items() {
			out.Add(d)
		}
	}
	out.Sort()
	return out
}
