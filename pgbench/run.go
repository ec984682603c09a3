package pgbench

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/katalvlaran/paritygames/pgcore"
	"github.com/katalvlaran/paritygames/pgio"
	"github.com/katalvlaran/paritygames/pgsolve"
)

// RunSet benchmarks every regular file in dir, up to maxFiles (0 means
// unlimited), with at most maxWorkers files being benchmarked at a time.
// Each file is parsed once and then solved by all three algorithms on
// independent g.Clone()s, mirroring the source's duplicateGraph-per-solver
// pattern but running the three solves for one file concurrently too.
// Files that fail to open or parse are not solved, as oneFileBenchmark
// does when createPG returns n <= 0; they still get a Result, carrying
// the error in Err.
func RunSet(ctx context.Context, directory string, caps pgio.Caps, maxFiles, maxWorkers int) ([]Result, error) {
	files, err := WalkDirectory(directory)
	if err != nil {
		return nil, err
	}
	if maxFiles > 0 && len(files) > maxFiles {
		files = files[:maxFiles]
	}

	if maxWorkers < 1 {
		maxWorkers = 1
	}
	sem := make(chan struct{}, maxWorkers)
	results := make([]Result, len(files))
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result{Directory: directory, FileName: filepath.Base(file), Err: ctx.Err()}
				return
			}
			results[i] = benchmarkOne(directory, file, caps)
		}(i, file)
	}

	wg.Wait()
	return results, nil
}

func benchmarkOne(directory, file string, caps pgio.Caps) Result {
	name := filepath.Base(file)
	base := Result{Directory: directory, FileName: name}

	f, err := os.Open(file)
	if err != nil {
		base.Err = err
		return base
	}
	defer f.Close()

	g, err := pgio.Parse(f, caps)
	if err != nil {
		base.Err = err
		return base
	}

	base.Vertices = g.N()
	base.MaxPriority, base.EdgeCount = graphInfo(g)

	var wa, wb, wc pgcore.Winners
	var da, db, dc time.Duration
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		start := time.Now()
		wa = pgsolve.SolveA(g.Clone())
		da = time.Since(start)
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		wb = pgsolve.SolveB(g.Clone())
		db = time.Since(start)
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		wc = pgsolve.SolveC(g.Clone())
		dc = time.Since(start)
	}()
	wg.Wait()

	base.DurationA, base.DurationB, base.DurationC = da, db, dc
	base.Disagreement = !winnersAgree(wa, wb) || !winnersAgree(wa, wc)
	return base
}

// graphInfo mirrors benchmarkTests.c's graphInfo: the highest priority
// present and the total live edge count.
func graphInfo(g *pgcore.Graph) (maxPriority, edgeCount int) {
	for v := 0; v < g.N(); v++ {
		if p := g.Priority(v); p > maxPriority {
			maxPriority = p
		}
		edgeCount += len(g.Successors(v))
	}
	return maxPriority, edgeCount
}

func winnersAgree(a, b pgcore.Winners) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if a[v] != b[v] {
			return false
		}
	}
	return true
}
