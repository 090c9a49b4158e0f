package fire

import (
	"math"
	"sort"
	"sync"

	"fire-ca/internal/core"
)

// DefaultMaxTicks bounds a single headless run.
const DefaultMaxTicks = 100_000

// RunResult summarises one headless run.
type RunResult struct {
	Seed  int64
	Ticks int
	// Settled is the first tick at which Tick reported no cell change, or -1.
	Settled int
	Final   Counts
}

// BurnedFraction is the share of the grid that ended up Dead.
func (r RunResult) BurnedFraction() float64 {
	total := r.Final.Alive + r.Final.Burning + r.Final.Dead
	if total == 0 {
		return 0
	}
	return float64(r.Final.Dead) / float64(total)
}

// RunToBurnout builds a grid from cfg and ticks it until no cell is burning or
// maxTicks is reached. Stable ticks do not end the run early, since burn
// timers still advance on them.
func RunToBurnout(cfg Config, seed int64, maxTicks int) RunResult {
	cfg = cfg.normalized()
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	rng := core.NewRNG(seed)
	grid := New(cfg.Width, cfg.Height, cfg.Params, rng)
	res := RunResult{Seed: seed, Settled: -1}
	for res.Ticks < maxTicks && grid.Burning() {
		stable := grid.Tick(rng)
		res.Ticks++
		if stable && res.Settled < 0 {
			res.Settled = res.Ticks
		}
	}
	res.Final = grid.Counts()
	return res
}

// SweepPoint aggregates the runs for one ignite probability.
type SweepPoint struct {
	IgniteProbability float64
	Runs              int
	MeanBurned        float64
	StdDevBurned      float64
	MeanTicks         float64
}

type sweepJob struct {
	point int
	run   int
}

type sweepResult struct {
	sweepJob
	res RunResult
}

// Sweep runs cfg once per (probability, run) pair on a pool of workers and
// returns one point per probability, sorted by probability. Each worker owns
// its grids and random sources; seeds are derived from cfg.Seed so a sweep is
// repeatable.
func Sweep(cfg Config, probabilities []float64, runs, workers, maxTicks int) []SweepPoint {
	if runs <= 0 {
		runs = 1
	}
	if workers <= 0 {
		workers = 1
	}
	if len(probabilities) == 0 {
		return nil
	}

	jobs := make(chan sweepJob)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				runCfg := cfg
				runCfg.Params.IgniteProbability = probabilities[job.point]
				seed := core.SplitSeed(cfg.Seed, job.point*runs+job.run)
				results <- sweepResult{sweepJob: job, res: RunToBurnout(runCfg, seed, maxTicks)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for p := range probabilities {
			for r := 0; r < runs; r++ {
				jobs <- sweepJob{point: p, run: r}
			}
		}
		close(jobs)
	}()

	// Results arrive in scheduling order; slot them by run so the float sums
	// do not depend on the worker count.
	burned := make([][]float64, len(probabilities))
	for i := range burned {
		burned[i] = make([]float64, runs)
	}
	ticks := make([]int, len(probabilities))
	for out := range results {
		burned[out.point][out.run] = out.res.BurnedFraction()
		ticks[out.point] += out.res.Ticks
	}

	points := make([]SweepPoint, len(probabilities))
	for i, p := range probabilities {
		mean, std := meanStdDev(burned[i])
		points[i] = SweepPoint{
			IgniteProbability: p,
			Runs:              len(burned[i]),
			MeanBurned:        mean,
			StdDevBurned:      std,
			MeanTicks:         float64(ticks[i]) / float64(len(burned[i])),
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].IgniteProbability < points[j].IgniteProbability
	})
	return points
}

// LinearProbabilities returns n evenly spaced probabilities covering [lo, hi].
func LinearProbabilities(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

func meanStdDev(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	variance := 0.0
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(vals)))
}
