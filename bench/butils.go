package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"threesum/corpus"
	"threesum/zerosum"
)

var errFingerprintMismatch = errors.New("bench: result set differs from stored case")

// BenchmarkResult 한 알고리즘의 한 라운드 측정값
type BenchmarkResult struct {
	Algorithm    string        `json:"algorithm"`
	Round        uint64        `json:"round"`
	DataSize     int           `json:"data_size"`
	StorageType  string        `json:"storage_type"`
	Duration     time.Duration `json:"duration"`
	MemoryUsage  uint64        `json:"memory_usage_bytes"`
	Triplets     int           `json:"triplets"`
	GoroutineNum int           `json:"goroutine_num"`
}

// SystemStats 측정 구간 시작/끝 상태
type SystemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// algorithm 측정 대상. 결과는 Fingerprint 로 비교한다
type algorithm struct {
	name string
	find func(values []int64) ([]zerosum.Triplet[int64], error)
	// brute 는 --skip-brute 와 3개 미만 입력에서 건너뜀
	brute bool
}

func algorithms(cfg benchConfig) ([]algorithm, error) {
	bounds := zerosum.Bounds{Min: cfg.Min, Max: cfg.Max}
	finder, err := zerosum.NewFinder[int64](zerosum.WithBounds(bounds))
	if err != nil {
		return nil, err
	}
	// 병렬 경로를 실제로 재기 위해 임계값 1
	parallel, err := zerosum.NewFinder[int64](zerosum.WithBounds(bounds),
		zerosum.WithWorkers(cfg.Workers), zerosum.WithParallelThreshold(1))
	if err != nil {
		return nil, err
	}

	return []algorithm{
		{name: "finder", find: finder.Find},
		{name: "finder_parallel", find: parallel.Find},
		{name: "two_pointer", find: func(values []int64) ([]zerosum.Triplet[int64], error) {
			return zerosum.SortedTwoPointer(values), nil
		}},
		{name: "brute_force", find: zerosum.BruteForce[int64], brute: true},
	}, nil
}

// bruteCaseMax 이 길이 이하 케이스는 기대값을 브루트포스로 계산
const bruteCaseMax = 256

// generateCase 라운드별 독립 시드로 재현 가능한 입력 생성.
// 기대값은 측정 대상인 Finder 가 아니라 브루트포스 또는 정렬 + 투 포인터로 계산한다.
func generateCase(cfg benchConfig, round uint64) (corpus.Case, error) {
	r := rand.New(rand.NewPCG(cfg.Seed, round))

	size := cfg.MinLen
	if cfg.MaxLen > cfg.MinLen {
		size += r.IntN(cfg.MaxLen - cfg.MinLen)
	}
	values := make([]int64, size)
	for i := range values {
		values[i] = cfg.Min + r.Int64N(cfg.Max-cfg.Min)
	}

	triplets, err := expectedTriplets(values)
	if err != nil {
		return corpus.Case{}, errors.Wrapf(err, "round %d", round)
	}
	return corpus.Case{
		Round:       round,
		Seed:        cfg.Seed,
		Values:      values,
		Triplets:    len(zerosum.Distinct(triplets)),
		Fingerprint: zerosum.Fingerprint(triplets),
	}, nil
}

func expectedTriplets(values []int64) ([]zerosum.Triplet[int64], error) {
	if len(values) >= 3 && len(values) <= bruteCaseMax {
		return zerosum.BruteForce(values)
	}
	return zerosum.SortedTwoPointer(values), nil
}

// storePath bbolt 는 파일 하나, 나머지는 디렉터리
func storePath(cfg benchConfig) string {
	if cfg.Store == corpus.Bbolt {
		return filepath.Join(cfg.Dir, "corpus.db")
	}
	return cfg.Dir
}

func openStore(cfg benchConfig) (corpus.Store, error) {
	if cfg.Store != corpus.Memory {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create store dir")
		}
	}
	return corpus.Open(cfg.Store, storePath(cfg))
}

// run 케이스 생성(또는 재생) → 저장소에서 다시 읽기 → 알고리즘별 측정 → 결과 저장
func run(cfg benchConfig, logger *zap.Logger) (err error) {
	if cfg.Rounds < 0 {
		return errors.Newf("bad round count %d", cfg.Rounds)
	}
	if cfg.MinLen < 0 || cfg.MaxLen < cfg.MinLen {
		return errors.Newf("bad length range [%d, %d)", cfg.MinLen, cfg.MaxLen)
	}
	bounds := zerosum.Bounds{Min: cfg.Min, Max: cfg.Max}
	if err := bounds.Validate(); err != nil {
		return err
	}
	algos, err := algorithms(cfg)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, store.Close())
	}()

	if !cfg.Replay {
		logger.Info("케이스 생성", zap.Int("rounds", cfg.Rounds), zap.Stringer("bounds", bounds),
			zap.String("store", string(cfg.Store)))
		for round := range uint64(cfg.Rounds) {
			c, err := generateCase(cfg, round)
			if err != nil {
				return errors.Wrapf(err, "generate round %d", round)
			}
			if err := store.Put(c); err != nil {
				return errors.Wrapf(err, "store round %d", round)
			}
		}
	}

	rounds, err := store.Rounds()
	if err != nil {
		return err
	}
	logger.Info("측정 시작", zap.Int("rounds", len(rounds)))

	var allResults []BenchmarkResult
	for _, round := range rounds {
		// 매번 저장소에서 읽기
		c, err := store.Get(round)
		if err != nil {
			return err
		}
		for _, algo := range algos {
			if algo.brute && (cfg.SkipBrute || len(c.Values) < 3) {
				continue
			}
			result, err := runBenchmark(algo, c, string(cfg.Store))
			if err != nil {
				return err
			}
			allResults = append(allResults, result)
		}
		logger.Debug("라운드 완료", zap.Uint64("round", round), zap.Int("size", len(c.Values)),
			zap.Int("triplets", c.Triplets))
	}

	meta := reportMeta{
		Bounds:  bounds,
		Store:   string(cfg.Store),
		Rounds:  len(rounds),
		Workers: cfg.Workers,
	}
	if err := saveResultsToMarkdown(filepath.Join(cfg.Out, "benchmark_results.md"), meta, allResults); err != nil {
		return errors.Wrap(err, "markdown")
	}
	if err := saveResultsToJSON(filepath.Join(cfg.Out, "benchmark_results.json"), allResults); err != nil {
		return errors.Wrap(err, "json")
	}
	logger.Info("결과 저장", zap.String("dir", cfg.Out), zap.Int("results", len(allResults)))
	return nil
}

// startStats GC 두 번 후 측정 시작
func startStats() *SystemStats {
	runtime.GC()
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간과 구간 내 누적 할당량
func (s *SystemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)
	runtime.ReadMemStats(&s.endMem)
	return duration, s.endMem.TotalAlloc - s.startMem.TotalAlloc
}

// runBenchmark 입력을 복사해 측정하고 결과 집합을 저장된 지문과 비교
func runBenchmark(algo algorithm, c corpus.Case, storageType string) (BenchmarkResult, error) {
	testData := make([]int64, len(c.Values))
	copy(testData, c.Values)

	result := BenchmarkResult{
		Algorithm:    algo.name,
		Round:        c.Round,
		DataSize:     len(testData),
		StorageType:  storageType,
		GoroutineNum: runtime.NumGoroutine(),
	}

	stats := startStats()
	triplets, err := algo.find(testData)
	result.Duration, result.MemoryUsage = stats.endStats()
	if err != nil {
		return result, errors.Wrapf(err, "%s round %d", algo.name, c.Round)
	}

	result.Triplets = len(zerosum.Distinct(triplets))
	if fp := zerosum.Fingerprint(triplets); fp != c.Fingerprint || result.Triplets != c.Triplets {
		return result, errors.Wrapf(errFingerprintMismatch, "%s round %d: %d triplets (fingerprint %x), want %d (%x)",
			algo.name, c.Round, result.Triplets, fp, c.Triplets, c.Fingerprint)
	}
	return result, nil
}
