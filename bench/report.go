package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"threesum/zerosum"
)

// algorithmOrder 보고서 행 순서
var algorithmOrder = []string{"finder", "finder_parallel", "two_pointer", "brute_force"}

var algoNames = map[string]string{
	"finder":          "카운팅 테이블",
	"finder_parallel": "카운팅 테이블 (병렬)",
	"two_pointer":     "정렬 + 투 포인터",
	"brute_force":     "브루트포스",
}

type reportMeta struct {
	Bounds  zerosum.Bounds
	Store   string
	Rounds  int
	Workers int
}

// Summary 알고리즘별 집계
type Summary struct {
	Algorithm   string
	Runs        int
	AvgDuration time.Duration
	MinDuration time.Duration
	MaxDuration time.Duration
	AvgMemory   uint64
	TotalSize   int
}

// summarize algorithmOrder 순서, 결과가 없는 알고리즘은 빠짐
func summarize(results []BenchmarkResult) []Summary {
	var summaries []Summary
	for _, algo := range algorithmOrder {
		s := Summary{Algorithm: algo}
		var totalDuration time.Duration
		var totalMemory uint64

		for _, result := range results {
			if result.Algorithm != algo {
				continue
			}
			if s.Runs == 0 || result.Duration < s.MinDuration {
				s.MinDuration = result.Duration
			}
			if result.Duration > s.MaxDuration {
				s.MaxDuration = result.Duration
			}
			totalDuration += result.Duration
			totalMemory += result.MemoryUsage
			s.TotalSize += result.DataSize
			s.Runs++
		}

		if s.Runs > 0 {
			s.AvgDuration = totalDuration / time.Duration(s.Runs)
			s.AvgMemory = totalMemory / uint64(s.Runs)
			summaries = append(summaries, s)
		}
	}
	return summaries
}

func algoName(algo string) string {
	if name, ok := algoNames[algo]; ok {
		return name
	}
	return algo
}

// renderMarkdown 요약 통계 + 라운드별 표
func renderMarkdown(meta reportMeta, results []BenchmarkResult) string {
	var builder strings.Builder
	builder.Grow(256 + len(results)*96)

	builder.WriteString("# 3SUM 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0)))
	builder.WriteString(fmt.Sprintf("값 구간: %s\n", meta.Bounds))
	builder.WriteString(fmt.Sprintf("저장소: %s\n", meta.Store))
	builder.WriteString(fmt.Sprintf("라운드: %s\n", humanize.Comma(int64(meta.Rounds))))
	builder.WriteString(fmt.Sprintf("병렬 워커: %d\n\n", meta.Workers))

	builder.WriteString("## 요약 통계\n\n")
	builder.WriteString("| 알고리즘 | 실행 횟수 | 총 입력 | 평균 실행시간 | 최소 | 최대 | 평균 메모리 |\n")
	builder.WriteString("|----------|-----------|---------|---------------|------|------|-------------|\n")
	for _, s := range summarize(results) {
		builder.WriteString(fmt.Sprintf("| %s | %d | %s | %v | %v | %v | %s |\n",
			algoName(s.Algorithm), s.Runs, humanize.Comma(int64(s.TotalSize)),
			s.AvgDuration, s.MinDuration, s.MaxDuration, humanize.IBytes(s.AvgMemory)))
	}
	builder.WriteString("\n")

	builder.WriteString("## 라운드별 결과\n\n")
	builder.WriteString("| 라운드 | 알고리즘 | 입력 크기 | 결과 수 | 실행시간 | 메모리 | 고루틴수 |\n")
	builder.WriteString("|--------|----------|-----------|---------|----------|--------|----------|\n")
	for _, result := range results {
		builder.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %v | %s | %d |\n",
			result.Round, algoName(result.Algorithm), result.DataSize, result.Triplets,
			result.Duration, humanize.IBytes(result.MemoryUsage), result.GoroutineNum))
	}
	return builder.String()
}

func saveResultsToMarkdown(path string, meta reportMeta, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	if _, err := writer.WriteString(renderMarkdown(meta, results)); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return file.Close()
}

func saveResultsToJSON(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return file.Close()
}
