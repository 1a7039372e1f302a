package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"threesum/corpus"
)

// benchConfig 커맨드라인 설정
type benchConfig struct {
	Rounds    int
	MinLen    int
	MaxLen    int
	Seed      uint64
	Min       int64
	Max       int64
	Workers   int
	Store     corpus.Backend
	Dir       string
	Replay    bool
	SkipBrute bool
	Out       string
}

func parseFlags(args []string) (benchConfig, error) {
	var cfg benchConfig
	var store string

	app := kingpin.New("bench", "유계 구간 3SUM 알고리즘 벤치마크")
	app.Flag("rounds", "생성할 라운드 수").Default("100").IntVar(&cfg.Rounds)
	app.Flag("min-len", "입력 최소 길이").Default("250").IntVar(&cfg.MinLen)
	app.Flag("max-len", "입력 최대 길이 (포함 안 함)").Default("500").IntVar(&cfg.MaxLen)
	app.Flag("seed", "난수 시드").Default("1774478").Uint64Var(&cfg.Seed)
	app.Flag("min", "값 구간 하한 (포함)").Default("-3000").Int64Var(&cfg.Min)
	app.Flag("max", "값 구간 상한 (포함 안 함)").Default("3000").Int64Var(&cfg.Max)
	app.Flag("workers", "병렬 카운팅 워커 수").Default(strconv.Itoa(runtime.NumCPU())).IntVar(&cfg.Workers)
	app.Flag("store", "케이스 저장소").Default(string(corpus.Memory)).
		EnumVar(&store, string(corpus.Memory), string(corpus.Bbolt), string(corpus.Badger), string(corpus.Pebble))
	app.Flag("dir", "저장소 디렉터리").Default("bench_corpus").StringVar(&cfg.Dir)
	app.Flag("replay", "새로 생성하지 않고 저장된 케이스를 재생").BoolVar(&cfg.Replay)
	app.Flag("skip-brute", "O(n^3) 브루트포스 생략").BoolVar(&cfg.SkipBrute)
	app.Flag("out", "결과 파일 디렉터리").Default(".").StringVar(&cfg.Out)

	if _, err := app.Parse(args); err != nil {
		return benchConfig{}, err
	}
	cfg.Store = corpus.Backend(store)
	return cfg, nil
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain 종료 코드를 돌려준다. 0 성공, 1 실행 실패, 2 플래그 오류.
// os.Exit 는 defer 를 건너뛰므로 로거 flush 는 여기서 끝낸다.
func realMain(args []string) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "플래그 오류: %v\n", err)
		return 2
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 생성 실패: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	fmt.Println("3SUM 알고리즘 벤치마크 시작...")
	fmt.Printf("CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Printf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	if err := run(cfg, logger); err != nil {
		logger.Error("벤치마크 실패", zap.Error(err))
		return 1
	}
	fmt.Println("벤치마크 완료!")
	return 0
}
