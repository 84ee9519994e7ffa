package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/posta-pra-mim/internal/config"
	"github.com/darkkaiser/posta-pra-mim/internal/pkg/version"
	"github.com/darkkaiser/posta-pra-mim/internal/service"
	"github.com/darkkaiser/posta-pra-mim/internal/service/api"
	"github.com/darkkaiser/posta-pra-mim/internal/service/bot"
	"github.com/darkkaiser/posta-pra-mim/internal/service/scraper"
	"github.com/darkkaiser/posta-pra-mim/internal/service/scraper/fetcher"
	"github.com/darkkaiser/posta-pra-mim/internal/service/sheet"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
)

const banner = `
  ____           _              ____                  __  __ _
 |  _ \ ___  ___| |_ __ _      |  _ \ _ __ __ _      |  \/  (_)_ __ ___
 | |_) / _ \/ __| __/ _' |_____| |_) | '__/ _' |_____| |\/| | | '_ ' _ \
 |  __/ (_) \__ \ || (_| |_____|  __/| | | (_| |_____| |  | | | | | | | |
 |_|   \___/|___/\__\__,_|     |_|   |_|  \__,_|     |_|  |_|_|_| |_| |_|
                                                              %s
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(logOptions(appConfig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	printBanner(os.Stdout, version.Get())

	exitCode := run(appConfig)

	appLogCloser.Close()
	os.Exit(exitCode)
}

func logOptions(appConfig *config.AppConfig) applog.Options {
	if appConfig.Debug {
		return applog.NewDevelopmentOptions(config.AppName)
	}
	return applog.NewProductionOptions(config.AppName)
}

func printBanner(w io.Writer, buildInfo version.Info) {
	fmt.Fprintf(w, banner, buildInfo.Version)
}

// run 서비스를 생성하여 시작하고, 종료 시그널을 받으면 모든 서비스가 멈출 때까지 기다립니다.
func run(appConfig *config.AppConfig) int {
	buildInfo := version.Get()

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appender, err := sheet.NewGoogleAppender(serviceStopCtx, appConfig.Sheet)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("스프레드시트 클라이언트 초기화 실패")
		return 1
	}

	botService, err := bot.New(appConfig.Telegram, scraper.New(fetcher.New()), appender)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("텔레그램 봇 초기화 실패")
		return 1
	}

	// 상태 확인 서버가 뜨지 못하면 프로세스 전체를 종료한다.
	apiService := api.NewService(appConfig, cancel)

	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{botService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			return 1
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	exitCode := waitForStop(serviceStopCtx, termC)

	cancel()
	serviceStopWG.Wait()

	return exitCode
}

// waitForStop 종료 시그널 또는 서비스 컨텍스트의 취소를 기다린 뒤 종료 코드를 반환합니다.
// 시그널 없이 컨텍스트가 먼저 취소되었다면 서비스가 비정상 종료된 것이므로 1을 반환합니다.
func waitForStop(serviceStopCtx context.Context, termC <-chan os.Signal) int {
	select {
	case sig := <-termC:
		applog.WithComponentAndFields("main", applog.Fields{
			"signal": sig.String(),
		}).Info("종료 시그널 수신")
		return 0

	case <-serviceStopCtx.Done():
		applog.WithComponent("main").Error("서비스가 비정상 종료되어 서버를 중단합니다")
		return 1
	}
}
