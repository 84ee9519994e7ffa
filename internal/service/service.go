package service

import (
	"context"
	"sync"
)

// Service 애플리케이션 수명 동안 실행되는 백그라운드 서비스입니다.
//
// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행하고, 서비스는 완전히 종료되었을 때
// (Start가 에러를 반환한 경우 포함) serviceStopWG.Done()을 호출합니다.
// serviceStopCtx가 취소되면 서비스는 종료 절차를 시작합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
