// Package middleware Echo 서버에 공통으로 적용하는 미들웨어를 제공합니다.
//
//   - PanicRecovery: 핸들러에서 발생한 panic을 복구하고 스택 트레이스와 함께 기록합니다.
//   - HTTPLogger: 요청/응답 정보를 구조화된 로그로 기록합니다.
//   - Logger: Echo 내부 로그를 애플리케이션 로거로 전달하는 어댑터입니다.
package middleware
